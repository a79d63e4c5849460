package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	internalerrors "github.com/riskml/mldeploy/internal/errors"
)

// stsAPI is the subset of the STS client used for caller identity lookups.
type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IdentityService resolves the AWS account the current credentials belong
// to, so a resolved tenant config can be checked against the environment it
// is about to deploy into.
type IdentityService struct {
	stsClient stsAPI
}

func NewIdentityService(ctx context.Context) (*IdentityService, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &IdentityService{stsClient: sts.NewFromConfig(cfg)}, nil
}

// GetAWSAccountID retrieves the AWS account ID of the caller
func (s *IdentityService) GetAWSAccountID(ctx context.Context) (string, error) {
	result, err := s.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}

	if result.Account == nil {
		return "", fmt.Errorf("account ID is nil")
	}

	return *result.Account, nil
}

// VerifyAccount checks that the resolved aws_account_id matches the caller's
// account.
func (s *IdentityService) VerifyAccount(ctx context.Context, accountID string) error {
	caller, err := s.GetAWSAccountID(ctx)
	if err != nil {
		return err
	}

	if caller != accountID {
		return fmt.Errorf("%w: config declares %s, caller is %s", internalerrors.ErrAccountMismatch, accountID, caller)
	}
	return nil
}
