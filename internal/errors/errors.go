package errors

import "errors"

var (
	ErrEnvironmentRequired      = errors.New("environment identity value is required")
	ErrModelVersionRequired     = errors.New("model.json must declare model_version")
	ErrModelNameRequired        = errors.New("model.json must declare model_name")
	ErrPipelineScheduleRequired = errors.New("pipeline.json must declare pipeline_schedule")
	ErrAccountMismatch          = errors.New("resolved aws_account_id does not match caller identity")
)
