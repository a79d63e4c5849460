// Package fingerprint derives deterministic SHA-1 identities for model
// artifacts. The fingerprint is the compatibility surface that downstream
// packaging uses to decide whether a new deployable must be built: any byte
// change in model source, model binary, or declared version changes it.
package fingerprint

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/savaki/gox/slicex"
)

// EmptySHA is the SHA-1 of empty input, returned when a source directory or
// declared binary is absent.
const EmptySHA = "da39a3ee5e6b4b0d3255bfef95601890afd80709"

// SourceDir hashes every regular file directly inside dir, streaming file
// bytes into one running SHA-1 digest in lexicographic filename order.
// Subdirectories are not descended into. A missing directory hashes to
// EmptySHA.
func SourceDir(ctx context.Context, dir string) (string, error) {
	sha := sha1.New()

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return hex.EncodeToString(sha.Sum(nil)), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to list model source dir %s: %w", dir, err)
	}

	names := slicex.Map(entries, func(e os.DirEntry) string { return e.Name() })
	sort.Strings(names)

	logger := zerolog.Ctx(ctx)
	logger.Info().Str("dir", dir).Msgf("Model files: %s", strings.Join(names, ", "))

	for _, name := range names {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("failed to stat model source file %s: %w", p, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if err := hashInto(sha, p); err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(sha.Sum(nil)), nil
}

// File returns the SHA-1 of a single file's raw bytes.
func File(path string) (string, error) {
	sha := sha1.New()
	if err := hashInto(sha, path); err != nil {
		return "", err
	}
	return hex.EncodeToString(sha.Sum(nil)), nil
}

// Model combines the binary hash, source hash, and declared version into the
// canonical model fingerprint: SHA-1 of their UTF-8 concatenation, in that
// order, hex-encoded.
func Model(binarySHA, codeSHA, version string) string {
	sum := sha1.Sum([]byte(binarySHA + codeSHA + version))
	return hex.EncodeToString(sum[:])
}

func hashInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return nil
}
