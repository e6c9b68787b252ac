// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/secret"
	"github.com/stretchr/testify/require"
)

func TestEnsureJwtSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")

	step, err := EnsureJwtSecret(path).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, secret.Validate(string(data)))
}

func TestEnsureJwtSecret_DoesNotRotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")

	step, err := EnsureJwtSecret(path).Build()
	require.NoError(t, err)
	require.Equal(t, automa.StatusSuccess, step.Execute(context.Background()).Status)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	step, err = EnsureJwtSecret(path).Build()
	require.NoError(t, err)
	require.Equal(t, automa.StatusSuccess, step.Execute(context.Background()).Status)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureJwtSecret_FailsOnCorruptSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	step, err := EnsureJwtSecret(path).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Error(t, report.Error)
}
