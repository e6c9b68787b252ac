// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)
	require.Len(t, s, HexLength)

	_, err = hex.DecodeString(s)
	require.NoError(t, err)

	// two secrets never collide
	other, err := Generate()
	require.NoError(t, err)
	require.NotEqual(t, s, other)
}

func TestValidate(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)
	require.NoError(t, Validate(s))

	require.Error(t, Validate(""))
	require.Error(t, Validate("abc123"))
	require.Error(t, Validate(s[:HexLength-1]))
	require.Error(t, Validate(s[:HexLength-1]+"g"))
}

func TestEnsure_CreatesSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")

	created, err := Ensure(path)
	require.NoError(t, err)
	require.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, Validate(string(data)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnsure_KeepsExistingSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")

	created, err := Ensure(path)
	require.NoError(t, err)
	require.True(t, created)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	created, err = Ensure(path)
	require.NoError(t, err)
	require.False(t, created)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsure_RejectsCorruptSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.hex")
	require.NoError(t, os.WriteFile(path, []byte("not-a-secret"), 0o600))

	_, err := Ensure(path)
	require.Error(t, err)

	// corrupt file is left untouched for the operator to inspect
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "not-a-secret", string(data))
}
