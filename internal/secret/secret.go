// SPDX-License-Identifier: Apache-2.0

// Package secret manages the JWT secret shared between the execution and
// consensus clients for the authenticated engine API.
package secret

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/pkg/fsx"
	"github.com/joomcode/errorx"
)

var (
	ErrNamespace = errorx.NewNamespace("secret")
	SecretError  = ErrNamespace.NewType("jwt_secret")
)

// SecretBytes is the raw entropy size; hex encoding doubles it on disk.
const SecretBytes = 32

// HexLength is the exact on-disk length of a valid secret.
const HexLength = SecretBytes * 2

// Generate produces a fresh hex-encoded secret.
func Generate() (string, error) {
	buf := make([]byte, SecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", SecretError.Wrap(err, "failed to read entropy")
	}

	return hex.EncodeToString(buf), nil
}

// Validate checks that s is exactly 64 lowercase/uppercase hex characters.
func Validate(s string) error {
	if len(s) != HexLength {
		return SecretError.New("secret must be %d hex characters, got %d", HexLength, len(s))
	}

	if _, err := hex.DecodeString(s); err != nil {
		return SecretError.Wrap(err, "secret is not valid hex")
	}

	return nil
}

// Ensure writes a new secret to path only when none exists. An existing
// valid secret is never rotated: the running services authenticate with it,
// and replacing it would break them. An existing but corrupt file is an
// error the operator must resolve.
//
// It reports whether a new secret was written.
func Ensure(path string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil {
		if verr := Validate(strings.TrimSpace(string(existing))); verr != nil {
			return false, SecretError.Wrap(verr,
				"existing secret file %q is invalid; remove it manually to regenerate", path)
		}
		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, SecretError.Wrap(err, "failed to read secret file %q", path)
	}

	s, err := Generate()
	if err != nil {
		return false, err
	}

	if err := fsx.WriteFileAtomic(path, []byte(s), core.DefaultSecretFilePerm); err != nil {
		return false, SecretError.Wrap(err, "failed to write secret file %q", path)
	}

	return true, nil
}
