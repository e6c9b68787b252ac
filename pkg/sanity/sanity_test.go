// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateIdentifier(t *testing.T) {
	require.NoError(t, ValidateIdentifier("sepolia"))
	require.NoError(t, ValidateIdentifier("main-net-1"))
	require.NoError(t, ValidateIdentifier("a"))

	require.Error(t, ValidateIdentifier(""))
	require.Error(t, ValidateIdentifier("Sepolia"))
	require.Error(t, ValidateIdentifier("-sepolia"))
	require.Error(t, ValidateIdentifier("sepolia-"))
	require.Error(t, ValidateIdentifier("net work"))
	require.Error(t, ValidateIdentifier(strings.Repeat("a", 64)))
}

func TestValidatePort(t *testing.T) {
	require.NoError(t, ValidatePort(1))
	require.NoError(t, ValidatePort(30303))
	require.NoError(t, ValidatePort(65535))

	require.Error(t, ValidatePort(0))
	require.Error(t, ValidatePort(-1))
	require.Error(t, ValidatePort(65536))
}

func TestValidateURL(t *testing.T) {
	require.NoError(t, ValidateURL("https://sepolia.beaconstate.info", nil))

	require.Error(t, ValidateURL("", nil))
	require.Error(t, ValidateURL("not a url", nil))
	require.Error(t, ValidateURL("ftp://example.com", nil))

	// http only with explicit opt-in
	require.Error(t, ValidateURL("http://example.com", nil))
	require.NoError(t, ValidateURL("http://example.com", &ValidateURLOptions{AllowHTTP: true}))
}

func TestValidateAbsolutePath(t *testing.T) {
	require.NoError(t, ValidateAbsolutePath("/opt/ethereum"))

	require.Error(t, ValidateAbsolutePath(""))
	require.Error(t, ValidateAbsolutePath("opt/ethereum"))
	require.Error(t, ValidateAbsolutePath("/opt/../etc"))
	require.Error(t, ValidateAbsolutePath("/opt/ethereum/"))
}
