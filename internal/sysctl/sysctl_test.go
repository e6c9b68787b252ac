// SPDX-License-Identifier: Apache-2.0

package sysctl

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func stubSysctl(t *testing.T, get func(string) (string, error), set func(string, string) error) {
	t.Helper()

	origGet, origSet := getSysctl, setSysctl
	getSysctl, setSysctl = get, set
	t.Cleanup(func() {
		getSysctl, setSysctl = origGet, origSet
	})
}

func TestEnsureMinimum_RaisesLowValue(t *testing.T) {
	var setKey, setValue string
	stubSysctl(t,
		func(key string) (string, error) { return "212992", nil },
		func(key, value string) error {
			setKey, setValue = key, value
			return nil
		})

	changed, err := EnsureMinimum(Setting{Key: "net.core.rmem_max", Min: 16 << 20})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "net.core.rmem_max", setKey)
	require.Equal(t, "16777216", setValue)
}

func TestEnsureMinimum_LeavesHighValueAlone(t *testing.T) {
	stubSysctl(t,
		func(key string) (string, error) { return "33554432", nil },
		func(key, value string) error {
			t.Fatal("set must not be called when the current value is high enough")
			return nil
		})

	changed, err := EnsureMinimum(Setting{Key: "net.core.rmem_max", Min: 16 << 20})
	require.NoError(t, err)
	require.False(t, changed)
}

func TestEnsureMinimum_ExactMinimumIsKept(t *testing.T) {
	stubSysctl(t,
		func(key string) (string, error) { return "16777216", nil },
		func(key, value string) error {
			t.Fatal("set must not be called at the exact minimum")
			return nil
		})

	changed, err := EnsureMinimum(Setting{Key: "net.core.wmem_max", Min: 16 << 20})
	require.NoError(t, err)
	require.False(t, changed)
}

func TestEnsureMinimum_Errors(t *testing.T) {
	stubSysctl(t,
		func(key string) (string, error) { return "", errorx.IllegalState.New("no such key") },
		nil)

	_, err := EnsureMinimum(Setting{Key: "net.core.rmem_max", Min: 1})
	require.Error(t, err)

	stubSysctl(t,
		func(key string) (string, error) { return "not-a-number", nil },
		nil)

	_, err = EnsureMinimum(Setting{Key: "net.core.rmem_max", Min: 1})
	require.Error(t, err)
}

func TestP2PSettings(t *testing.T) {
	settings := P2PSettings()
	require.Len(t, settings, 2)
	for _, s := range settings {
		require.GreaterOrEqual(t, s.Min, int64(16<<20))
	}
}
