// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/policycore/engine/config"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWhenFieldsOmitted(t *testing.T) {
	path := writeTOML(t, "")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 200, cfg.RecursionLimit)
	require.NotNil(t, cfg.Registry)
}

func TestLoadResolvesKnownExtensions(t *testing.T) {
	path := writeTOML(t, `
recursion_limit = 50
extensions = ["ip", "decimal"]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.RecursionLimit)

	_, err = cfg.Registry.Call("ip", nil)
	require.Error(t, err) // wrong arity

	_, ok := cfg.Registry.Lookup("ip")
	require.True(t, ok)
	_, ok = cfg.Registry.Lookup("decimal")
	require.True(t, ok)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeTOML(t, `extensions = ["nope"]`)
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
