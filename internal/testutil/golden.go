package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "GOLDEN_UPDATE"

// Golden compares got with testdata/<name>.golden in the calling package.
// With GOLDEN_UPDATE set, the file is rewritten instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(UpdateEnv) != "" {
		require.NoError(t, os.MkdirAll("testdata", 0755), "create testdata dir")
		require.NoError(t, os.WriteFile(path, got, 0644), "update %s", path)
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "read %s; got:\n%s", path, got)
	assert.Equal(t, string(want), string(got), "output mismatch for %s", name)
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
