package setup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tu "nativecheck/internal/testutil"
)

func noEnv(string) (string, bool) { return "", false }

func envWith(val string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == "GODOT_CPP_PATH" {
			return val, true
		}
		return "", false
	}
}

// realpath mirrors resolvePath for directories that exist (macOS /var -> /private/var).
func realpath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return r
}

// project lays out <tmp>/game as a project root and returns it.
func project(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "game")
	tu.Touch(t, filepath.Join(root, "project.godot"))
	return root
}

func writeHeaders(t *testing.T, toolkit string, generated ...string) {
	t.Helper()
	tu.Touch(t, filepath.Join(toolkit, coreHeader))
	for _, g := range generated {
		tu.Touch(t, filepath.Join(toolkit, g))
	}
}
