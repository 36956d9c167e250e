package testutil

import (
    "os"
    "path/filepath"
    "testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
    t.Helper()
    old, had := os.LookupEnv(key)
    if val == "" {
        _ = os.Unsetenv(key)
    } else {
        _ = os.Setenv(key, val)
    }
    return func() {
        if had {
            _ = os.Setenv(key, old)
        } else {
            _ = os.Unsetenv(key)
        }
    }
}

// Touch creates an empty file at path, including missing parent directories.
func Touch(t *testing.T, path string) {
    t.Helper()
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
    }
    if err := os.WriteFile(path, nil, 0o644); err != nil {
        t.Fatalf("write %s: %v", path, err)
    }
}

// Mkdir creates dir and its parents.
func Mkdir(t *testing.T, dir string) {
    t.Helper()
    if err := os.MkdirAll(dir, 0o755); err != nil {
        t.Fatalf("mkdir %s: %v", dir, err)
    }
}
