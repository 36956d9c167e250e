package setup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	tu "nativecheck/internal/testutil"
)

func TestPlatformFor(t *testing.T) {
	cases := map[string]Platform{
		"windows": PlatformWindows,
		"Windows": PlatformWindows,
		"darwin":  PlatformMacOS,
		"ios":     PlatformMacOS,
		"linux":   PlatformUnix,
		"freebsd": PlatformUnix,
		"":        PlatformUnix,
	}
	for goos, want := range cases {
		assert.Equal(t, want, PlatformFor(goos), "goos=%q", goos)
	}
}

func TestBinaryNames(t *testing.T) {
	assert.Equal(t, []string{"native_automata.dll", "native_automata.debug.dll"}, BinaryNames(PlatformWindows))
	assert.Equal(t, []string{"libnative_automata.dylib", "libnative_automata.debug.dylib"}, BinaryNames(PlatformMacOS))
	assert.Equal(t, []string{"libnative_automata.so", "libnative_automata.debug.so"}, BinaryNames(PlatformUnix))
}

func TestCheckBinaries_WindowsFound(t *testing.T) {
	dir := t.TempDir()
	tu.Touch(t, filepath.Join(dir, "native_automata.dll"))
	// wrong platform and near-miss names are ignored
	tu.Touch(t, filepath.Join(dir, "libnative_automata.so"))
	tu.Touch(t, filepath.Join(dir, "native_automata.dll.bak"))

	rep := CheckBinaries(dir, PlatformWindows)
	assert.True(t, rep.OK)
	assert.Equal(t, []string{"native_automata.dll"}, rep.Found)
}

func TestCheckBinaries_LinuxMissing(t *testing.T) {
	dir := t.TempDir()
	tu.Touch(t, filepath.Join(dir, "native_automata.dll"))

	rep := CheckBinaries(dir, PlatformFor("linux"))
	assert.False(t, rep.OK)
	assert.Empty(t, rep.Found)
	assert.Equal(t, []string{"libnative_automata.so", "libnative_automata.debug.so"}, rep.Expected)
}

func TestCheckBinaries_MissingDir(t *testing.T) {
	rep := CheckBinaries(filepath.Join(t.TempDir(), "bin"), PlatformMacOS)
	assert.False(t, rep.OK)
}
