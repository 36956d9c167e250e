package setup

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tu "nativecheck/internal/testutil"
)

func render(t *testing.T, r Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	return buf.String()
}

func TestWriteText_NotFound(t *testing.T) {
	root := project(t)
	res := Checker{Root: root, Locator: Locator{Root: root, LookupEnv: noEnv}}.Run()

	out := render(t, res)
	assert.Contains(t, out, "Could not find godot-cpp.")
	assert.Contains(t, out, "Set GODOT_CPP_PATH")
	assert.Contains(t, out, filepath.Join(root, "cpp", "godot-cpp"))
	assert.NotContains(t, out, "Setup looks good")
}

func TestWriteText_MissingEverything(t *testing.T) {
	root := project(t)
	tk := filepath.Join(root, "cpp", "godot-cpp")
	tu.Mkdir(t, tk)
	res := Checker{Root: root, Locator: Locator{Root: root, LookupEnv: noEnv}, Platform: PlatformUnix}.Run()

	out := render(t, res)
	assert.Contains(t, out, "Missing godot-cpp headers:")
	assert.Contains(t, out, filepath.Join(res.Toolkit.Path, coreHeader))
	assert.Contains(t, out, "generate_bindings=yes")
	assert.Contains(t, out, "  - bin/libnative_automata.so\n")
	assert.Contains(t, out, "  - bin/libnative_automata.debug.so\n")
	assert.Contains(t, out, "scons platform=linux")
	assert.Contains(t, out, "Setup is incomplete.")
}

func TestWriteText_Success(t *testing.T) {
	root := project(t)
	writeHeaders(t, filepath.Join(root, "cpp", "godot-cpp"), generatedHeaders[0])
	tu.Touch(t, filepath.Join(root, "bin", "native_automata.dll"))
	res := Checker{Root: root, Locator: Locator{Root: root, LookupEnv: noEnv}, Platform: PlatformWindows}.Run()

	out := render(t, res)
	assert.Contains(t, out, "godot-cpp path: "+res.Toolkit.Path)
	assert.Contains(t, out, "  - native_automata.dll\n")
	assert.Contains(t, out, "Setup looks good.")
}
