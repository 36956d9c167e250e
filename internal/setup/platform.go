package setup

import (
	"fmt"
	"runtime"
	"strings"
)

// LibraryName is the GDExtension library base name produced by the SCons build.
const LibraryName = "native_automata"

// Platform selects the shared-library naming convention.
type Platform int

const (
	// PlatformUnix covers Linux, the BSDs and anything not listed below.
	PlatformUnix Platform = iota
	PlatformWindows
	PlatformMacOS
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	default:
		return "unix"
	}
}

// MarshalText renders the platform by name in JSON reports.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText and GOOS values.
func (p *Platform) UnmarshalText(b []byte) error {
	if strings.EqualFold(string(b), "macos") {
		*p = PlatformMacOS
		return nil
	}
	*p = PlatformFor(string(b))
	return nil
}

// PlatformFor maps a GOOS value to its naming convention.
func PlatformFor(goos string) Platform {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "windows":
		return PlatformWindows
	case "darwin", "ios":
		return PlatformMacOS
	default:
		return PlatformUnix
	}
}

// HostPlatform is the platform of the running binary.
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// BinaryNames returns the release and debug library filenames for p,
// following <prefix><name>[.debug].<ext>.
func BinaryNames(p Platform) []string {
	prefix, ext := "lib", "so"
	switch p {
	case PlatformWindows:
		prefix, ext = "", "dll"
	case PlatformMacOS:
		ext = "dylib"
	}
	return []string{
		fmt.Sprintf("%s%s.%s", prefix, LibraryName, ext),
		fmt.Sprintf("%s%s.debug.%s", prefix, LibraryName, ext),
	}
}
