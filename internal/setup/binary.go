package setup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"nativecheck/internal/system"
)

// OutputDirName is where SCons places the built library, relative to the
// project root.
const OutputDirName = "bin"

// BinaryReport is the outcome of CheckBinaries.
type BinaryReport struct {
	Dir      string   `json:"dir"`
	Platform Platform `json:"platform"`
	Expected []string `json:"expected"`
	Found    []string `json:"found,omitempty"`
	OK       bool     `json:"ok"`
}

// CheckBinaries looks in dir for any of the library names expected on p.
// Only exact filenames count.
func CheckBinaries(dir string, p Platform) BinaryReport {
	rep := BinaryReport{Dir: dir, Platform: p, Expected: BinaryNames(p)}
	for _, name := range rep.Expected {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				system.Logger.Warn("cannot stat", "path", path, "err", err)
			}
			continue
		}
		rep.Found = append(rep.Found, name)
	}
	rep.OK = len(rep.Found) > 0
	return rep
}
