package setup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"nativecheck/internal/config"
	"nativecheck/internal/system"
)

// ToolkitDirName is the directory name of a godot-cpp checkout.
const ToolkitDirName = "godot-cpp"

// Source records where the toolkit path came from.
type Source string

const (
	SourceEnv           Source = "env"
	SourceProjectCpp    Source = "project-cpp"
	SourceProjectRoot   Source = "project-root"
	SourceParentSibling Source = "parent-sibling"
)

// Resolution is a located godot-cpp directory.
type Resolution struct {
	Path   string `json:"path"`
	Source Source `json:"source"`
}

type candidate struct {
	path   string
	source Source
}

// Locator finds the godot-cpp checkout for a project.
type Locator struct {
	Root string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Candidates lists the fallback directories in priority order.
func (l Locator) Candidates() []string {
	cs := l.candidates()
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.path)
	}
	return out
}

func (l Locator) candidates() []candidate {
	root := l.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return []candidate{
		{filepath.Join(root, "cpp", ToolkitDirName), SourceProjectCpp},
		{filepath.Join(root, ToolkitDirName), SourceProjectRoot},
		{filepath.Join(filepath.Dir(root), ToolkitDirName), SourceParentSibling},
	}
}

// Resolve returns the toolkit directory. An explicit GODOT_CPP_PATH is
// trusted without checking that it exists; otherwise the first existing
// candidate wins. ok is false when nothing was found.
func (l Locator) Resolve() (res Resolution, ok bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, set := lookup(config.EnvGodotCppPath); set && v != "" {
		p := resolvePath(config.ExpandPath(v))
		system.Logger.Debug("using godot-cpp override", "env", config.EnvGodotCppPath, "path", p)
		return Resolution{Path: p, Source: SourceEnv}, true
	}
	for _, c := range l.candidates() {
		if _, err := os.Stat(c.path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				system.Logger.Warn("cannot stat godot-cpp candidate", "path", c.path, "err", err)
			} else {
				system.Logger.Debug("godot-cpp candidate not found", "path", c.path)
			}
			continue
		}
		return Resolution{Path: resolvePath(c.path), Source: c.source}, true
	}
	return Resolution{}, false
}

// resolvePath makes p absolute and resolves symlinks in the longest
// existing prefix, leaving any non-existent tail untouched.
func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	var tail []string
	dir := abs
	for {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				real = filepath.Join(real, tail[i])
			}
			return real
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		tail = append(tail, filepath.Base(dir))
		dir = parent
	}
}
