package config

import (
    "os"
    "path/filepath"
    "strings"
)

// EnvGodotCppPath overrides godot-cpp discovery when set to a non-empty value.
const EnvGodotCppPath = "GODOT_CPP_PATH"

// ProjectMarker is the file Godot writes at the root of every project.
const ProjectMarker = "project.godot"

// ProjectRoot walks upward from start and returns the first directory that
// looks like the Godot project root: it holds project.godot, or a cpp/
// folder with an SConstruct. Falls back to start (made absolute) when no
// ancestor matches, so running from the project root always works.
func ProjectRoot(start string) string {
    abs, err := filepath.Abs(start)
    if err != nil {
        return start
    }
    dir := abs
    for {
        if isProjectRoot(dir) {
            return dir
        }
        parent := filepath.Dir(dir)
        if parent == dir {
            return abs
        }
        dir = parent
    }
}

func isProjectRoot(dir string) bool {
    return fileExists(filepath.Join(dir, ProjectMarker)) ||
        fileExists(filepath.Join(dir, "cpp", "SConstruct"))
}

// ExpandPath expands a leading ~ to the user's home directory. Anything else,
// including a literal $, is kept as written.
func ExpandPath(p string) string {
    if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
        if home, err := os.UserHomeDir(); err == nil && home != "" {
            p = filepath.Join(home, p[1:])
        }
    }
    return p
}

func fileExists(p string) bool {
    st, err := os.Stat(p)
    return err == nil && !st.IsDir()
}
