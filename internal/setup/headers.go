package setup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"nativecheck/internal/system"
)

var (
	// coreHeader ships with every godot-cpp checkout.
	coreHeader = filepath.Join("include", "godot_cpp", "core", "method_ptrcall.hpp")

	// generatedHeaders come from the bindings build; older releases use
	// include/gen/..., newer ones gen/include/...
	generatedHeaders = []string{
		filepath.Join("include", "gen", "godot_cpp", "classes", "global_constants.hpp"),
		filepath.Join("gen", "include", "godot_cpp", "classes", "global_constants.hpp"),
	}
)

// HeaderReport is the outcome of CheckHeaders.
type HeaderReport struct {
	Core string `json:"core"`
	// Generated is the first generated-header candidate found, empty if none.
	Generated  string   `json:"generated,omitempty"`
	Candidates []string `json:"candidates"`
	Missing    []string `json:"missing,omitempty"`
	OK         bool     `json:"ok"`
}

// CheckHeaders verifies the core header and at least one generated-header
// layout exist under root.
func CheckHeaders(root string) HeaderReport {
	rep := HeaderReport{Core: filepath.Join(root, coreHeader)}
	for _, rel := range generatedHeaders {
		rep.Candidates = append(rep.Candidates, filepath.Join(root, rel))
	}

	if !isFile(rep.Core) {
		rep.Missing = append(rep.Missing, rep.Core)
	}
	for _, c := range rep.Candidates {
		if isFile(c) {
			rep.Generated = c
			break
		}
	}
	if rep.Generated == "" {
		rep.Missing = append(rep.Missing, rep.Candidates...)
	}
	rep.OK = len(rep.Missing) == 0
	return rep
}

func isFile(p string) bool {
	st, err := os.Stat(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			system.Logger.Warn("cannot stat", "path", p, "err", err)
		}
		return false
	}
	return st.Mode().IsRegular()
}
