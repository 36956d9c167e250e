package setup

import (
	"path/filepath"

	"nativecheck/internal/system"
)

// Exit codes of a check run.
const (
	ExitOK         = 0
	ExitIncomplete = 1
)

// Result is everything one run observed. Headers and Binaries stay nil when
// the toolkit could not be located.
type Result struct {
	Root     string        `json:"root"`
	Toolkit  *Resolution   `json:"toolkit,omitempty"`
	Headers  *HeaderReport `json:"headers,omitempty"`
	Binaries *BinaryReport `json:"binaries,omitempty"`
	// Candidates are the fallback toolkit locations that were probed.
	Candidates []string `json:"candidates,omitempty"`
	OK         bool     `json:"ok"`
}

// ExitCode maps the result to the process exit status.
func (r Result) ExitCode() int {
	if r.OK {
		return ExitOK
	}
	return ExitIncomplete
}

// Checker runs the setup checks for one project.
type Checker struct {
	Root     string
	Locator  Locator
	Platform Platform
}

// NewChecker builds a Checker for root on the host platform.
func NewChecker(root string) Checker {
	return Checker{
		Root:     root,
		Locator:  Locator{Root: root},
		Platform: HostPlatform(),
	}
}

// Run resolves the toolkit, then checks headers and binaries. Nothing past
// resolution runs when the toolkit is missing.
func (c Checker) Run() Result {
	res := Result{Root: c.Root}
	tk, ok := c.Locator.Resolve()
	if !ok {
		res.Candidates = c.Locator.Candidates()
		system.Logger.Debug("godot-cpp not found", "root", c.Root)
		return res
	}
	res.Toolkit = &tk

	hdr := CheckHeaders(tk.Path)
	res.Headers = &hdr
	bin := CheckBinaries(filepath.Join(c.Root, OutputDirName), c.Platform)
	res.Binaries = &bin

	res.OK = hdr.OK && bin.OK
	return res
}
