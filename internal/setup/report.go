package setup

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette follows the Vitesse colours used across the app.
type palette struct {
	ok, fail, warn, muted, title lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		ok:    r.NewStyle().Foreground(lipgloss.Color("#4d9375")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#cb7676")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#e6cc77")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#bfbaaa")),
		title: r.NewStyle().Bold(true),
	}
}

var sourceLabels = map[Source]string{
	SourceEnv:           "from GODOT_CPP_PATH",
	SourceProjectCpp:    "cpp/godot-cpp",
	SourceProjectRoot:   "project root",
	SourceParentSibling: "next to the project",
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable report with remediation hints.
func WriteText(w io.Writer, r Result) error {
	p := newPalette(w)
	var b strings.Builder

	b.WriteString(p.title.Render("Checking native automata setup...") + "\n\n")

	if r.Toolkit == nil {
		b.WriteString(p.fail.Render("✗ Could not find godot-cpp.") + " Either:\n")
		b.WriteString("  - Clone godot-cpp into cpp/godot-cpp, or\n")
		b.WriteString("  - Clone it next to this repo (../godot-cpp), or\n")
		b.WriteString("  - Set GODOT_CPP_PATH to point at your existing godot-cpp checkout.\n")
		if len(r.Candidates) > 0 {
			b.WriteString(p.muted.Render("Looked in:") + "\n")
			for _, c := range r.Candidates {
				b.WriteString("  - " + p.muted.Render(c) + "\n")
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "godot-cpp path: %s %s\n", r.Toolkit.Path,
		p.muted.Render("("+sourceLabels[r.Toolkit.Source]+")"))

	if h := r.Headers; h != nil {
		if h.OK {
			b.WriteString(p.ok.Render("✓ godot-cpp headers present") + "\n")
		} else {
			b.WriteString(p.fail.Render("✗ Missing godot-cpp headers:") + "\n")
			for _, m := range h.Missing {
				b.WriteString("  - " + m + "\n")
			}
			b.WriteString("Make sure you cloned godot-cpp (matching your Godot 4.x version) and ran the bindings build with generate_bindings=yes.\n")
			b.WriteString(p.muted.Render("Newer layouts place generated headers under gen/include/...; older ones under include/gen/....") + "\n")
		}
	}

	if bin := r.Binaries; bin != nil {
		dir := OutputDirName + "/"
		if bin.OK {
			b.WriteString(p.ok.Render("✓ Found native extension binaries under "+dir+":") + "\n")
			for _, name := range bin.Found {
				b.WriteString("  - " + name + "\n")
			}
		} else {
			b.WriteString(p.fail.Render("✗ No "+LibraryName+" library found in "+dir+".") + " Run SCons from the cpp folder to build it, for example:\n")
			b.WriteString("  cd cpp\n")
			b.WriteString("  " + sconsHint(bin.Platform) + "\n")
			b.WriteString("After a successful build you should see one of:\n")
			for _, name := range bin.Expected {
				b.WriteString("  - " + filepath.ToSlash(filepath.Join(OutputDirName, name)) + "\n")
			}
		}
	}

	b.WriteString("\n")
	if r.OK {
		b.WriteString(p.ok.Render("Setup looks good. Godot should load the native extension at startup.") + "\n")
	} else {
		b.WriteString(p.warn.Render("Setup is incomplete. Follow the instructions above and rebuild.") + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sconsHint(p Platform) string {
	switch p {
	case PlatformWindows:
		return "scons platform=windows target=template_release bits=64 use_mingw=yes   # or drop use_mingw for MSVC"
	case PlatformMacOS:
		return "scons platform=macos target=template_release"
	default:
		return "scons platform=linux target=template_release bits=64"
	}
}
