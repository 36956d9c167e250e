package system

import (
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for diagnostics that are not part
// of the check report. It prints to stderr so stdout stays clean for --json.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
    Prefix:          "nativecheck",
})

// SetVerbose toggles debug-level output (probed paths, watch targets).
func SetVerbose(on bool) {
    if on {
        Logger.SetLevel(clog.DebugLevel)
        return
    }
    Logger.SetLevel(clog.InfoLevel)
}
