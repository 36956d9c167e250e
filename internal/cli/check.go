package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"nativecheck/internal/config"
	"nativecheck/internal/setup"
	"nativecheck/internal/system"
)

var (
	checkRoot    string
	checkJSON    bool
	checkWatch   bool
	checkVerbose bool

	// exitCode carries the last check's status out of RunE.
	exitCode int
)

func init() {
	rootCmd.AddCommand(checkCmd)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&checkRoot, "root", "", "project root (default: detected from the working directory)")
	pf.BoolVar(&checkJSON, "json", false, "output JSON report")
	pf.BoolVarP(&checkWatch, "watch", "w", false, "re-run when bin/ or godot-cpp changes")
	pf.BoolVarP(&checkVerbose, "verbose", "v", false, "log probed paths to stderr")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check godot-cpp headers and the native_automata library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

func runCheck(cmd *cobra.Command) error {
	system.SetVerbose(checkVerbose)

	root := checkRoot
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		root = config.ProjectRoot(cwd)
	} else if abs, err := filepath.Abs(config.ExpandPath(root)); err == nil {
		root = abs
	}
	system.Logger.Debug("project root", "path", root)

	out := cmd.OutOrStdout()
	render := func(r setup.Result) {
		var err error
		if checkJSON {
			err = setup.WriteJSON(out, r)
		} else {
			err = setup.WriteText(out, r)
		}
		if err != nil {
			system.Logger.Error("write report", "err", err)
		}
	}

	c := setup.NewChecker(root)
	if checkWatch {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		res, err := setup.Watch(ctx, c, setup.DefaultDebounce, render)
		if err != nil {
			return err
		}
		exitCode = res.ExitCode()
		return nil
	}

	res := c.Run()
	render(res)
	exitCode = res.ExitCode()
	return nil
}
