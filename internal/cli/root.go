package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nativecheck",
	Short: "nativecheck: verify the native_automata GDExtension is ready to load",
	Long: "nativecheck confirms, before launching Godot, that a godot-cpp checkout with generated\n" +
		"headers is available and that the native_automata library has been built into bin/.\n" +
		"Set GODOT_CPP_PATH to point at an existing godot-cpp checkout.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the setup check
		return runCheck(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits with the check's status.
func Execute() {
	code, err := execute(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}

func execute(ctx context.Context, args []string) (int, error) {
	exitCode = 0
	checkRoot, checkJSON, checkWatch, checkVerbose = "", false, false, false
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1, err
	}
	return exitCode, nil
}
