package cmd

import (
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var terminateCmd = &cobra.Command{
	Use:   "terminate BUNDLE_ID",
	Short: "Ask every running application with a bundle ID to quit",
	Long:  "Ask every running application with the bundle ID to quit. ok is false when none was running.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTerminate,
}

func init() {
	rootCmd.AddCommand(terminateCmd)
}

func runTerminate(cmd *cobra.Command, args []string) error {
	_, sys, err := openSystem()
	if err != nil {
		return err
	}
	ok, err := sys.Terminate(args[0])
	if err != nil {
		return err
	}
	result := output.ActionResult{OK: ok, Action: "terminate", Detail: args[0]}
	if !ok {
		result.Detail = args[0] + " is not running or refused to quit"
	}
	return output.Print(result)
}
