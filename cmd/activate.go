package cmd

import (
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Bring the application owning an element to the front",
	Args:  cobra.NoArgs,
	RunE:  runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
	addTargetFlags(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	if err := el.Activate(); err != nil {
		return err
	}
	return output.Print(output.ActionResult{OK: true, Element: el.String(), Action: "activate"})
}
