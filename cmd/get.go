package cmd

import (
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get ATTRIBUTE",
	Short: "Read one attribute of an element",
	Long: `Read one attribute of an element. Element values print as their
description; points, sizes, ranges and rects print as structures.

Examples:
  axkit get AXTitle --app TextEdit --path AXWindows[0]
  axkit get AXFocusedUIElement --system-wide`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	addTargetFlags(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	v, err := el.Get(args[0])
	if err != nil {
		return err
	}
	return output.Print(output.NewValueResult(el, args[0], v))
}
