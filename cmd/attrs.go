package cmd

import (
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs",
	Short: "List the attributes and actions of an element",
	Long: `List the attribute names and action names an element supports, and which
attributes are writable.

Examples:
  axkit attrs --bundle com.apple.TextEdit
  axkit attrs --app TextEdit --path AXWindows[0].AXZoomButton`,
	Args: cobra.NoArgs,
	RunE: runAttrs,
}

func init() {
	rootCmd.AddCommand(attrsCmd)
	addTargetFlags(attrsCmd)
	attrsCmd.Flags().Bool("settable", false, "Also report which attributes are writable")
}

func runAttrs(cmd *cobra.Command, args []string) error {
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	settable, _ := cmd.Flags().GetBool("settable")

	attrs, err := el.AttributeNames()
	if err != nil {
		return err
	}
	actions, err := el.ActionNames()
	if err != nil {
		return err
	}

	result := output.AttributesResult{
		Element:    el.String(),
		Attributes: attrs,
		Actions:    actions,
	}
	if settable {
		for _, name := range attrs {
			// attributes that fail the check are reported as read-only
			if ok, err := el.IsSettable(name); err == nil && ok {
				result.Settable = append(result.Settable, name)
			}
		}
	}
	return output.Print(result)
}
