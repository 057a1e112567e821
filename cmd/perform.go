package cmd

import (
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var performCmd = &cobra.Command{
	Use:   "perform [ACTION]",
	Short: "Perform an accessibility action on an element",
	Long: `Perform an accessibility action on an element. ACTION is a short name
(press, cancel, pick, increment, decrement, confirm, showmenu, raise, zoom) or
a full AX action name. The default is press.

Examples:
  axkit perform --app TextEdit --path AXWindows[0].AXZoomButton
  axkit perform raise --bundle com.apple.TextEdit --path AXWindows[1]`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPerform,
}

func init() {
	rootCmd.AddCommand(performCmd)
	addTargetFlags(performCmd)
}

func runPerform(cmd *cobra.Command, args []string) error {
	action := "press"
	if len(args) > 0 {
		action = args[0]
	}

	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	available, err := el.ActionNames()
	if err != nil {
		return err
	}
	name := model.ActionName(action, available)
	if err := el.Perform(name); err != nil {
		return err
	}
	logging.Info("action performed", "element", el.String(), "action", name)

	return output.Print(output.ActionResult{
		OK:      true,
		Element: el.String(),
		Action:  name,
	})
}
