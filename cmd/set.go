package cmd

import (
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set ATTRIBUTE VALUE",
	Short: "Write one attribute of an element",
	Long: `Write one attribute of an element. VALUE is text unless --type says otherwise.

Types: string, bool, int, float, point (x,y), size (w,h), range (location,length)
and rect (x,y,w,h).

Examples:
  axkit set AXValue "hello" --app TextEdit --path AXWindows[0].AXChildren[0]
  axkit set AXPosition 100,100 --type point --app TextEdit --path AXWindows[0]`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	addTargetFlags(setCmd)
	setCmd.Flags().String("type", "string", "Value type: string, bool, int, float, point, size, range, rect")
}

func runSet(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("type")
	value, err := model.ParseValue(kind, args[1])
	if err != nil {
		return err
	}

	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	if err := el.Set(args[0], value); err != nil {
		return err
	}
	logging.Info("attribute written", "element", el.String(), "attribute", args[0])

	return output.Print(output.ActionResult{
		OK:      true,
		Element: el.String(),
		Action:  "set " + args[0],
	})
}
