package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var atCmd = &cobra.Command{
	Use:   "at X Y",
	Short: "Show the element under a screen point",
	Long: `Show the deepest element under a screen point. The search starts at the
system-wide element unless a target is given, in which case only that
application's elements are considered.

Examples:
  axkit at 400 300
  axkit at 400 300 --app Safari`,
	Args: cobra.ExactArgs(2),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)
	addTargetFlags(atCmd)
	atCmd.Flags().Bool("raw-roles", false, "Print AXRole names instead of compact codes")
}

func parsePoint(xs, ys string) (float64, float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y %q", ys)
	}
	return x, y, nil
}

func runAt(cmd *cobra.Command, args []string) error {
	x, y, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}
	rawRoles, _ := cmd.Flags().GetBool("raw-roles")

	var origin *ax.Element
	if targetGiven(cmd) {
		_, origin, err = resolveTarget(cmd)
	} else {
		var sys *ax.System
		if _, sys, err = openSystem(); err == nil {
			if err = requireTrusted(sys); err == nil {
				origin, err = sys.SystemWide()
			}
		}
	}
	if err != nil {
		return err
	}

	el, err := origin.ElementAtPosition(x, y)
	if err != nil {
		return fmt.Errorf("no element at (%g, %g): %w", x, y, err)
	}
	snap, err := model.Snapshot(el, model.SnapshotOptions{MaxNodes: 1, RawRoles: rawRoles})
	if err != nil {
		return err
	}
	pid, _ := el.PID()

	return output.Print(output.AtResult{X: x, Y: y, PID: pid, Element: snap})
}
