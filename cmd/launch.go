package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch [BUNDLE_ID] [-- ARGS...]",
	Short: "Launch an application by bundle ID or bundle path",
	Long: `Launch an application by bundle ID, or with --path by the location of its
.app bundle. Arguments after -- are passed to the application (--path only).

Examples:
  axkit launch com.apple.TextEdit --wait
  axkit launch --path /Applications/Calculator.app
  axkit launch --path /Applications/Safari.app -- --private`,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().String("path", "", "Launch the .app bundle at this path")
	launchCmd.Flags().Bool("wait", false, "Wait until the application answers accessibility requests (bundle ID only)")
	launchCmd.Flags().Int("wait-timeout", 10, "Max seconds to wait (used with --wait)")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	wait, _ := cmd.Flags().GetBool("wait")
	waitTimeout, _ := cmd.Flags().GetInt("wait-timeout")

	// everything after -- belongs to the application
	var bundleID string
	var appArgs []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		appArgs = args[dash:]
		args = args[:dash]
	}
	switch {
	case path != "" && len(args) > 0:
		return fmt.Errorf("specify a bundle ID or --path, not both")
	case path == "" && len(args) != 1:
		return fmt.Errorf("specify one bundle ID or --path")
	case path == "" && len(appArgs) > 0:
		return fmt.Errorf("application arguments require --path")
	case path == "":
		bundleID = args[0]
	}

	_, sys, err := openSystem()
	if err != nil {
		return err
	}

	if path != "" {
		if err := sys.LaunchPath(path, appArgs...); err != nil {
			return err
		}
		logging.Info("launched", "path", path, "args", appArgs)
		return output.Print(output.ActionResult{OK: true, Action: "launch", Detail: path})
	}

	if err := sys.Launch(bundleID); err != nil {
		return err
	}
	logging.Info("launched", "bundle", bundleID)

	result := output.ActionResult{OK: true, Action: "launch", Detail: bundleID}
	if wait {
		el, err := waitForApp(sys, bundleID, time.Duration(waitTimeout)*time.Second, 200*time.Millisecond)
		if err != nil {
			return err
		}
		result.Element = el.String()
	}
	return output.Print(result)
}

// waitForApp polls until an application with bundleID can be resolved.
func waitForApp(sys *ax.System, bundleID string, timeout, interval time.Duration) (*ax.Element, error) {
	deadline := time.Now().Add(timeout)
	for {
		el, err := sys.FromBundleID(bundleID)
		if err == nil {
			return el, nil
		}
		if !errors.Is(err, ax.ErrAppNotFound) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out after %s waiting for %s", timeout, bundleID)
		}
		time.Sleep(interval)
	}
}
