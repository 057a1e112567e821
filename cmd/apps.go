package cmd

import (
	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/output"
	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running applications",
	Long:  "List running applications with their PID, bundle ID and name. The active application is marked.",
	Args:  cobra.NoArgs,
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().String("bundle", "", "Only applications with this bundle ID")
	appsCmd.Flags().Bool("named", false, "Skip processes without a localized name")
}

func runApps(cmd *cobra.Command, args []string) error {
	_, sys, err := openSystem()
	if err != nil {
		return err
	}

	bundle, _ := cmd.Flags().GetString("bundle")
	named, _ := cmd.Flags().GetBool("named")

	apps, err := sys.RunningApplications()
	if err != nil {
		return err
	}
	entries := []ax.Application{}
	for _, app := range apps {
		if bundle != "" && app.BundleID != bundle {
			continue
		}
		if named && app.LocalizedName == "" {
			continue
		}
		entries = append(entries, app)
	}
	return output.Print(entries)
}
