package cmd

import (
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
)

// TrustedResult is the output of `trusted`.
type TrustedResult struct {
	Trusted  bool `yaml:"trusted"            json:"trusted"`
	Prompted bool `yaml:"prompted,omitempty" json:"prompted,omitempty"`
}

var trustedCmd = &cobra.Command{
	Use:   "trusted",
	Short: "Report whether this process may use the accessibility API",
	Long: `Report whether this process may use the accessibility API. With --prompt,
an untrusted process also shows the system dialog that leads to
System Settings > Privacy & Security > Accessibility.`,
	Args: cobra.NoArgs,
	RunE: runTrusted,
}

func init() {
	rootCmd.AddCommand(trustedCmd)
	trustedCmd.Flags().Bool("prompt", false, "Show the system permission prompt when not trusted")
}

func runTrusted(cmd *cobra.Command, args []string) error {
	prompt, _ := cmd.Flags().GetBool("prompt")

	_, sys, err := openSystem()
	if err != nil {
		return err
	}
	result := TrustedResult{Trusted: sys.AccessibilityEnabled()}
	if !result.Trusted && prompt && platform.RequestPermissionsFunc != nil {
		platform.RequestPermissionsFunc()
		result.Prompted = true
	}
	return output.Print(result)
}
