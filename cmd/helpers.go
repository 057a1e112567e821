package cmd

import (
	"fmt"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
)

// targetFlags are the flags addTargetFlags registers.
var targetFlags = []string{"pid", "bundle", "app", "frontmost", "system-wide", "path"}

// addTargetFlags registers the element selector flags on cmd.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().Int("pid", 0, "Application by process ID")
	cmd.Flags().String("bundle", "", "Application by bundle ID (e.g. com.apple.Safari)")
	cmd.Flags().String("app", "", "Application by name; shell wildcards allowed (e.g. \"Text*\")")
	cmd.Flags().Bool("frontmost", false, "The frontmost application (default)")
	cmd.Flags().Bool("system-wide", false, "The system-wide element")
	cmd.Flags().String("path", "", "Attribute path from the application, e.g. AXWindows[0].AXZoomButton")
}

func getTargetOptions(cmd *cobra.Command) platform.TargetOptions {
	pid, _ := cmd.Flags().GetInt("pid")
	bundle, _ := cmd.Flags().GetString("bundle")
	app, _ := cmd.Flags().GetString("app")
	frontmost, _ := cmd.Flags().GetBool("frontmost")
	systemWide, _ := cmd.Flags().GetBool("system-wide")
	path, _ := cmd.Flags().GetString("path")
	return platform.TargetOptions{
		PID:        pid,
		BundleID:   bundle,
		App:        app,
		Frontmost:  frontmost,
		SystemWide: systemWide,
		Path:       path,
	}
}

// targetGiven reports whether any selector flag was set on the command line.
func targetGiven(cmd *cobra.Command) bool {
	for _, name := range targetFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// openSystem creates the provider and opens an ax.System with the configured
// timeout and logger.
func openSystem() (*platform.Provider, *ax.System, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	opts := []ax.Option{ax.WithLogger(logging.Logger())}
	if messagingTimeout > 0 {
		opts = append(opts, ax.WithTimeout(messagingTimeout))
	}
	sys, err := provider.System(opts...)
	if err != nil {
		return nil, nil, err
	}
	return provider, sys, nil
}

// requireTrusted fails early with instructions when the process may not use
// the accessibility API.
func requireTrusted(sys *ax.System) error {
	if err := sys.CheckAccessibility(); err != nil {
		return fmt.Errorf("%w\nor run `axkit trusted --prompt` to open the system prompt", err)
	}
	return nil
}

// resolveTarget opens the system and resolves the element the selector
// flags name.
func resolveTarget(cmd *cobra.Command) (*ax.System, *ax.Element, error) {
	opts := getTargetOptions(cmd)
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	_, sys, err := openSystem()
	if err != nil {
		return nil, nil, err
	}
	if err := requireTrusted(sys); err != nil {
		return nil, nil, err
	}
	el, err := platform.Resolve(sys, opts)
	if err != nil {
		return nil, nil, err
	}
	logging.Debug("resolved target", "element", el.String())
	return sys, el, nil
}
