package platform

import (
	"fmt"

	"github.com/mj1618/axkit/ax"
)

// Resolve returns the element opts selects. With no root selector it falls
// back to the frontmost application.
func Resolve(sys *ax.System, opts TargetOptions) (*ax.Element, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var root *ax.Element
	var err error
	switch {
	case opts.PID != 0:
		root, err = sys.FromPID(opts.PID)
	case opts.BundleID != "":
		root, err = sys.FromBundleID(opts.BundleID)
	case opts.App != "":
		root, err = sys.FromLocalizedName(opts.App)
	case opts.SystemWide:
		root, err = sys.SystemWide()
	default:
		root, err = sys.Frontmost()
	}
	if err != nil {
		return nil, err
	}

	if opts.Path == "" {
		return root, nil
	}
	el, err := root.WalkElement(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	return el, nil
}
