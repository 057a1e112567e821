package axtest

import (
	"fmt"

	"github.com/mj1618/axkit/ax"
)

// Directory is an in-memory ax.Directory.
type Directory struct {
	Apps      []ax.Application
	Front     int
	IsTrusted bool
	Err       error
	// Refusing lists bundle IDs whose apps decline to terminate.
	Refusing map[string]bool

	Launched   []string
	Terminated []string
	Activated  []int
}

var _ ax.Directory = (*Directory)(nil)

// NewDirectory returns a trusted directory listing apps in order.
func NewDirectory(apps ...ax.Application) *Directory {
	return &Directory{Apps: apps, IsTrusted: true}
}

func (d *Directory) RunningApplications() ([]ax.Application, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	out := make([]ax.Application, len(d.Apps))
	copy(out, d.Apps)
	return out, nil
}

func (d *Directory) ApplicationsWithBundleID(bundleID string) ([]ax.Application, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	out := []ax.Application{}
	for _, app := range d.Apps {
		if app.BundleID == bundleID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (d *Directory) Application(pid int) (ax.Application, error) {
	for _, app := range d.Apps {
		if app.PID == pid {
			return app, nil
		}
	}
	return ax.Application{}, fmt.Errorf("pid %d: %w", pid, ax.ErrAppNotFound)
}

func (d *Directory) FrontmostPID() (int, error) {
	if d.Front == 0 {
		return 0, fmt.Errorf("no frontmost application: %w", ax.ErrAppNotFound)
	}
	return d.Front, nil
}

func (d *Directory) Launch(bundleID string) error {
	d.Launched = append(d.Launched, bundleID)
	return nil
}

func (d *Directory) LaunchPath(path string, args []string) error {
	d.Launched = append(d.Launched, path)
	return nil
}

func (d *Directory) Terminate(bundleID string) (bool, error) {
	for _, app := range d.Apps {
		if app.BundleID != bundleID {
			continue
		}
		if d.Refusing[bundleID] {
			return false, nil
		}
		d.Terminated = append(d.Terminated, fmt.Sprintf("%s/%d", bundleID, app.PID))
		return true, nil
	}
	return false, nil
}

func (d *Directory) Activate(pid int) error {
	d.Activated = append(d.Activated, pid)
	return nil
}

func (d *Directory) Trusted() bool {
	return d.IsTrusted
}
