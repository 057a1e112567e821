//go:build darwin && cgo

package macos

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    int pid;
    char *bundleID;
    char *name;
    int active;
} AXKApp;

static char *axk_dup(NSString *s) {
    return s ? strdup([s UTF8String]) : NULL;
}

static int axk_running_apps(AXKApp **out, int *count) {
    @autoreleasepool {
        NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
        int n = (int)[apps count];
        AXKApp *buf = calloc(n > 0 ? n : 1, sizeof(AXKApp));
        if (buf == NULL) {
            return -1;
        }
        for (int i = 0; i < n; i++) {
            NSRunningApplication *app = apps[i];
            buf[i].pid = [app processIdentifier];
            buf[i].bundleID = axk_dup([app bundleIdentifier]);
            buf[i].name = axk_dup([app localizedName]);
            buf[i].active = [app isActive] ? 1 : 0;
        }
        *out = buf;
        *count = n;
        return 0;
    }
}

static void axk_free_apps(AXKApp *apps, int count) {
    for (int i = 0; i < count; i++) {
        free(apps[i].bundleID);
        free(apps[i].name);
    }
    free(apps);
}

static int axk_frontmost_pid(void) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        return app ? [app processIdentifier] : -1;
    }
}

// axk_terminate asks the first app with the bundle ID to quit. It returns
// -1 when none is running, otherwise the result of -terminate.
static int axk_terminate(const char *bundleID) {
    @autoreleasepool {
        NSString *bid = [NSString stringWithUTF8String:bundleID];
        NSArray<NSRunningApplication *> *apps = [NSRunningApplication runningApplicationsWithBundleIdentifier:bid];
        if ([apps count] == 0) {
            return -1;
        }
        return [apps[0] terminate] ? 1 : 0;
    }
}

static int axk_activate(int pid) {
    @autoreleasepool {
        NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
        if (app == nil) {
            return -1;
        }
        return [app activateWithOptions:NSApplicationActivateIgnoringOtherApps] ? 0 : -1;
    }
}
*/
import "C"
import (
	"fmt"
	"os/exec"
	"unsafe"

	"github.com/mj1618/axkit/ax"
)

// Directory is the ax.Directory backed by NSWorkspace.
type Directory struct{}

var _ ax.Directory = (*Directory)(nil)

// NewDirectory returns the NSWorkspace directory.
func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) RunningApplications() ([]ax.Application, error) {
	var cApps *C.AXKApp
	var cCount C.int
	if C.axk_running_apps(&cApps, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate running applications")
	}
	defer C.axk_free_apps(cApps, cCount)

	count := int(cCount)
	apps := make([]ax.Application, 0, count)
	for _, ca := range unsafe.Slice(cApps, count) {
		apps = append(apps, ax.Application{
			PID:           int(ca.pid),
			BundleID:      cStringOrEmpty(ca.bundleID),
			LocalizedName: cStringOrEmpty(ca.name),
			Active:        ca.active != 0,
		})
	}
	return apps, nil
}

func cStringOrEmpty(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func (d *Directory) ApplicationsWithBundleID(bundleID string) ([]ax.Application, error) {
	apps, err := d.RunningApplications()
	if err != nil {
		return nil, err
	}
	out := []ax.Application{}
	for _, app := range apps {
		if app.BundleID == bundleID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (d *Directory) Application(pid int) (ax.Application, error) {
	apps, err := d.RunningApplications()
	if err != nil {
		return ax.Application{}, err
	}
	for _, app := range apps {
		if app.PID == pid {
			return app, nil
		}
	}
	return ax.Application{}, fmt.Errorf("pid %d: %w", pid, ax.ErrAppNotFound)
}

func (d *Directory) FrontmostPID() (int, error) {
	pid := int(C.axk_frontmost_pid())
	if pid < 0 {
		return 0, fmt.Errorf("no frontmost application: %w", ax.ErrAppNotFound)
	}
	return pid, nil
}

// Launch starts an application by bundle ID through open(1).
func (d *Directory) Launch(bundleID string) error {
	if out, err := exec.Command("open", "-b", bundleID).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to launch %q: %s", bundleID, string(out))
	}
	return nil
}

// LaunchPath starts the bundle at path. Arguments go to the application, not
// to open(1).
func (d *Directory) LaunchPath(path string, args []string) error {
	cmdArgs := []string{"-a", path}
	if len(args) > 0 {
		cmdArgs = append(cmdArgs, "--args")
		cmdArgs = append(cmdArgs, args...)
	}
	if out, err := exec.Command("open", cmdArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to launch %q: %s", path, string(out))
	}
	return nil
}

// Terminate asks the first running app with the bundle ID to quit. It
// reports false when none is running or the app refuses.
func (d *Directory) Terminate(bundleID string) (bool, error) {
	cs := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cs))
	return C.axk_terminate(cs) == 1, nil
}

func (d *Directory) Activate(pid int) error {
	if C.axk_activate(C.int(pid)) != 0 {
		return fmt.Errorf("failed to activate app with PID %d", pid)
	}
	return nil
}

func (d *Directory) Trusted() bool {
	return IsAccessibilityTrusted()
}
