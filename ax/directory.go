package ax

// Application describes one running application.
type Application struct {
	PID           int    `yaml:"pid"                json:"pid"`
	BundleID      string `yaml:"bundle_id,omitempty" json:"bundle_id,omitempty"`
	LocalizedName string `yaml:"name,omitempty"      json:"name,omitempty"`
	Active        bool   `yaml:"active,omitempty"    json:"active,omitempty"`
}

// Directory resolves and controls running applications. It knows nothing about
// accessibility elements; System turns its answers into elements.
type Directory interface {
	// RunningApplications returns a fresh snapshot of running applications.
	RunningApplications() ([]Application, error)

	// ApplicationsWithBundleID returns running applications with the bundle
	// identifier, or an empty slice.
	ApplicationsWithBundleID(bundleID string) ([]Application, error)

	// Application looks up one running process.
	Application(pid int) (Application, error)

	// FrontmostPID returns the process id of the frontmost application.
	FrontmostPID() (int, error)

	// Launch starts the application with the bundle identifier.
	Launch(bundleID string) error

	// LaunchPath starts the application bundle at path with arguments.
	LaunchPath(path string, args []string) error

	// Terminate asks the first application with the bundle identifier to
	// quit. It reports false when no such application is running or the
	// application refuses; neither case is an error.
	Terminate(bundleID string) (bool, error)

	// Activate brings the application's windows forward.
	Activate(pid int) error

	// Trusted reports whether this process may use the accessibility API.
	Trusted() bool
}
