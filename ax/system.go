package ax

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gobwas/glob"
)

// System binds a Gateway and a Directory and hands out elements. All elements
// it creates, including children reached through attributes, share its
// gateway.
type System struct {
	gw      Gateway
	dir     Directory
	log     *slog.Logger
	timeout time.Duration
}

// Option configures a System.
type Option func(*System)

// WithTimeout sets the process-wide messaging timeout applied by Open.
func WithTimeout(d time.Duration) Option {
	return func(s *System) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for swallowed failures. The default
// discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// Open returns a System. dir may be nil when only pid-based and system-wide
// elements are needed.
func Open(gw Gateway, dir Directory, opts ...Option) (*System, error) {
	if gw == nil {
		return nil, errors.New("ax: nil gateway")
	}
	s := &System{
		gw:  gw,
		dir: dir,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout > 0 {
		if err := s.SetSystemWideTimeout(s.timeout); err != nil {
			return nil, fmt.Errorf("set system-wide timeout: %w", err)
		}
	}
	return s, nil
}

// Wrap turns a native handle into an Element. A nil ref gives a null element.
func (s *System) Wrap(ref Ref) *Element {
	e := &Element{ref: ref, sys: s}
	e.conv = NewConverter(s.Wrap)
	return e
}

// Timeout returns the process-wide timeout configured with WithTimeout.
func (s *System) Timeout() time.Duration {
	return s.timeout
}

func (s *System) directory() (Directory, error) {
	if s == nil || s.dir == nil {
		return nil, newError(KindUnsupported, "no application directory configured")
	}
	return s.dir, nil
}

// ElementOption configures one constructed element.
type ElementOption func(*elementConfig)

type elementConfig struct {
	timeout time.Duration
}

// Timeout overrides the messaging timeout for the constructed element only.
func Timeout(d time.Duration) ElementOption {
	return func(c *elementConfig) {
		c.timeout = d
	}
}

func (s *System) build(ref Ref, opts []ElementOption) (*Element, error) {
	var cfg elementConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	e := s.Wrap(ref)
	if cfg.timeout > 0 {
		if err := e.SetTimeout(cfg.timeout); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// FromPID returns the root element of a process.
func (s *System) FromPID(pid int, opts ...ElementOption) (*Element, error) {
	return s.build(s.gw.ApplicationRef(pid), opts)
}

// SystemWide returns the desktop-wide pseudo-element, the root for
// ElementAtPosition.
func (s *System) SystemWide(opts ...ElementOption) (*Element, error) {
	return s.build(s.gw.SystemWideRef(), opts)
}

// SetSystemWideTimeout changes the messaging timeout for every element that
// has no timeout of its own.
func (s *System) SetSystemWideTimeout(d time.Duration) error {
	return s.gw.SetMessagingTimeout(s.gw.SystemWideRef(), d)
}

// FromBundleID returns the root element of the first running application with
// the bundle identifier, such as com.apple.Safari.
func (s *System) FromBundleID(bundleID string, opts ...ElementOption) (*Element, error) {
	dir, err := s.directory()
	if err != nil {
		return nil, err
	}
	apps, err := dir.ApplicationsWithBundleID(bundleID)
	if err != nil {
		return nil, fmt.Errorf("look up bundle ID %q: %w", bundleID, err)
	}
	if len(apps) == 0 {
		return nil, fmt.Errorf("bundle ID %q not found in running apps: %w", bundleID, ErrAppNotFound)
	}
	return s.FromPID(apps[0].PID, opts...)
}

// FromLocalizedName returns the root element of the first running application
// whose localized name matches pattern. Shell wildcards are allowed.
func (s *System) FromLocalizedName(pattern string, opts ...ElementOption) (*Element, error) {
	dir, err := s.directory()
	if err != nil {
		return nil, err
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	apps, err := dir.RunningApplications()
	if err != nil {
		return nil, fmt.Errorf("list running apps: %w", err)
	}
	for _, app := range apps {
		if g.Match(app.LocalizedName) {
			return s.FromPID(app.PID, opts...)
		}
	}
	return nil, fmt.Errorf("application %q not found in running apps: %w", pattern, ErrAppNotFound)
}

// Frontmost searches the running applications for the one whose AXFrontmost
// attribute is true.
func (s *System) Frontmost(opts ...ElementOption) (*Element, error) {
	return s.search("frontmost", func(e *Element) (bool, error) {
		v, err := e.Get(AttrFrontmost)
		if err != nil {
			return false, err
		}
		b, ok := v.(Bool)
		return ok && bool(b), nil
	}, opts)
}

// WithWindow searches the running applications for one that has at least one
// window.
func (s *System) WithWindow(opts ...ElementOption) (*Element, error) {
	return s.search("with-window", func(e *Element) (bool, error) {
		windows, err := e.Elements(AttrWindows)
		if err != nil {
			return false, err
		}
		return len(windows) > 0, nil
	}, opts)
}

// search probes each running application in turn. Applications without a GUI
// fail their probe with accessibility errors; those are logged and skipped.
func (s *System) search(name string, match func(*Element) (bool, error), opts []ElementOption) (*Element, error) {
	dir, err := s.directory()
	if err != nil {
		return nil, err
	}
	apps, err := dir.RunningApplications()
	if err != nil {
		return nil, fmt.Errorf("list running apps: %w", err)
	}
	for _, app := range apps {
		e, err := s.FromPID(app.PID, opts...)
		if err != nil {
			if skippable(err) {
				s.log.Debug("skipping application", "search", name, "pid", app.PID, "err", err)
				continue
			}
			return nil, err
		}
		ok, err := match(e)
		if err != nil {
			if skippable(err) {
				s.log.Debug("skipping application", "search", name, "pid", app.PID, "err", err)
				continue
			}
			return nil, err
		}
		if ok {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no GUI application found: %w", ErrAppNotFound)
}

func skippable(err error) bool {
	var axErr *Error
	return errors.As(err, &axErr) || errors.Is(err, ErrAttributeNotFound)
}

// Launch starts an application by bundle identifier.
func (s *System) Launch(bundleID string) error {
	dir, err := s.directory()
	if err != nil {
		return err
	}
	return dir.Launch(bundleID)
}

// LaunchPath starts the application bundle at path.
func (s *System) LaunchPath(path string, args ...string) error {
	dir, err := s.directory()
	if err != nil {
		return err
	}
	return dir.LaunchPath(path, args)
}

// Terminate asks the application with the bundle identifier to quit.
func (s *System) Terminate(bundleID string) (bool, error) {
	dir, err := s.directory()
	if err != nil {
		return false, err
	}
	return dir.Terminate(bundleID)
}

// RunningApplications lists running applications.
func (s *System) RunningApplications() ([]Application, error) {
	dir, err := s.directory()
	if err != nil {
		return nil, err
	}
	return dir.RunningApplications()
}

// FrontmostPID asks the directory for the frontmost process directly, without
// probing accessibility attributes.
func (s *System) FrontmostPID() (int, error) {
	dir, err := s.directory()
	if err != nil {
		return 0, err
	}
	return dir.FrontmostPID()
}

// AccessibilityEnabled reports whether this process is trusted for
// accessibility. Without it every gateway call fails with ErrAPIDisabled.
func (s *System) AccessibilityEnabled() bool {
	if s.dir == nil {
		return false
	}
	return s.dir.Trusted()
}

// CheckAccessibility returns an ErrAPIDisabled error with instructions when
// the process is not trusted for accessibility.
func (s *System) CheckAccessibility() error {
	if s.AccessibilityEnabled() {
		return nil
	}
	return &Error{
		Kind: KindAPIDisabled,
		Code: CodeAPIDisabled,
		Message: "accessibility permission required; grant it at " +
			"System Settings > Privacy & Security > Accessibility",
	}
}
