package cmd

import (
	"bytes"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/ax/axtest"
	"github.com/mj1618/axkit/internal/config"
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/image/draw"
)

// fakeClipboard is an in-memory platform.ClipboardManager.
type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() (string, error) { return c.text, nil }
func (c *fakeClipboard) SetText(text string) error { c.text = text; return nil }
func (c *fakeClipboard) Clear() error              { c.text = ""; return nil }

// fakeScreen returns a white capture at twice the requested size and records
// the regions it was asked for.
type fakeScreen struct {
	regions []platform.Bounds
}

func (s *fakeScreen) CaptureRegion(b platform.Bounds) (image.Image, error) {
	s.regions = append(s.regions, b)
	img := image.NewRGBA(image.Rect(0, 0, b.Width*2, b.Height*2))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img, nil
}

// testDesktop is a fake TextEdit with one window holding a text field and a
// zoom button.
type testDesktop struct {
	gw    *axtest.Gateway
	dir   *axtest.Directory
	clip  *fakeClipboard
	shot  *fakeScreen
	app   *axtest.Node
	win   *axtest.Node
	zoom  *axtest.Node
	field *axtest.Node
}

func newTestDesktop(t *testing.T) *testDesktop {
	t.Helper()
	gw := axtest.NewGateway()
	d := &testDesktop{
		gw:   gw,
		dir:  axtest.NewDirectory(ax.Application{PID: 100, BundleID: "com.apple.TextEdit", LocalizedName: "TextEdit", Active: true}),
		clip: &fakeClipboard{},
		shot: &fakeScreen{},
	}

	d.app = gw.App(100, "TextEdit").With(ax.AttrFrontmost, ax.RawBoolean(true))
	d.win = gw.Node("window")
	d.zoom = gw.Node("zoom")
	d.field = gw.Node("field")
	d.app.WithElements(ax.AttrWindows, d.win).WithElements(ax.AttrChildren, d.win)
	d.win.WithRole("AXWindow").
		WithString(ax.AttrTitle, "Untitled").
		WithFrame(0, 0, 800, 600).
		WithElement(ax.AttrZoomButton, d.zoom).
		WithElements(ax.AttrChildren, d.zoom, d.field).
		Settable(ax.AttrPosition)
	d.zoom.WithRole("AXButton").
		WithFrame(40, 4, 14, 14).
		WithActions(ax.ActionPress, "AXZoomWindow")
	d.field.WithRole("AXTextField").
		WithString(ax.AttrValue, "draft").
		WithFrame(10, 40, 300, 24).
		With(ax.AttrFocused, ax.RawBoolean(true)).
		Settable(ax.AttrValue)

	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Gateway: d.gw, Directory: d.dir, Clipboard: d.clip, Screenshotter: d.shot}, nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = orig })
	t.Setenv(config.EnvPath, filepath.Join(t.TempDir(), "config.yaml"))
	return d
}

// resetFlags restores every flag to its default so runs don't leak into
// each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	defer func() {
		output.OutputFormat = output.FormatYAML
		output.PrettyOutput = false
		messagingTimeout = 0
	}()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	var stderr bytes.Buffer
	rootCmd.SetOut(w)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	w.Close()
	os.Stdout = old
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	return <-done, err
}

func TestGetTargetOptions(t *testing.T) {
	newTestDesktop(t)
	resetFlags(rootCmd)
	if err := getCmd.ParseFlags([]string{"--bundle", "com.apple.TextEdit", "--path", "AXWindows[0]"}); err != nil {
		t.Fatal(err)
	}
	defer resetFlags(rootCmd)

	opts := getTargetOptions(getCmd)
	if opts.BundleID != "com.apple.TextEdit" || opts.Path != "AXWindows[0]" {
		t.Errorf("getTargetOptions = %+v", opts)
	}
	if !targetGiven(getCmd) {
		t.Error("targetGiven should be true after --bundle")
	}
}

func TestAddTargetFlags(t *testing.T) {
	for _, c := range []*cobra.Command{attrsCmd, getCmd, setCmd, performCmd, atCmd, treeCmd, activateCmd, captureCmd} {
		for _, name := range targetFlags {
			if c.Flags().Lookup(name) == nil {
				t.Errorf("%s: expected flag %q not found", c.Name(), name)
			}
		}
	}
}

func TestResolveTarget_Untrusted(t *testing.T) {
	d := newTestDesktop(t)
	d.dir.IsTrusted = false

	_, err := run(t, "get", "AXTitle", "--pid", "100")
	if err == nil {
		t.Fatal("expected an error when not trusted")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("accessibility permission required")) {
		t.Errorf("error = %v", err)
	}
}

func TestResolveTarget_UntrustedIsAPIDisabled(t *testing.T) {
	d := newTestDesktop(t)
	d.dir.IsTrusted = false

	_, err := run(t, "at", "20", "50")
	if !errors.Is(err, ax.ErrAPIDisabled) {
		t.Fatalf("err = %v, want ErrAPIDisabled", err)
	}
	if !strings.Contains(err.Error(), "axkit trusted --prompt") {
		t.Errorf("error should point at the prompt command: %v", err)
	}
}
