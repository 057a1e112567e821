package ax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/ax/axtest"
)

const textEditPID = 100

// desktop is a small fake desktop: TextEdit with one window holding a zoom
// button and a title element.
type desktop struct {
	gw     *axtest.Gateway
	dir    *axtest.Directory
	sys    *ax.System
	app    *axtest.Node
	window *axtest.Node
	zoom   *axtest.Node
	title  *axtest.Node
}

func newDesktop(t *testing.T, opts ...ax.Option) *desktop {
	t.Helper()
	gw := axtest.NewGateway()
	d := &desktop{gw: gw}

	d.app = gw.App(textEditPID, "TextEdit").
		WithString(ax.AttrRoleDescription, "application").
		With(ax.AttrFrontmost, ax.RawBoolean(true))
	d.window = gw.Node("window")
	d.app.WithElements(ax.AttrWindows, d.window).WithElement(ax.AttrMainWindow, d.window)

	d.zoom = gw.Node("zoom")
	d.title = gw.Node("title")
	d.window.WithRole("AXWindow").
		WithString(ax.AttrTitle, "Untitled").
		WithFrame(0, 0, 800, 600).
		With(ax.AttrChildren, nil).
		WithElement(ax.AttrZoomButton, d.zoom).
		WithElement(ax.AttrTitleUIElement, d.title).
		WithActions(ax.ActionRaise)

	d.zoom.WithRole("AXButton").
		WithFrame(40, 4, 14, 14).
		WithActions(ax.ActionPress, ax.ActionZoom)

	d.title.WithRole("AXStaticText").
		WithString(ax.AttrValue, "Untitled").
		WithFrame(350, 4, 100, 16).
		With("AXVisibleCharacterRange", ax.NewRawRange(0, 8)).
		Settable(ax.AttrValue)

	d.dir = axtest.NewDirectory(ax.Application{PID: textEditPID, BundleID: "com.apple.TextEdit", LocalizedName: "TextEdit"})
	sys, err := ax.Open(gw, d.dir, opts...)
	require.NoError(t, err)
	d.sys = sys
	return d
}

func (d *desktop) root(t *testing.T) *ax.Element {
	t.Helper()
	e, err := d.sys.FromPID(textEditPID)
	require.NoError(t, err)
	return e
}

func (d *desktop) element(t *testing.T, path string) *ax.Element {
	t.Helper()
	e, err := d.root(t).WalkElement(path)
	require.NoError(t, err)
	return e
}
