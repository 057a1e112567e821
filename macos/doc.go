// Package macos binds the ax object model to the real macOS accessibility
// server (AXUIElement*) and to NSWorkspace for the application directory.
// Everything native requires CGo and the ApplicationServices and AppKit
// frameworks. On other platforms, or with CGo disabled, Open and the
// constructors return platform.ErrUnsupported.
package macos
