//go:build darwin && cgo

package macos

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static int axk_is_trusted(void) {
    return AXIsProcessTrusted();
}

static int axk_request_trust(void) {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { kCFBooleanTrue };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault,
        keys,
        values,
        1,
        &kCFTypeDictionaryKeyCallBacks,
        &kCFTypeDictionaryValueCallBacks);
    int trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted;
}
*/
import "C"

// IsAccessibilityTrusted returns true if the process has accessibility permission.
func IsAccessibilityTrusted() bool {
	return C.axk_is_trusted() != 0
}

// RequestAccessibilityPermission shows the system prompt that sends the user
// to the Accessibility settings pane. It returns the trust state at the time
// of the call; granting takes effect only after the user acts.
func RequestAccessibilityPermission() bool {
	return C.axk_request_trust() != 0
}
