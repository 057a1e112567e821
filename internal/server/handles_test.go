package server

import (
	"testing"
	"time"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/ax/axtest"
)

func newHandleSystem(t *testing.T) (*ax.System, *axtest.Gateway) {
	t.Helper()
	gw := axtest.NewGateway()
	sys, err := ax.Open(gw, nil)
	if err != nil {
		t.Fatal(err)
	}
	return sys, gw
}

func TestHandles_PutGet(t *testing.T) {
	sys, gw := newHandleSystem(t)
	h := NewHandles(0)

	a := sys.Wrap(gw.App(1, "Finder"))
	b := sys.Wrap(gw.App(2, "Mail"))

	idA := h.Put(a)
	idB := h.Put(b)
	if idA == idB {
		t.Fatal("distinct elements got the same handle")
	}
	if again := h.Put(sys.Wrap(gw.App(1, "Finder"))); again != idA {
		t.Errorf("equal element got a new handle %q, want %q", again, idA)
	}

	got, ok := h.Get(idB)
	if !ok || !got.Equal(b) {
		t.Errorf("Get(%q) = %v, %v", idB, got, ok)
	}
	if _, ok := h.Get("missing"); ok {
		t.Error("Get of unknown handle succeeded")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", h.Len())
	}
}

func TestHandles_Expiry(t *testing.T) {
	sys, gw := newHandleSystem(t)
	h := NewHandles(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	idA := h.Put(sys.Wrap(gw.App(1, "Finder")))
	idB := h.Put(sys.Wrap(gw.App(2, "Mail")))

	now = now.Add(40 * time.Second)
	if _, ok := h.Get(idA); !ok {
		t.Fatal("handle expired early")
	}

	// B has now been idle for 70s, A for 30s.
	now = now.Add(30 * time.Second)
	if _, ok := h.Get(idB); ok {
		t.Error("idle handle should have expired")
	}
	if _, ok := h.Get(idA); !ok {
		t.Error("recently used handle should survive")
	}
}
