package goodmoney

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	id := newID(testNow)

	millis, suffix, ok := strings.Cut(id, "-")
	if !ok {
		t.Fatalf("id %q should be <millis>-<random>", id)
	}
	if millis != strconv.FormatInt(testNow.UnixMilli(), 10) {
		t.Errorf("id millis = %q, want %d", millis, testNow.UnixMilli())
	}
	if len(suffix) != 8 {
		t.Errorf("id random suffix = %q, want 8 characters", suffix)
	}

	// Same instant, still unique.
	if other := newID(testNow); other == id {
		t.Errorf("two ids for the same instant collide: %q", id)
	}
}
