package logging

import (
	"bytes"
	"testing"
)

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(bytes.Buffer) = true, want false")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(true) {
		t.Error("supportsColor() = true with NO_COLOR set")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(true) {
		t.Error("supportsColor() = true with TERM=dumb")
	}
}

func TestSupportsColor_NotATTY(t *testing.T) {
	if SupportsColor(&bytes.Buffer{}) {
		t.Error("SupportsColor(buffer) = true, want false")
	}
}
