package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerRoutesErrorsToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Info("extracted %d rows", 3)
	l.Error("table not found")

	if !strings.Contains(out.String(), "extracted 3 rows") {
		t.Errorf("info output missing message: %q", out.String())
	}
	if strings.Contains(out.String(), "table not found") {
		t.Error("error message leaked to stdout writer")
	}
	if !strings.Contains(errOut.String(), "table not found") {
		t.Errorf("error output missing message: %q", errOut.String())
	}
}

func TestLoggerDebugGate(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("debug should be off by default, got %q", out.String())
	}

	l.SetDebug(true)
	l.Debug("shown")
	if !strings.Contains(out.String(), "shown") {
		t.Errorf("debug output missing after SetDebug(true): %q", out.String())
	}
}
