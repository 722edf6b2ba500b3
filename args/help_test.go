//nolint:testpackage // using package name 'args' to access unexported fields for testing
package args

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpRendering(t *testing.T) {
	p := newTestParser(t)
	if err := p.AddFlag("-v", "--verbose", "Enable verbose output", false); err != nil {
		t.Fatalf("AddFlag failed: %v", err)
	}
	if err := p.AddString("-i", "--input", "Input file path", true, ""); err != nil {
		t.Fatalf("AddString failed: %v", err)
	}
	if err := p.AddInt("", "--count", "Number of iterations", false, 10); err != nil {
		t.Fatalf("AddInt failed: %v", err)
	}
	if err := p.AddFloat("-t", "--threshold", "Threshold value", false, 0.5); err != nil {
		t.Fatalf("AddFloat failed: %v", err)
	}

	var buf bytes.Buffer
	p.WriteHelp(&buf, "demo")
	out := buf.String()

	want := []string{
		"Usage: demo [OPTIONS]...",
		"Options:",
		"  -v, --verbose\n",
		"      Enable verbose output\n",
		"  -i, --input <string>\n",
		"      Input file path (required)\n",
		"  --count <int>\n",
		"  -t, --threshold <float>\n",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("Help output missing %q:\n%s", w, out)
		}
	}

	// Flags carry no placeholder and optional options no marker.
	if strings.Contains(out, "--verbose <") {
		t.Errorf("Flag rendered with a placeholder:\n%s", out)
	}
	if strings.Contains(out, "Number of iterations (required)") {
		t.Errorf("Optional option rendered as required:\n%s", out)
	}
}

func TestHelpRegistrationOrder(t *testing.T) {
	p := newTestParser(t)
	for _, long := range []string{"--zeta", "--alpha", "--mid"} {
		if err := p.AddFlag("", long, "d", false); err != nil {
			t.Fatalf("AddFlag failed: %v", err)
		}
	}

	var buf bytes.Buffer
	p.WriteHelp(&buf, "demo")
	out := buf.String()

	zeta := strings.Index(out, "--zeta")
	alpha := strings.Index(out, "--alpha")
	mid := strings.Index(out, "--mid")
	if !(zeta < alpha && alpha < mid) {
		t.Errorf("Expected registration order zeta<alpha<mid, got positions %d %d %d", zeta, alpha, mid)
	}
}

func TestHelpDefaultProgramName(t *testing.T) {
	p := newTestParser(t)
	var buf bytes.Buffer
	p.WriteHelp(&buf, "")
	if !strings.HasPrefix(buf.String(), "Usage: program ") {
		t.Errorf("Expected fallback program name, got %q", buf.String())
	}
}
