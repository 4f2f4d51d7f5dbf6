package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"yrp"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestRun_NoArguments(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	if code == 0 {
		t.Fatalf("expected failure")
	}
	if stdout != "" {
		t.Fatalf("nothing should reach stdout: %q", stdout)
	}
	if got := lastLine(stderr); got != "yrp: No input file or flags." {
		t.Fatalf("diagnostic: %q", got)
	}
	if !strings.Contains(stderr, "USAGE") {
		t.Fatalf("usage should be printed: %q", stderr)
	}
}

func TestRun_FlagsWithoutFile(t *testing.T) {
	code, _, stderr := runCLI(t, "--names")
	if code == 0 || lastLine(stderr) != "yrp: No input file or flags." {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestRun_UnknownOption(t *testing.T) {
	code, _, stderr := runCLI(t, "--bogus", "x.yrpX")
	if code == 0 {
		t.Fatalf("expected failure")
	}
	if got := lastLine(stderr); got != "yrp: Unknown option '--bogus'." {
		t.Fatalf("diagnostic: %q", got)
	}
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yrpX")
	code, _, stderr := runCLI(t, "--names", path)
	if code == 0 {
		t.Fatalf("expected failure")
	}
	if got := lastLine(stderr); got != "yrp: Could not open file '"+path+"'." {
		t.Fatalf("diagnostic: %q", got)
	}
}

func TestRun_FileTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yrpX")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, stdout, stderr := runCLI(t, "--date", path)
	if code == 0 || stdout != "" {
		t.Fatalf("code %d, stdout %q", code, stdout)
	}
	if got := lastLine(stderr); got != "yrp: File too small." {
		t.Fatalf("diagnostic: %q", got)
	}
}

func TestRun_BadFormatFromEnv(t *testing.T) {
	t.Setenv("YRP_MSGS_FORMAT", "xml")
	path := filepath.Join(t.TempDir(), "tiny.yrpX")
	if err := os.WriteFile(path, []byte{1}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, _, stderr := runCLI(t, "--duel-msgs", path)
	if code == 0 || !strings.Contains(stderr, `invalid YRP_MSGS_FORMAT "xml"`) {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestLocationFromString(t *testing.T) {
	if loc, err := locationFromString(""); err != nil || loc != time.Local {
		t.Fatalf("default: %v %v", loc, err)
	}
	if loc, err := locationFromString("UTC"); err != nil || loc != time.UTC {
		t.Fatalf("utc: %v %v", loc, err)
	}
	if _, err := locationFromString("Not/AZone"); err == nil {
		t.Fatalf("bad zone should fail")
	}
}

func TestLogLevelFromString(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.WarnLevel,
		" DEBUG": zerolog.DebugLevel,
		"error":  zerolog.ErrorLevel,
	}
	for raw, want := range cases {
		got, err := logLevelFromString(raw)
		if err != nil || got != want {
			t.Fatalf("%q: got %v, %v", raw, got, err)
		}
	}
	if _, err := logLevelFromString("loud"); err == nil {
		t.Fatalf("unknown level should fail")
	}
}
