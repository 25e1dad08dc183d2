// ABOUTME: Tests for the command line entry point
// ABOUTME: Tests flag aliases, exit codes, usage and file output
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.txt")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "2", "-p", "4", "-r", "4", "-o", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if strings.Count(string(data), "\n") != 8 {
		t.Errorf("expected 8 lines, got %q", data)
	}
	if !strings.HasPrefix(stdout.String(), "VHDL SinusGenerator") {
		t.Errorf("expected banner, got %q", stdout.String())
	}
}

func TestRunLongFlagsAndVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--numberOfSines", "1", "--pointsPerSine", "4", "--resolution", "8", "--verbose"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "01111111\n11111111\n") {
		t.Errorf("expected echoed lines, got %q", stdout.String())
	}
}

func TestRunVHDL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.vhd")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "1", "-p", "4", "-r", "4", "-f", "vhdl", "-name", "nco_lut", "-o", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "type nco_lut_t is array (0 to 3) of std_logic_vector(3 downto 0);\n") {
		t.Errorf("unexpected header in %q", data)
	}
	if !strings.HasSuffix(string(data), "    \"0000\"\n);\n") {
		t.Errorf("unexpected footer in %q", data)
	}
}

func TestRunInvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"missing count", []string{"-p", "4", "-r", "8"}, "Invalid Value for numberOfSines"},
		{"missing points", []string{"-n", "1", "-r", "8"}, "Invalid Value for pointsPerSine"},
		{"resolution too wide", []string{"-n", "1", "-p", "4", "-r", "65"}, "valid values are 1 to 64"},
		{"bad format", []string{"-n", "1", "-p", "4", "-r", "8", "-f", "verilog"}, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != 1 {
				t.Errorf("expected exit 1, got %d", code)
			}
			if !strings.Contains(stderr.String(), tt.message) {
				t.Errorf("expected %q in stderr, got %q", tt.message, stderr.String())
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Error("expected usage after validation failure")
			}
		})
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sine.txt")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "1", "-p", "4", "-r", "8", "-o", path}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "error opening file at path") {
		t.Errorf("expected open error, got %q", stderr.String())
	}
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-?"} {
		var stdout, stderr bytes.Buffer
		if code := run([]string{arg}, &stdout, &stderr); code != 0 {
			t.Errorf("%s: expected exit 0, got %d", arg, code)
		}
		if !strings.Contains(stderr.String(), "--pointsPerSine") {
			t.Errorf("%s: expected usage text on stderr", arg)
		}
		if strings.Contains(stdout.String(), "Usage:") {
			t.Errorf("%s: usage should not go to stdout", arg)
		}
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "1.1.0") {
		t.Errorf("expected version, got %q", stdout.String())
	}
}
