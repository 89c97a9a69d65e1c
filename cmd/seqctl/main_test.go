package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/version"
)

type result struct {
	code   exitCode
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Cleanup(func() { logger.SetGlobalLogger(logger.NewNop()) })
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"arguments", "", []string{"run", "5", "3", "8", "1", "--steps", "sort|take:2"}, "1\n3\n"},
		{"unbounded iota", "", []string{"run", "--iota", "1:", "--steps", "filter:even|transform:square|take:3"}, "4\n16\n36\n"},
		{"bounded iota", "", []string{"run", "--iota", "0:4"}, "0\n1\n2\n3\n"},
		{"chunks", "", []string{"run", "--iota", "0:5", "--group", "chunk:2"}, "[0 1]\n[2 3]\n[4]\n"},
		{"sliding after steps", "", []string{"run", "1", "2", "3", "4", "-s", "transform:double", "-g", "sliding:3"}, "[2 4 6]\n[4 6 8]\n"},
		{"stdin", "1 2\n\n3\n", []string{"run", "--stdin", "--steps", "partial_sum"}, "1\n3\n6\n"},
		{"sample larger than input", "", []string{"run", "1", "2", "3", "--steps", "sample:9223372036854775807"}, "1\n2\n3\n"},
		{"chunk larger than input", "", []string{"run", "1", "2", "3", "--group", "chunk:9223372036854775807"}, "[1 2 3]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, tc.stdin, tc.args...)
			if res.code != exitCodeSuccess {
				t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
			}
			if res.stdout != tc.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tc.want)
			}
		})
	}
}

func TestRunSeedReproducible(t *testing.T) {
	args := []string{"run", "--iota", "0:1000", "--steps", "sample:5", "--seed", "42"}
	first := runCLI(t, "", args...)
	second := runCLI(t, "", args...)
	if first.code != exitCodeSuccess || second.code != exitCodeSuccess {
		t.Fatalf("exit codes %d, %d: %s", first.code, second.code, first.stderr)
	}
	if first.stdout != second.stdout {
		t.Errorf("same seed gave %q and %q", first.stdout, second.stdout)
	}
	if got := strings.Count(first.stdout, "\n"); got != 5 {
		t.Errorf("got %d values, want 5", got)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
		wantOut string
	}{
		{"unknown step", "", []string{"run", "1", "--steps", "bogus"}, "step bogus not found", ""},
		{"bad argument", "", []string{"run", "1", "--steps", "take:x"}, "must be an integer", ""},
		{"no input", "", []string{"run"}, "pass integers", ""},
		{"input conflict", "", []string{"run", "--iota", "0:2", "1"}, "cannot be combined", ""},
		{"exclusive flags", "", []string{"run", "--iota", "0:2", "--stdin"}, "stdin", ""},
		{"bad iota", "", []string{"run", "--iota", "5:1"}, "HI must not be less than LO", ""},
		{"bad group", "", []string{"run", "1", "--group", "window:2"}, "step window not found", ""},
		{"bad stdin value", "1 x 3\n", []string{"run", "--stdin"}, "must be an integer", "1\n"},
		{"short input", "", []string{"run", "--iota", "0:2", "--steps", "take_exactly:3"}, "CONTRACT_VIOLATION", ""},
		{"bad log level", "", []string{"--log-level", "loud", "steps"}, "logging.level", ""},
		{"steps too long", "", []string{"run", "1", "--steps", strings.Repeat("take:1|", 600)}, "steps: must be 4096 characters or less", ""},
		{"malformed step name", "", []string{"run", "1", "--steps", "Take:1"}, "does not match required format", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, tc.stdin, tc.args...)
			if res.code != exitCodeError {
				t.Fatalf("exit code %d, want %d", res.code, exitCodeError)
			}
			if !strings.Contains(res.stderr, tc.wantErr) {
				t.Errorf("stderr %q does not mention %q", res.stderr, tc.wantErr)
			}
			if res.stdout != tc.wantOut {
				t.Errorf("stdout = %q, want %q", res.stdout, tc.wantOut)
			}
		})
	}
}

func TestRunUsesConfigDefaults(t *testing.T) {
	cfgPath := writeFile(t, "seqctl.yml", `
logging:
  level: warn
run:
  steps: "drop:1|take:2"
  group: equal
`)
	res := runCLI(t, "", "--config", cfgPath, "run", "--iota", "0:")
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	if res.stdout != "[1]\n[2]\n" {
		t.Errorf("stdout = %q", res.stdout)
	}

	// Flags win over the file.
	res = runCLI(t, "", "--config", cfgPath, "run", "--iota", "0:", "--steps", "take:1", "--group", "chunk:5")
	if res.stdout != "[0]\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestRunLogStep(t *testing.T) {
	res := runCLI(t, "", "-v", "run", "1", "2", "--steps", "log:seen")
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	for _, want := range []string{"pipeline built", "element", "seen", "traversal done"} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, res.stderr)
		}
	}
}

func TestLinesCommand(t *testing.T) {
	a := writeFile(t, "a.txt", "one\ntwo\nthree\n")
	b := writeFile(t, "b.txt", "last line without newline")

	res := runCLI(t, "", "lines", a, b)
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	want := "       3 " + a + "\n       1 " + b + "\n       4 total\n"
	if res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	res = runCLI(t, "", "lines", a, filepath.Join(t.TempDir(), "missing.txt"))
	if res.code != exitCodeError || !strings.Contains(res.stderr, "NOT_FOUND") {
		t.Errorf("missing file: code %d, stderr %q", res.code, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "       3 ") {
		t.Errorf("expected the first count before the failure, got %q", res.stdout)
	}

	if res := runCLI(t, "", "lines"); res.code != exitCodeError {
		t.Errorf("lines without files: code %d", res.code)
	}
}

func TestLinesErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"empty name", []string{"lines", ""}, "file: is required"},
		{"directory", []string{"lines", t.TempDir()}, "INTERNAL_ERROR"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", tc.args...)
			if res.code != exitCodeError {
				t.Fatalf("exit code %d, want %d", res.code, exitCodeError)
			}
			if !strings.Contains(res.stderr, tc.wantErr) {
				t.Errorf("stderr %q does not mention %q", res.stderr, tc.wantErr)
			}
		})
	}
}

func TestLinesLogsDuration(t *testing.T) {
	a := writeFile(t, "a.txt", "one\ntwo\n")
	res := runCLI(t, "", "-v", "lines", a)
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	for _, want := range []string{"lines counted", "duration_ms", "count"} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, res.stderr)
		}
	}
}

func TestStepsCommand(t *testing.T) {
	res := runCLI(t, "", "steps")
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	for _, want := range []string{"Name", "take_exactly", "transform", "OP", "sliding", "group"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("steps table missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, "", "version", "--short")
	if res.code != exitCodeSuccess {
		t.Fatalf("exit code %d, stderr: %s", res.code, res.stderr)
	}
	if want := version.Get().Short() + "\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	res = runCLI(t, "", "version")
	for _, want := range []string{"version", "platform", version.Get().Platform} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("version table missing %q:\n%s", want, res.stdout)
		}
	}
}
