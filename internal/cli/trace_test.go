package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/phonetrace/internal/tracer"
)

func runCommand(t *testing.T, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout, stderr, err
}

func TestRootRequiresPhoneNumberOrBatch(t *testing.T) {
	_, _, err := runCommand(t)
	if err == nil {
		t.Fatal("expected error when neither phone number nor batch file is given")
	}
}

func TestUnknownFormatRejectedBeforeTracing(t *testing.T) {
	stdout, _, err := runCommand(t, "+16502530000", "--format", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stdout.String(), "PhoneTracer") {
		t.Fatal("format validation should run before the banner")
	}
}

func TestSingleTraceWritesOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, _, err := runCommand(t, "+16502530000", "-m", "validator,carrier", "-o", outPath)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var result tracer.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.PhoneNumber != "+16502530000" {
		t.Fatalf("unexpected phone number: %q", result.PhoneNumber)
	}
	if _, ok := result.Data["parsed"]; !ok {
		t.Fatal("expected parsed entry in output")
	}
	if _, ok := result.Data["validator"]; !ok {
		t.Fatal("expected validator entry in output")
	}
}

func TestBatchPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	batchPath := filepath.Join(dir, "numbers.txt")
	outPath := filepath.Join(dir, "results.json")

	numbers := []string{"+16502530000", "bogus-number", "+442083661177"}
	if err := os.WriteFile(batchPath, []byte(strings.Join(numbers, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write batch file: %v", err)
	}

	_, _, err := runCommand(t, "-b", batchPath, "-o", outPath)
	if err != nil {
		t.Fatalf("batch trace: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var results []tracer.Result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(results) != len(numbers) {
		t.Fatalf("expected %d records, got %d", len(numbers), len(results))
	}
	for i, number := range numbers {
		if results[i].PhoneNumber != number {
			t.Fatalf("record %d: expected %s, got %s", i, number, results[i].PhoneNumber)
		}
	}

	// The unparseable number still yields a record, just without module data.
	if len(results[1].Data) != 0 {
		t.Fatalf("expected empty data for bad number, got %#v", results[1].Data)
	}
	if len(results[0].Data) == 0 {
		t.Fatal("expected module data for valid number")
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(stdout.String(), "phonetrace version 1.0.0") {
		t.Fatalf("unexpected version output: %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "PhoneTracer v") {
		t.Fatal("banner should not print for --version")
	}
}

func TestSocialSubcommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "social.json")

	_, _, err := runCommand(t, "social", "+16502530000", "-o", outPath)
	if err != nil {
		t.Fatalf("social: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var report struct {
		PlatformsFound   []string                   `json:"platforms_found"`
		PlatformsChecked []string                   `json:"platforms_checked"`
		Details          map[string]json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(report.PlatformsChecked) != 10 || len(report.Details) != 10 {
		t.Fatalf("expected 10 platforms, got %d checked / %d details", len(report.PlatformsChecked), len(report.Details))
	}
	if len(report.PlatformsFound) != 0 {
		t.Fatalf("expected no platforms found, got %v", report.PlatformsFound)
	}
}

func TestSocialRejectsUnknownFormat(t *testing.T) {
	_, _, err := runCommand(t, "social", "+16502530000", "--format", "pdf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestVerboseEmitsProgressEvents(t *testing.T) {
	_, stderr, err := runCommand(t, "+16502530000", "-v", "-o", filepath.Join(t.TempDir(), "out.json"))
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(stderr.String(), `"type":"trace-start"`) {
		t.Fatalf("expected trace-start event on stderr, got %q", stderr.String())
	}
}
