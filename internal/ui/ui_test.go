package ui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestBold_ContainsText(t *testing.T) {
	Init(false)
	result := Bold("hello")
	if !strings.Contains(result, "hello") {
		t.Errorf("Bold output should contain 'hello', got %q", result)
	}
}

func TestColorDisabled_PlainText(t *testing.T) {
	Init(true) // no color
	defer Init(false)

	if Bold("hello") != "hello" {
		t.Errorf("expected plain text when color disabled, got %q", Bold("hello"))
	}
	if Red("error") != "error" {
		t.Errorf("expected plain text, got %q", Red("error"))
	}
	if Green("ok") != "ok" {
		t.Errorf("expected plain text, got %q", Green("ok"))
	}
	if Yellow("warn") != "warn" {
		t.Errorf("expected plain text, got %q", Yellow("warn"))
	}
	if Dim("dim") != "dim" {
		t.Errorf("expected plain text, got %q", Dim("dim"))
	}
}

func TestLoggerInitialized(t *testing.T) {
	Init(false)
	if Logger == nil {
		t.Error("Logger should be initialized after Init()")
	}
}

func TestWarningAndErrorLogThroughLogger(t *testing.T) {
	Init(true)
	defer Init(false)

	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	defer Logger.SetOutput(os.Stderr)

	Warning("vault almost full")
	Error("document rejected")

	out := buf.String()
	if !strings.Contains(out, "vault almost full") {
		t.Errorf("warning message missing from log output: %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected WARN level in log output: %q", out)
	}
	if !strings.Contains(out, "document rejected") {
		t.Errorf("error message missing from log output: %q", out)
	}
}

func TestTable_RendersHeadersAndRows(t *testing.T) {
	Init(true)
	defer Init(false)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	Table([]string{"TAG", "KEYWORDS"}, [][]string{
		{"docker", "container, compose"},
		{"linux", "bash, systemd"},
	})
	w.Close()
	os.Stdout = orig

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"TAG", "KEYWORDS", "docker", "container, compose", "linux"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestEmptyState_PrintsMessage(t *testing.T) {
	Init(true)
	defer Init(false)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	EmptyState("No posts yet.")
	w.Close()
	os.Stderr = orig

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No posts yet.") {
		t.Errorf("empty-state output missing message: %q", data)
	}
}
