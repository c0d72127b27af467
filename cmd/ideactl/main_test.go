package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catalog = `
- id: 1
  title: "Grading APA Style"
  author: "Ada Author"
  department: "STELAR"
  date: "2025-04-17"
  description: "<p>Prompt <strong>strategies</strong> for APA.</p>"
  ai_tools: ["BoodleBox"]
  use_cases: ["Assessment"]
  tags: ["APA"]
  resource_type: "pdf"
  resource_url: "public/resources/apa.pdf"
- id: 2
  title: "Lab Safety Quiz"
  author: "Lee Example"
  department: "STELAR"
  date: "2025-05-01"
  ai_tools: ["Gemini"]
  use_cases: ["Quiz Generation"]
  tags: ["Safety"]
- id: 3
  title: "Cell Biology Tutor"
  author: "Bo Biologist"
  department: "Biology"
  date: "2024-11-03"
  ai_tools: ["Claude"]
  use_cases: ["Tutoring"]
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ideas.yaml")
	if err := os.WriteFile(path, []byte(catalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func dataLines(out string) []string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "ID") {
		lines = lines[1:]
	}
	return lines
}

func TestList_NewestFirst(t *testing.T) {
	code, out, _ := runCmd(t, "--data", writeCatalog(t), "list")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	lines := dataLines(out)
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), out)
	}
	for i, want := range []string{"2 ", "1 ", "3 "} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("row %d: got %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestList_Filters(t *testing.T) {
	data := writeCatalog(t)

	code, out, _ := runCmd(t, "--data", data, "list", "--department", "stelar", "--sort", "oldest")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	lines := dataLines(out)
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "1 ") || !strings.HasPrefix(lines[1], "2 ") {
		t.Errorf("unexpected rows:\n%s", out)
	}

	_, out, _ = runCmd(t, "--data", data, "list", "-q", "biology")
	lines = dataLines(out)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "3 ") {
		t.Errorf("search: unexpected rows:\n%s", out)
	}

	_, out, _ = runCmd(t, "--data", data, "list", "--use-case", "quiz-generation")
	lines = dataLines(out)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "2 ") {
		t.Errorf("use case: unexpected rows:\n%s", out)
	}

	_, out, _ = runCmd(t, "--data", data, "list", "--tag", "nothing")
	if strings.TrimSpace(out) != "No ideas found" {
		t.Errorf("expected empty state, got %q", out)
	}
}

func TestShow(t *testing.T) {
	code, out, _ := runCmd(t, "--data", writeCatalog(t), "show", "1")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Grading APA Style", "Ada Author", "pdf", "Prompt strategies for APA."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<strong>") {
		t.Errorf("description should be plain text:\n%s", out)
	}
}

func TestShow_Errors(t *testing.T) {
	data := writeCatalog(t)

	if code, _, _ := runCmd(t, "--data", data, "show", "42"); code != 1 {
		t.Errorf("missing idea: exit code %d, want 1", code)
	}
	if code, _, _ := runCmd(t, "--data", data, "show", "abc"); code != 2 {
		t.Errorf("bad id: exit code %d, want 2", code)
	}
	if code, _, _ := runCmd(t, "--data", data, "show"); code != 2 {
		t.Errorf("no id: exit code %d, want 2", code)
	}
}

func TestRelated(t *testing.T) {
	data := writeCatalog(t)

	code, out, _ := runCmd(t, "--data", data, "related", "1")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	lines := dataLines(out)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "2 ") {
		t.Errorf("unexpected rows:\n%s", out)
	}

	_, out, _ = runCmd(t, "--data", data, "related", "3")
	if strings.TrimSpace(out) != "No related ideas" {
		t.Errorf("expected no related ideas, got %q", out)
	}

	if code, _, _ := runCmd(t, "--data", data, "related", "1", "--limit", "0"); code != 2 {
		t.Errorf("zero limit: exit code %d, want 2", code)
	}
}

func TestOptions(t *testing.T) {
	code, out, _ := runCmd(t, "--data", writeCatalog(t), "options")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Departments:", "biology", "quiz-generation", "Quiz Generation", "Tags:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Biology") > strings.Index(out, "STELAR") {
		t.Errorf("departments should be sorted:\n%s", out)
	}
}

func TestKind(t *testing.T) {
	code, out, _ := runCmd(t, "kind", "https://stthomas.hosted.panopto.com/Panopto/Pages/Embed.aspx?id=1")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "panopto") {
		t.Errorf("expected panopto embed:\n%s", out)
	}

	_, out, _ = runCmd(t, "kind", "notes.DOCX")
	if !strings.Contains(out, "office") || !strings.Contains(out, "none") {
		t.Errorf("expected office kind without embed:\n%s", out)
	}

	if code, _, _ := runCmd(t, "kind"); code != 2 {
		t.Errorf("no URL: exit code %d, want 2", code)
	}
}

func TestCheck(t *testing.T) {
	code, out, _ := runCmd(t, "--data", writeCatalog(t), "check")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(out, "ok: 3 ideas") {
		t.Errorf("unexpected output %q", out)
	}

	dup := filepath.Join(t.TempDir(), "dup.yaml")
	if err := os.WriteFile(dup, []byte("- id: 1\n  title: A\n- id: 1\n  title: B\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runCmd(t, "--data", dup, "check")
	if code != 1 {
		t.Errorf("duplicate ids: exit code %d, want 1", code)
	}
	if !strings.Contains(errOut, dup) {
		t.Errorf("error should name the file: %q", errOut)
	}
}

func TestCheck_EmbeddedCatalog(t *testing.T) {
	code, out, _ := runCmd(t, "check")
	if code != 0 || !strings.HasPrefix(out, "ok: ") {
		t.Errorf("embedded catalog: exit %d, output %q", code, out)
	}
}

func TestUsage(t *testing.T) {
	if code, _, _ := runCmd(t); code != 2 {
		t.Errorf("no command: exit code %d, want 2", code)
	}
	if code, _, errOut := runCmd(t, "frobnicate"); code != 2 || !strings.Contains(errOut, "unknown command") {
		t.Errorf("unknown command: exit %d, stderr %q", code, errOut)
	}
	if code, _, _ := runCmd(t, "list", "--bogus"); code != 2 {
		t.Errorf("unknown flag: exit code %d, want 2", code)
	}
	if code, _, _ := runCmd(t, "--help"); code != 0 {
		t.Errorf("--help: exit code %d, want 0", code)
	}
}
