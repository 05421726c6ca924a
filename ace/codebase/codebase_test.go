package codebase

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dhamidi/acels/config"
)

const exampleSource = "cpu {\n    name = nx45v;\n    vlen = 512;\n};"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateFileReplaces(t *testing.T) {
	c := New(".", nil)
	first := c.UpdateFile("a.ace", "cpu {};")
	second := c.UpdateFile("a.ace", exampleSource)

	if first == second {
		t.Fatal("UpdateFile returned the same FileInfo twice")
	}
	if got := c.GetFile("a.ace"); got != second {
		t.Errorf("GetFile = %p, want the latest version %p", got, second)
	}
	if first.Content != "cpu {};" {
		t.Errorf("earlier version was modified: %q", first.Content)
	}

	c.RemoveFile("a.ace")
	if c.GetFile("a.ace") != nil {
		t.Error("file still present after RemoveFile")
	}
}

func TestRecoveryFollowsConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Parse.Recover = false
	strict := New(".", cfg)
	f := strict.UpdateFile("a.ace", "cpu hello\n")
	if _, ok := f.Document.Unparsed(); !ok {
		t.Error("strict parse left no unparsed input")
	}

	lenient := New(".", nil)
	f = lenient.UpdateFile("a.ace", "cpu hello\n")
	if _, ok := f.Document.Unparsed(); ok {
		t.Error("recovering parse left unparsed input")
	}
	if n := len(lenient.DiagnosticsOf("a.ace")); n != 1 {
		t.Errorf("got %d diagnostics, want 1", n)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.ace"), "")
	writeFile(t, filepath.Join(dir, "a.ace"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.ace"), "")
	writeFile(t, filepath.Join(dir, ".git", "d.ace"), "")

	c := New(dir, nil)
	got, err := c.Collect(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.ace"),
		filepath.Join(dir, "b.ace"),
		filepath.Join(dir, "sub", "c.ace"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect = %v, want %v", got, want)
	}

	single := filepath.Join(dir, "notes.txt")
	got, err = c.Collect(single)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{single}) {
		t.Errorf("Collect(file) = %v, want the file itself", got)
	}

	if _, err := c.Collect(filepath.Join(dir, "missing")); err == nil {
		t.Error("Collect of a missing root succeeded")
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ace")
	bad := filepath.Join(dir, "bad.ace")
	missing := filepath.Join(dir, "missing.ace")
	writeFile(t, good, exampleSource)
	writeFile(t, bad, "cpu hello\n")

	cfg := config.Defaults()
	cfg.Workspace.Jobs = 2
	c := New(dir, cfg)

	files, err := c.ScanFiles(context.Background(), []string{good, missing, bad})
	if err == nil {
		t.Error("expected an error for the missing file")
	}
	if len(files) != 3 {
		t.Fatalf("got %d results, want 3", len(files))
	}
	if files[0] == nil || files[0].Path != good {
		t.Errorf("files[0] = %v, want %s", files[0], good)
	}
	if files[1] != nil {
		t.Errorf("files[1] = %v, want nil for a missing file", files[1])
	}
	if files[2] == nil || len(files[2].Document.Diagnostics()) != 1 {
		t.Errorf("files[2] should carry one diagnostic")
	}

	if got := c.Paths(); !reflect.DeepEqual(got, []string{bad, good}) {
		t.Errorf("Paths = %v", got)
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.ace"), exampleSource)
	writeFile(t, filepath.Join(dir, "nested", "two.ace"), "config {};")

	c := New(dir, nil)
	if err := c.ScanAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := len(c.Paths()); n != 2 {
		t.Errorf("got %d files, want 2", n)
	}
}

func TestScanFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ace")
	writeFile(t, path, exampleSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(dir, nil)
	if _, err := c.ScanFiles(ctx, []string{path}); err == nil {
		t.Error("ScanFiles with a cancelled context succeeded")
	}
}
