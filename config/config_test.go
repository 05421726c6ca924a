package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if !cfg.Parse.Recover {
		t.Error("recovery should be on by default")
	}
	if !reflect.DeepEqual(cfg.Workspace.Extensions, []string{".ace"}) {
		t.Errorf("Extensions = %v, want [.ace]", cfg.Workspace.Extensions)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "acels.toml", `
[log]
verbosity = 2
file = "acels.log"

[parse]
recover = false

[workspace]
extensions = [".ace", ".acel"]
jobs = 4
watch = true
`)

	cfg, err := Load(path, env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Log.Verbosity)
	}
	if cfg.Log.File != filepath.Join(dir, "acels.log") {
		t.Errorf("File = %q, want it resolved next to the config", cfg.Log.File)
	}
	if cfg.Parse.Recover {
		t.Error("Recover = true, want false")
	}
	if !reflect.DeepEqual(cfg.Workspace.Extensions, []string{".ace", ".acel"}) {
		t.Errorf("Extensions = %v", cfg.Workspace.Extensions)
	}
	if cfg.Workspace.Jobs != 4 || !cfg.Workspace.Watch {
		t.Errorf("Workspace = %+v", cfg.Workspace)
	}
	if !filepath.IsAbs(cfg.Path) {
		t.Errorf("Path = %q, want absolute", cfg.Path)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "acels.yaml", `
log:
  verbosity: 1
workspace:
  jobs: 2
`)

	cfg, err := Load(path, env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Verbosity != 1 || cfg.Workspace.Jobs != 2 {
		t.Errorf("got %+v", cfg)
	}
	if !cfg.Parse.Recover {
		t.Error("missing parse section should keep the default")
	}
	if !reflect.DeepEqual(cfg.Workspace.Extensions, []string{".ace"}) {
		t.Errorf("Extensions = %v, want the default", cfg.Workspace.Extensions)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "acels.yml", "")
	cfg, err := Load(path, env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Parse.Recover {
		t.Error("empty file should keep the defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
		want string
	}{
		{"unknown toml key", "a.toml", "[parse]\nrecovr = true\n", "unknown keys"},
		{"unknown yaml key", "b.yaml", "parse:\n  recovr: true\n", "recovr"},
		{"bad extension", "c.toml", "[workspace]\nextensions = [\"ace\"]\n", "must start with a dot"},
		{"no extensions", "d.toml", "[workspace]\nextensions = []\n", "at least one extension"},
		{"syntax", "e.toml", "[log\n", "failed to parse config"},
		{"format", "f.json", "{}", "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.body)
			_, err := Load(path, env(nil))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), env(nil))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", "[workspace]\njobs = 7\n")
	cfg, err := Load("", env(map[string]string{EnvVar: path}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workspace.Jobs != 7 {
		t.Errorf("Jobs = %d, want 7", cfg.Workspace.Jobs)
	}

	_, err = Load("", env(map[string]string{EnvVar: path + ".missing"}))
	if err == nil || !strings.Contains(err.Error(), EnvVar) {
		t.Errorf("err = %v, want it to name %s", err, EnvVar)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("", env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want defaults", cfg.Path)
	}
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "acels.yaml", "workspace:\n  jobs: 3\n")

	cfg, err := Load("", env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workspace.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", cfg.Workspace.Jobs)
	}
}

func TestInterpolateEnv(t *testing.T) {
	got := string(interpolateEnv([]byte(`file = "${LOGDIR:-/tmp}/${NAME}.log"`), env(map[string]string{"NAME": "acels"})))
	want := `file = "/tmp/acels.log"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHasExtension(t *testing.T) {
	cfg := Defaults()
	if !cfg.HasExtension("dir/soc.ace") {
		t.Error("soc.ace should match")
	}
	if cfg.HasExtension("dir/soc.aces") || cfg.HasExtension("ace") {
		t.Error("unexpected match")
	}
}
