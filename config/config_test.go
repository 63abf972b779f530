package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func quiet() LoaderOption { return WithLogger(logger.Nop()) }

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	want := Sequence{ShowLimit: seq.DefaultShowLimit, EqualBudget: seq.DefaultEqualBudget, Take: 10}
	if diff := cmp.Diff(want, cfg.Sequence); diff != "" {
		t.Errorf("sequence defaults (-want +got):\n%s", diff)
	}
	if cfg.Name != AppName || cfg.Environment != "development" {
		t.Errorf("unexpected base defaults: %q %q", cfg.Name, cfg.Environment)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults to be applied, got %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.Enabled || cfg.Telemetry.SampleRate != 1.0 {
		t.Errorf("unexpected telemetry defaults: %+v", cfg.Telemetry)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "environment"},
		{"negative take", func(c *Config) { c.Sequence.Take = -1 }, "sequence.take"},
		{"zero show limit", func(c *Config) { c.Sequence.ShowLimit = 0 }, "sequence.show_limit"},
		{"negative query limit", func(c *Config) { c.Query.Limit = -5 }, "query.limit"},
		{"sample rate above one", func(c *Config) { c.Telemetry.SampleRate = 1.5 }, "telemetry.sample_rate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			fields := appErr.Details["fields"]
			if !cmp.Equal(fieldNames(fields), []string{tc.field}) {
				t.Errorf("fields = %v, want [%s]", fields, tc.field)
			}
		})
	}

	t.Run("bad logging level", func(t *testing.T) {
		var cfg Config
		cfg.ApplyDefaults()
		cfg.Logging.Level = "loud"
		if err := cfg.Validate(); err == nil {
			t.Error("expected logging validation error")
		}
	})
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "seqkit.yml", `
name: seqkit-test
environment: staging
logging:
  level: debug
  format: json
sequence:
  show_limit: 5
  take: 3
query:
  limit: 2
telemetry:
  endpoint: collector:4318
  sample_rate: 0.25
`)
	cfg, err := Load(WithConfigFile(path), WithEnvPrefix("SEQKIT_TEST_NONE"), quiet())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "seqkit-test" || cfg.Environment != "staging" {
		t.Errorf("unexpected base: %q %q", cfg.Name, cfg.Environment)
	}
	want := Sequence{ShowLimit: 5, EqualBudget: seq.DefaultEqualBudget, Take: 3}
	if diff := cmp.Diff(want, cfg.Sequence); diff != "" {
		t.Errorf("sequence (-want +got):\n%s", diff)
	}
	if cfg.Query.Limit != 2 || cfg.Logging.Format != "json" {
		t.Errorf("unexpected query/logging: %+v %+v", cfg.Query, cfg.Logging)
	}
	if cfg.Telemetry.Endpoint != "collector:4318" || cfg.Telemetry.SampleRate != 0.25 {
		t.Errorf("unexpected telemetry: %+v", cfg.Telemetry)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "seqkit.yml", "sequence:\n  show_limit: 5\n")
	t.Setenv("SEQKIT_SEQUENCE_SHOW_LIMIT", "20")
	t.Setenv("SEQKIT_LOGGING_LEVEL", "warn")
	t.Setenv("SEQKIT_TELEMETRY_ENABLED", "true")

	cfg, err := Load(WithConfigFile(path), quiet())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sequence.ShowLimit != 20 {
		t.Errorf("show_limit = %d, want 20", cfg.Sequence.ShowLimit)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("telemetry.enabled should come from SEQKIT_TELEMETRY_ENABLED")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "SEQKIT_DOTENV_QUERY_LIMIT=7\n")
	t.Cleanup(func() { os.Unsetenv("SEQKIT_DOTENV_QUERY_LIMIT") })

	var cfg Config
	err := LoadConfig(AppName, &cfg,
		WithFileSystem(&mockFS{files: map[string]bool{envPath: true}, real: true}),
		WithEnvFile(envPath), WithEnvPrefix("SEQKIT_DOTENV"), quiet())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Query.Limit != 7 {
		t.Errorf("query.limit = %d, want 7", cfg.Query.Limit)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "seqkit.yml", "environment: qa\n")
	_, err := Load(WithConfigFile(path), quiet())
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(WithConfigFile("/nonexistent/seqkit.yml"), quiet())
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(WithFileSystem(&mockFS{}), WithEnvPrefix("SEQKIT_TEST_NONE"), quiet())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sequence.ShowLimit != seq.DefaultShowLimit {
		t.Errorf("show_limit = %d", cfg.Sequence.ShowLimit)
	}
}

func TestResolverSearchOrder(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]bool
		want  ResolvedFiles
	}{
		{"nothing", map[string]bool{}, ResolvedFiles{}},
		{
			"dot file before config dir",
			map[string]bool{"./.seqkit.yml": true, "./config/config.yml": true, ".env": true},
			ResolvedFiles{ConfigFile: "./.seqkit.yml", EnvFile: ".env"},
		},
		{
			"user config dir last",
			map[string]bool{filepath.Join("/home/u/.config", "seqkit", "config.yml"): true, ".env.seqkit": true},
			ResolvedFiles{ConfigFile: "/home/u/.config/seqkit/config.yml", EnvFile: ".env.seqkit"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &Resolver{FileSystem: &mockFS{files: tc.files}}
			if got := resolver.ResolveFiles(AppName, LoaderConfig{}); got != tc.want {
				t.Errorf("ResolveFiles = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolverExplicitPathsWin(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./seqkit.yml": true}}}
	got := resolver.ResolveFiles(AppName, LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if got.ConfigFile != "a.yml" || got.EnvFile != "b.env" {
		t.Errorf("ResolveFiles = %+v", got)
	}
}

func TestBindEnvVars_PrefixOnly(t *testing.T) {
	v := viper.New()
	bindEnvVars(v, "seqkit", []string{"SEQKIT_QUERY_LIMIT=3", "HOME=/root", "SEQKITX=1", "broken"})
	if got := v.GetInt("query.limit"); got != 3 {
		t.Errorf("query.limit = %d, want 3", got)
	}
	if v.IsSet("home") {
		t.Error("unprefixed variables must not be bound")
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"LIMIT", []string{"limit"}},
		{"LOGGING_LEVEL", []string{"logging_level", "logging.level"}},
		{"SEQUENCE_SHOW_LIMIT", []string{"sequence_show_limit", "sequence.show.limit", "sequence.show_limit"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, generateEnvKeyVariants(tc.in)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	for _, opt := range []LoaderOption{
		WithFileSystem(fs), WithConfigFile("/c.yml"), WithEnvFile("/e.env"), WithEnvPrefix("X"), quiet(),
	} {
		opt(&lc)
	}
	if lc.FileSystem != fs || lc.ConfigFile != "/c.yml" || lc.EnvFile != "/e.env" || lc.EnvPrefix != "X" || lc.Logger == nil {
		t.Errorf("unexpected loader config %+v", lc)
	}
}

type mockFS struct {
	files map[string]bool
	// real delegates LoadEnv to godotenv.
	real bool
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error {
	if m.real {
		return (&RealFileSystem{}).LoadEnv(path)
	}
	return nil
}

func (m *mockFS) UserConfigDir() (string, error) { return "/home/u/.config", nil }

func fieldNames(fields any) []string {
	var names []string
	for _, f := range fields.([]validation.FieldError) {
		names = append(names, f.Field)
	}
	return names
}
