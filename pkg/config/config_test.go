package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "bareun.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  api_key: "koba-FILEKEY"
  host: "10.0.0.7"
  port: 5757
  connect_timeout: "3s"
  request_timeout: "20s"

analyze:
  domain: "news"
  auto_split: true
  no_spacing: true

dict:
  pack_dir: "/tmp/packs"

store:
  path: "/tmp/corpus.db"

ingest:
  workers: 8
  batch_size: 25
  min_count: 2

log:
  level: "debug"
  format: "json"

metrics:
  addr: ":9100"
`

func TestLoadFile_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Server.APIKey != "koba-FILEKEY" || cfg.Server.Host != "10.0.0.7" || cfg.Server.Port != 5757 {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Server.ConnectTimeout != 3*time.Second {
		t.Errorf("connect_timeout = %v, want 3s", cfg.Server.ConnectTimeout)
	}
	if cfg.Analyze.Domain != "news" || !cfg.Analyze.AutoSplit || !cfg.Analyze.NoSpacing {
		t.Errorf("unexpected analyze config %+v", cfg.Analyze)
	}
	if cfg.Ingest.Workers != 8 || cfg.Ingest.BatchSize != 25 || cfg.Ingest.MinCount != 2 {
		t.Errorf("unexpected ingest config %+v", cfg.Ingest)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("metrics.addr = %q", cfg.Metrics.Addr)
	}
}

func TestLoadFile_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("BAREUN_HOST", "override.local")
	t.Setenv("BAREUN_INGEST_WORKERS", "2")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Server.Host != "override.local" {
		t.Errorf("host = %q, want env override", cfg.Server.Host)
	}
	if cfg.Ingest.Workers != 2 {
		t.Errorf("workers = %d, want env override", cfg.Ingest.Workers)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BAREUN_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Host != "api.bareun.ai" {
		t.Errorf("host = %q, want default", cfg.Server.Host)
	}
	if cfg.Server.Port != 0 {
		t.Errorf("port = %d, want 0 (resolved later)", cfg.Server.Port)
	}
	if cfg.Server.ConnectTimeout != 10*time.Second {
		t.Errorf("connect_timeout = %v, want 10s", cfg.Server.ConnectTimeout)
	}
	if cfg.Ingest.Workers != 4 || cfg.Ingest.BatchSize != 50 || cfg.Ingest.MinCount != 3 {
		t.Errorf("unexpected ingest defaults %+v", cfg.Ingest)
	}
	if cfg.Store.Path != "bareun.db" || cfg.Dict.PackDir != "dicts" {
		t.Errorf("unexpected path defaults store=%q dict=%q", cfg.Store.Path, cfg.Dict.PackDir)
	}
	if cfg.Log.Format != "text" || cfg.Log.Level != "info" {
		t.Errorf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoad_ReadsBareunConfigEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("BAREUN_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 5757 {
		t.Errorf("port = %d, want value from %s", cfg.Server.Port, path)
	}
}

func TestLoadFile_ExplicitMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config: file") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestLoad_UnreadableDefaultFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "bareun.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("BAREUN_CONFIG", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "config: read ./bareun.yaml") {
		t.Fatalf("expected read error for the default file, got %v", err)
	}
}

func TestLoadFile_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"port out of range", "server:\n  port: 70000\n", "port"},
		{"bad log format", "log:\n  format: \"xml\"\n", "format"},
		{"bad log level", "log:\n  level: \"loud\"\n", "level"},
		{"negative batch size", "ingest:\n  batch_size: -1\n", "batch_size"},
		{"malformed yaml", "server: [", "config: read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), tt.yaml)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{ConnectTimeout: time.Second},
			Store:  StoreConfig{Path: "x.db"},
			Ingest: IngestConfig{Workers: 1, BatchSize: 1, MinCount: 1},
			Log:    LogConfig{Level: "INFO", Format: "Text"},
		}
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg = valid()
	cfg.Ingest.Workers = 0
	if err := cfg.Validate(); err == nil || !strings.HasPrefix(err.Error(), "ingest:") {
		t.Errorf("expected ingest error, got %v", err)
	}

	cfg = valid()
	cfg.Server.ConnectTimeout = 0
	if err := cfg.Validate(); err == nil || !strings.HasPrefix(err.Error(), "server:") {
		t.Errorf("expected server error, got %v", err)
	}

	cfg = valid()
	cfg.Store.Path = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for blank store path")
	}
}
