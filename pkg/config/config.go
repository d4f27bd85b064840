// Package config loads bareun tool settings from a YAML file and the
// environment.
package config

import "time"

// Config is the top-level configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Analyze AnalyzeConfig `yaml:"analyze"`
	Dict    DictConfig    `yaml:"dict"`
	Store   StoreConfig   `yaml:"store"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig describes how to reach the analysis service. A zero Port picks
// the default for the host.
type ServerConfig struct {
	APIKey         string        `yaml:"api_key"         env:"BAREUN_API_KEY"`
	Host           string        `yaml:"host"            env:"BAREUN_HOST"            env-default:"api.bareun.ai"`
	Port           int           `yaml:"port"            env:"BAREUN_PORT"            env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"BAREUN_CONNECT_TIMEOUT" env-default:"10s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BAREUN_REQUEST_TIMEOUT" env-default:"1m"`
}

// AnalyzeConfig holds per-request analysis defaults. Spacing correction is on
// unless NoSpacing is set; a YAML false cannot override an env-default true.
type AnalyzeConfig struct {
	Domain       string `yaml:"domain"        env:"BAREUN_DOMAIN"`
	AutoSplit    bool   `yaml:"auto_split"    env:"BAREUN_AUTO_SPLIT"`
	NoSpacing    bool   `yaml:"no_spacing"    env:"BAREUN_NO_SPACING"`
	AutoJointing bool   `yaml:"auto_jointing" env:"BAREUN_AUTO_JOINTING"`
}

// DictConfig locates local dictionary material.
type DictConfig struct {
	PackDir string `yaml:"pack_dir" env:"BAREUN_DICT_DIR"      env-default:"dicts"`
	// WordListURL, when set, is downloaded into PackDir before a dictionary
	// update if the file is not already there.
	WordListURL string `yaml:"word_list_url" env:"BAREUN_WORD_LIST_URL"`
}

// StoreConfig points at the SQLite corpus store.
type StoreConfig struct {
	Path string `yaml:"path" env:"BAREUN_DB" env-default:"bareun.db"`
}

// IngestConfig tunes the ingest pipeline and suggestion thresholds.
type IngestConfig struct {
	Workers   int `yaml:"workers"    env:"BAREUN_INGEST_WORKERS"    env-default:"4"`
	BatchSize int `yaml:"batch_size" env:"BAREUN_INGEST_BATCH_SIZE" env-default:"50"`
	MinCount  int `yaml:"min_count"  env:"BAREUN_SUGGEST_MIN_COUNT" env-default:"3"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"BAREUN_METRICS_ADDR"`
}
