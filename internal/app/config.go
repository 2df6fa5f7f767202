// Package app provides the application container that wires every
// dependency and service together.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/picup-app/picup/pkg/workerpool"
	"github.com/picup-app/picup/pkg/writequeue"
)

// AppConfig is the agent configuration loaded from config.yaml.
type AppConfig struct {
	File   string       `yaml:"-"` // config file path, not serialized
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	App    AppSettings  `yaml:"app"`
}

// LogConfig configures zap output.
type LogConfig struct {
	// Level is a zapcore level name, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File is the log file path, empty means stderr only
	File string `yaml:"file" default:"storage/logs/picup.log"`
	// Production switches the console encoder to JSON output
	Production bool `yaml:"production" default:"false"`
}

// ServerConfig configures the local HTTP endpoint shells connect to.
type ServerConfig struct {
	// RunMode is the gin mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort is the listen address, loopback-only by default
	HttpPort string `yaml:"http-port" default:"127.0.0.1:36677"`
	// ReadTimeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
}

// AppSettings holds upload pipeline tunables.
type AppSettings struct {
	// SettingsFile overrides the settings document location,
	// empty means the platform user config dir
	SettingsFile string `yaml:"settings-file"`
	// TempPath is where clipboard snapshots are materialized
	TempPath string `yaml:"temp-path" default:"storage/temp"`
	// TempRetention is how long orphaned clipboard snapshots are kept
	// before the sweeper removes them, formats like 24h or 30m
	TempRetention string `yaml:"temp-retention" default:"24h"`
	// TempSweepSpec is the cron spec for the temp sweeper
	TempSweepSpec string `yaml:"temp-sweep-spec" default:"@hourly"`
	// DefaultContextTimeout bounds a single upload, in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`

	WorkerPoolMaxWorkers int `yaml:"worker-pool-max-workers" default:"4"`
	WorkerPoolQueueSize  int `yaml:"worker-pool-queue-size" default:"64"`

	WriteQueueCapacity int    `yaml:"write-queue-capacity" default:"100"`
	WriteQueueTimeout  string `yaml:"write-queue-timeout" default:"30s"`
}

// LoadConfig loads the configuration from a file, returning the instance
// and the file's absolute path.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// defaults.Set only fills zero-valued fields, so a second pass covers
	// keys present in the YAML with empty values
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save writes the configuration back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}
	if err := os.WriteFile(c.File, data, 0644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

// GetWorkerPoolConfig maps the YAML tunables onto a worker pool config.
func (c *AppConfig) GetWorkerPoolConfig() workerpool.Config {
	cfg := workerpool.DefaultConfig()
	if c.App.WorkerPoolMaxWorkers > 0 {
		cfg.MaxWorkers = c.App.WorkerPoolMaxWorkers
	}
	if c.App.WorkerPoolQueueSize > 0 {
		cfg.QueueSize = c.App.WorkerPoolQueueSize
	}
	return cfg
}

// GetWriteQueueConfig maps the YAML tunables onto a write queue config.
func (c *AppConfig) GetWriteQueueConfig() writequeue.Config {
	cfg := writequeue.DefaultConfig()
	if c.App.WriteQueueCapacity > 0 {
		cfg.Capacity = c.App.WriteQueueCapacity
	}
	if c.App.WriteQueueTimeout != "" {
		if timeout, err := time.ParseDuration(c.App.WriteQueueTimeout); err == nil {
			cfg.WriteTimeout = timeout
		}
	}
	return cfg
}

// GetTempRetention parses the sweep retention window.
func (c *AppConfig) GetTempRetention() time.Duration {
	if d, err := time.ParseDuration(c.App.TempRetention); err == nil && d > 0 {
		return d
	}
	return 24 * time.Hour
}

// GetContextTimeout bounds a single upload attempt.
func (c *AppConfig) GetContextTimeout() time.Duration {
	if c.App.DefaultContextTimeout > 0 {
		return time.Duration(c.App.DefaultContextTimeout) * time.Second
	}
	return 60 * time.Second
}
