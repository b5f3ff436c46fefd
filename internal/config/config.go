// Package config loads the vision-demos configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML config file, a .env file in the working directory and environment
// variables prefixed with VISION_DEMOS_ (for example VISION_DEMOS_SERVER_PORT
// for server.port).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ironsheep/vision-demos/internal/detection"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "VISION_DEMOS"

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Upload UploadConfig `mapstructure:"upload"`
	Face   FaceConfig   `mapstructure:"face"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig controls the web front-end.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// UploadConfig limits image uploads.
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// FaceConfig tunes the face detector.
type FaceConfig struct {
	CascadePath  string  `mapstructure:"cascade_path"`
	ScaleFactor  float64 `mapstructure:"scale_factor"`
	MinNeighbors int     `mapstructure:"min_neighbors"`
	MinSize      int     `mapstructure:"min_size"`
	MaxSize      int     `mapstructure:"max_size"`
	MinQuality   float64 `mapstructure:"min_quality"`
}

// DetectorParams converts the face settings into detector parameters.
func (f FaceConfig) DetectorParams() detection.Params {
	p := detection.DefaultParams()
	p.CascadePath = f.CascadePath
	p.ScaleFactor = f.ScaleFactor
	p.MinNeighbors = f.MinNeighbors
	p.MinSize = f.MinSize
	p.MaxSize = f.MaxSize
	p.MinQuality = f.MinQuality
	return p
}

func setDefaults(v *viper.Viper) {
	face := detection.DefaultParams()

	v.SetDefault("log.level", "info")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)

	v.SetDefault("upload.max_bytes", 20<<20)

	v.SetDefault("face.cascade_path", detection.DefaultCascadePath)
	v.SetDefault("face.scale_factor", face.ScaleFactor)
	v.SetDefault("face.min_neighbors", face.MinNeighbors)
	v.SetDefault("face.min_size", face.MinSize)
	v.SetDefault("face.max_size", face.MaxSize)
	v.SetDefault("face.min_quality", face.MinQuality)
}

// Load reads the configuration. configFile may be empty, in which case
// config.yaml is looked up in the working directory and ./config; a missing
// file is not an error. A missing .env file is not an error either.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values that have no safe fallback.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be in [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode %q: must be debug, release or test", c.Server.Mode)
	}
	if c.Upload.MaxBytes < 1 {
		return fmt.Errorf("invalid upload.max_bytes %d: must be > 0", c.Upload.MaxBytes)
	}
	if err := c.Face.DetectorParams().Validate(); err != nil {
		return fmt.Errorf("invalid face settings: %w", err)
	}
	return nil
}
