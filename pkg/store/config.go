package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// ConfigPathEnv overrides the directory searched for .mood.yaml.
	ConfigPathEnv = "MOOD_CONFIG_PATH"

	defaultPath = "~/.mood.db"
)

// Config locates the store.
type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig reads .mood.yaml from $MOOD_CONFIG_PATH or the working
// directory, with MOOD_* environment overrides. A missing file is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("backend", BackendDiskv)
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:        path,
		BackendName: v.GetString("backend"),
		File:        v.ConfigFileUsed(),
	}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path, backend string) Config {
	return &fileConfig{Path: path, BackendName: backend}
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	File        string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	if f.BackendName == "" {
		return BackendDiskv
	}
	return f.BackendName
}

// ConfigFile returns the config file used, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}
