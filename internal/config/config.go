// Package config loads the process configuration. The Config value is built
// exactly once at startup and handed to the store and adapter constructors;
// nothing in the rest of the tree reads ambient globals or the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultPort is the fixed web port of the original BerrySnip app.
	DefaultPort = 8018

	dataDirName = ".berrysnip"
	dbFileName  = "snippets.db"
	logFileName = "berrysnip.log"
)

type Config struct {
	// DataDir holds the database, log file, and optional config.yaml.
	DataDir string `mapstructure:"data_dir"`
	// DBPath is the SQLite database file. Derived from DataDir unless set
	// explicitly.
	DBPath string `mapstructure:"db_path"`
	// Port is the web server listen port.
	Port int `mapstructure:"port"`
	// ClipboardHelper is the external program snippet content is piped to
	// when yanking from the TUI.
	ClipboardHelper string `mapstructure:"clipboard_helper"`
}

// LogPath returns the log file used by the terminal front end, which cannot
// log to stdout while the alternate screen is active.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, logFileName)
}

func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:         filepath.Join(home, dataDirName),
		Port:            DefaultPort,
		ClipboardHelper: "yank",
	}
}

// Load builds the configuration from defaults, an optional config.yaml in the
// data directory, and BERRYSNIP_* environment variables, then ensures the
// data directory exists.
func Load() (Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.DataDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("BERRYSNIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("db_path", "")
	v.SetDefault("port", cfg.Port)
	v.SetDefault("clipboard_helper", cfg.ClipboardHelper)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
		// No config file is the common case; defaults apply.
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, dbFileName)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("config: creating data dir %s: %w", cfg.DataDir, err)
	}

	return cfg, nil
}
