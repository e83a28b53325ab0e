package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/todoterm/internal/storage"
)

const (
	EnvPrefix      = "TODOTERM"
	configFileName = ".todoterm"

	KeyFile    = "file"
	KeyBackend = "backend"
	KeyDebug   = "debug"
	KeyLogFile = "log_file"

	defaultTextFile   = "~/.todoterm/todo.txt"
	defaultSQLiteFile = "~/.todoterm/todo.db"
)

type RuntimeConfig struct {
	File    string
	Backend string
	Debug   bool
	LogFile string
}

// DefaultFile is the list location used when none is configured. The
// sqlite backend gets its own file so it never opens the text list.
func DefaultFile(backend string) string {
	if backend == storage.BackendSQLite {
		return defaultSQLiteFile
	}
	return defaultTextFile
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		File:    defaultTextFile,
		Backend: "file",
		Debug:   false,
		LogFile: "todoterm-debug.log",
	}
}

// Loader resolves settings from flags, TODOTERM_* variables and an optional
// .todoterm.yaml, in that order of precedence, over the defaults.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	def := DefaultRuntimeConfig()
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyDebug, def.Debug)
	v.SetDefault(KeyLogFile, def.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return &Loader{v: v}
}

// BindFlags maps flag names like "log-file" onto their config keys.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyFile:    "file",
		KeyBackend: "backend",
		KeyDebug:   "debug",
		KeyLogFile: "log-file",
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (l *Loader) Load() (RuntimeConfig, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return RuntimeConfig{}, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := RuntimeConfig{
		File:    strings.TrimSpace(l.v.GetString(KeyFile)),
		Backend: strings.ToLower(strings.TrimSpace(l.v.GetString(KeyBackend))),
		Debug:   l.v.GetBool(KeyDebug),
		LogFile: strings.TrimSpace(l.v.GetString(KeyLogFile)),
	}
	if cfg.Backend == "" {
		cfg.Backend = DefaultRuntimeConfig().Backend
	}
	// file has no viper default; an unset key follows the backend.
	if !l.v.IsSet(KeyFile) {
		cfg.File = DefaultFile(cfg.Backend)
	}
	if cfg.File == "" {
		return RuntimeConfig{}, errors.New("config: storage file path is empty")
	}
	expanded, err := homedir.Expand(cfg.File)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("expand %s: %w", cfg.File, err)
	}
	cfg.File = expanded
	return cfg, nil
}
