package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atyab/atyab-menu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuPath   = "ATYAB_MENU_FILE"
	envPrefsPath  = "ATYAB_MENU_PREFS"
	envWidth      = "ATYAB_MENU_WIDTH"
	envHeight     = "ATYAB_MENU_HEIGHT"
	envShowFooter = "ATYAB_MENU_FOOTER"
	envRTL        = "ATYAB_MENU_RTL"
	envHaptics    = "ATYAB_MENU_HAPTICS"
	envTrace      = "ATYAB_MENU_TRACE"
	envLogFile    = "ATYAB_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs parses args over the given environment. Flags win over
// ATYAB_MENU_* variables, which win over the defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs := flag.NewFlagSet("atyab-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	var cfg Config
	fs.StringVar(&cfg.App.MenuPath, "menu", env.text(envMenuPath, ""), "path to a YAML menu (empty uses the built-in menu)")
	fs.StringVar(&cfg.App.PrefsPath, "prefs", env.text(envPrefsPath, ""), "preferences file; .db/.sqlite selects SQLite (empty uses the state directory)")
	fs.IntVar(&cfg.App.Width, "width", env.number(envWidth, 0), "page width in cells (0 follows the terminal)")
	fs.IntVar(&cfg.App.Height, "height", env.number(envHeight, 0), "page height in rows (0 follows the terminal)")
	fs.BoolVar(&cfg.App.ShowFooter, "footer", env.boolean(envShowFooter, false), "show the key hint row")
	fs.BoolVar(&cfg.App.RTL, "rtl", env.boolean(envRTL, true), "lay the page and nav strip out right-to-left")
	fs.BoolVar(&cfg.App.Haptics, "haptics", env.boolean(envHaptics, false), "ring the terminal bell as tactile feedback")
	fs.BoolVar(&cfg.Logging.Trace, "trace", env.boolean(envTrace, false), "write JSON trace entries to the log")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", env.text(envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	cfg.Args = append([]string(nil), args...)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type environment map[string]string

func parseEnv(environ []string) environment {
	env := make(environment, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			env[key] = value
		}
	}
	return env
}

func (e environment) text(key, fallback string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return fallback
}

func (e environment) number(key string, fallback int) int {
	return parsed(e, key, fallback, strconv.Atoi)
}

func (e environment) boolean(key string, fallback bool) bool {
	return parsed(e, key, fallback, strconv.ParseBool)
}

// parsed returns the variable decoded by parse, or fallback when it is
// unset, blank or malformed.
func parsed[T any](e environment, key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(e[key])
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects sizes the layout cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Width > 0 && cfg.App.Width < app.MinWidth {
		return fmt.Errorf("width must be 0 or at least %d (got %d)", app.MinWidth, cfg.App.Width)
	}
	if cfg.App.Height > 0 && cfg.App.Height < app.MinHeight {
		return fmt.Errorf("height must be 0 or at least %d (got %d)", app.MinHeight, cfg.App.Height)
	}
	return nil
}
