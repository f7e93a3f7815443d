package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pokearena/arena/internal/app"
	"github.com/pokearena/arena/internal/mailer"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envScreen     = "ARENA_SCREEN"
	envWidth      = "ARENA_WIDTH"
	envHeight     = "ARENA_HEIGHT"
	envShowFooter = "ARENA_FOOTER"
	envVerbose    = "ARENA_VERBOSE"
	envTrace      = "ARENA_TRACE"
	envLogFile    = "ARENA_LOG_FILE"
	envSMTPHost   = "ARENA_SMTP_HOST"
	envSMTPPort   = "ARENA_SMTP_PORT"
	envSMTPUser   = "ARENA_SMTP_USER"
	envSMTPFrom   = "ARENA_SMTP_FROM"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("arena", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	screen := fs.String("screen", envOrDefault(env, envScreen, ""), "initial screen to open (empty starts at the main menu)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	smtpHost := fs.String("smtp-host", envOrDefault(env, envSMTPHost, ""), "SMTP host for verification mail (empty disables sending)")
	smtpPort := fs.Int("smtp-port", envOrInt(env, envSMTPPort, 587), "SMTP port")
	smtpUser := fs.String("smtp-user", envOrDefault(env, envSMTPUser, ""), "SMTP account username")
	smtpFrom := fs.String("smtp-from", envOrDefault(env, envSMTPFrom, ""), "sender address (defaults to the username)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *smtpPort < 1 || *smtpPort > 65535 {
		return Config{}, fmt.Errorf("smtp-port must be in 1..65535 (got %d)", *smtpPort)
	}

	cfg := Config{
		App: app.Config{
			Screen:     *screen,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			SMTP: mailer.Config{
				Host:     *smtpHost,
				Port:     *smtpPort,
				Username: *smtpUser,
				From:     *smtpFrom,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"screen":   *screen,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
			"smtpHost": *smtpHost,
			"smtpPort": strconv.Itoa(*smtpPort),
			"smtpUser": *smtpUser,
			"smtpFrom": *smtpFrom,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.SMTP.Host != "" && cfg.App.SMTP.Username == "" {
		return fmt.Errorf("smtp-host requires smtp-user")
	}
	return nil
}
