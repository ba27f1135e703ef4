// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON config file,
// a .env file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	reservationsFile = "reservations.txt"
	usersFile        = "users.txt"
)

// Options holds the configuration values for the application.
type Options struct {
	// Host is the interface the server binds to; empty means all.
	Host string `json:"host"`

	// Port is the first port the server tries to listen on.
	Port int `json:"port"`

	// PortAttempts is how many following ports are tried when Port is busy.
	PortAttempts int `json:"port_attempts"`

	// DataDir holds the reservations and users files.
	DataDir string `json:"data_dir"`

	// PublicDir holds the static web client.
	PublicDir string `json:"public_dir"`

	// LogLevel is the minimum zap level.
	LogLevel string `json:"log_level"`

	// ShutdownTimeout bounds graceful shutdown. In the config file it is a
	// duration string such as "10s", or a number of seconds.
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// UnmarshalJSON decodes a config file, reading shutdown_timeout as a
// duration string or a number of seconds.
func (o *Options) UnmarshalJSON(data []byte) error {
	type plain Options
	aux := struct {
		*plain
		ShutdownTimeout json.RawMessage `json:"shutdown_timeout"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.ShutdownTimeout) == 0 || string(aux.ShutdownTimeout) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(aux.ShutdownTimeout, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("shutdown_timeout: %w", err)
		}
		o.ShutdownTimeout = d
		return nil
	}
	var seconds float64
	if err := json.Unmarshal(aux.ShutdownTimeout, &seconds); err != nil {
		return fmt.Errorf("shutdown_timeout: want a duration string or seconds, got %s", aux.ShutdownTimeout)
	}
	o.ShutdownTimeout = time.Duration(seconds * float64(time.Second))
	return nil
}

// ReservationsPath is the location of the reservations file.
func (o *Options) ReservationsPath() string {
	return filepath.Join(o.DataDir, reservationsFile)
}

// UsersPath is the location of the users file.
func (o *Options) UsersPath() string {
	return filepath.Join(o.DataDir, usersFile)
}

// Parse reads the process arguments and environment. It exits the process
// on invalid configuration.
func Parse() *Options {
	opts, err := Load(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return opts
}

// Load builds Options from args, in increasing priority: defaults, JSON
// config file, flags, environment (a .env file in the working directory
// is loaded first and never overrides variables already set). A numeric
// first positional argument is taken as the port.
func Load(args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	opts := &Options{}
	flags := flag.NewFlagSet("oceanview", flag.ContinueOnError)
	flags.StringVar(&opts.Host, "host", "", "interface to bind")
	flags.IntVar(&opts.Port, "p", 8080, "port to listen on")
	flags.IntVar(&opts.PortAttempts, "port-attempts", 20, "extra ports to try when the port is busy")
	flags.StringVar(&opts.DataDir, "data", "data", "directory for reservations and users files")
	flags.StringVar(&opts.PublicDir, "public", "public", "directory with static web files")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level")
	flags.DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	flags.StringVar(&opts.Config, "config", "config.json", "path to config file")
	flags.StringVar(&opts.Config, "c", "config.json", "path to config file (shorthand)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}

	if opts.Config != "" {
		if _, err := os.Stat(opts.Config); err == nil {
			data, err := os.ReadFile(opts.Config)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			fileOpts := *opts
			if err := json.Unmarshal(data, &fileOpts); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
			// Explicit flags win over the file.
			set := make(map[string]bool)
			flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
			mergeFileOptions(opts, &fileOpts, set)
		}
	}

	if err := applyEnv(opts); err != nil {
		return nil, err
	}

	if arg := flags.Arg(0); arg != "" {
		if port, err := strconv.Atoi(arg); err == nil {
			opts.Port = port
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks value ranges.
func (o *Options) Validate() error {
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", o.Port)
	}
	if o.PortAttempts < 0 {
		return fmt.Errorf("port attempts must not be negative, got %d", o.PortAttempts)
	}
	if o.DataDir == "" {
		return errors.New("data directory must not be empty")
	}
	if o.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", o.ShutdownTimeout)
	}
	return nil
}

func mergeFileOptions(dst, file *Options, set map[string]bool) {
	if !set["host"] {
		dst.Host = file.Host
	}
	if !set["p"] {
		dst.Port = file.Port
	}
	if !set["port-attempts"] {
		dst.PortAttempts = file.PortAttempts
	}
	if !set["data"] {
		dst.DataDir = file.DataDir
	}
	if !set["public"] {
		dst.PublicDir = file.PublicDir
	}
	if !set["log-level"] {
		dst.LogLevel = file.LogLevel
	}
	if !set["shutdown-timeout"] {
		dst.ShutdownTimeout = file.ShutdownTimeout
	}
}

func applyEnv(opts *Options) error {
	if host, ok := os.LookupEnv("SERVER_HOST"); ok {
		opts.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("SERVER_PORT: %w", err)
		}
		opts.Port = p
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		opts.DataDir = dir
	}
	if dir := os.Getenv("PUBLIC_DIR"); dir != "" {
		opts.PublicDir = dir
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		opts.LogLevel = level
	}
	return nil
}
