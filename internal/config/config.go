package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort               = 8080
	DefaultHost               = "127.0.0.1"
	DefaultLogLevel           = "info"
	DefaultMaxFileSize        = 100 * 1024 * 1024 // 100MB
	DefaultGhostscriptBin     = "gs"
	DefaultCompressionTimeout = 300 // seconds
)

// Config holds all configuration for the PDF editor MCP server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Compression configuration
	GhostscriptBin            string
	CompressionTimeoutSeconds int

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF payload size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:                      ModeStdio, // Default to stdio mode for MCP compatibility
		Host:                      DefaultHost,
		Port:                      DefaultPort,
		GhostscriptBin:            DefaultGhostscriptBin,
		CompressionTimeoutSeconds: DefaultCompressionTimeout,
		Version:                   "1.0.0",
		ServerName:                "mcp-pdf-editor",
		LogLevel:                  DefaultLogLevel,
		MaxFileSize:               DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("MCP_PDF_EDITOR")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("gsbin", cfg.GhostscriptBin)
	viper.SetDefault("gstimeout", cfg.CompressionTimeoutSeconds)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("gsbin", cfg.GhostscriptBin, "Ghostscript binary used for compression")
	pflag.Int("gstimeout", cfg.CompressionTimeoutSeconds, "Compression timeout in seconds")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF payload size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("gsbin", pflag.Lookup("gsbin"))
	_ = viper.BindPFlag("gstimeout", pflag.Lookup("gstimeout"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMCP PDF Editor - A Model Context Protocol server for editing PDF documents\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         # stdio mode (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --gsbin=/usr/local/bin/gs               # custom Ghostscript binary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server                           # server mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --host=0.0.0.0 --port=8081 # server on all interfaces\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_MODE        Server mode\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_GSBIN       Ghostscript binary\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_GSTIMEOUT   Compression timeout in seconds\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  MCP_PDF_EDITOR_MAXFILESIZE Maximum payload size\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.GhostscriptBin = viper.GetString("gsbin")
	cfg.CompressionTimeoutSeconds = viper.GetInt("gstimeout")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate Ghostscript binary
	if c.GhostscriptBin == "" {
		return errors.New("ghostscript binary cannot be empty")
	}

	// Validate compression timeout
	if c.CompressionTimeoutSeconds <= 0 {
		return errors.New("compression timeout must be positive")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CompressionTimeout returns the compression timeout as a duration
func (c *Config) CompressionTimeout() time.Duration {
	return time.Duration(c.CompressionTimeoutSeconds) * time.Second
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, GhostscriptBin: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.GhostscriptBin, c.LogLevel, c.MaxFileSize)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
