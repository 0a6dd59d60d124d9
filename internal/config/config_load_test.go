package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to set os.Args for testing
func setArgs(args []string) {
	os.Args = args
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("MCP_PDF_EDITOR_MODE")
	os.Unsetenv("MCP_PDF_EDITOR_HOST")
	os.Unsetenv("MCP_PDF_EDITOR_PORT")
	os.Unsetenv("MCP_PDF_EDITOR_GSBIN")
	os.Unsetenv("MCP_PDF_EDITOR_GSTIMEOUT")
	os.Unsetenv("MCP_PDF_EDITOR_LOGLEVEL")
	os.Unsetenv("MCP_PDF_EDITOR_MAXFILESIZE")
}

func TestLoadFromFlags_DefaultConfig(t *testing.T) {
	// Save original args and environment
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	// Set minimal args (just program name)
	setArgs([]string{"mcp-pdf-editor"})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	// Verify default values
	if cfg.Mode != "stdio" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "stdio")
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 8080 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 8080)
	}
	if cfg.GhostscriptBin != "gs" {
		t.Errorf("LoadFromFlags() GhostscriptBin = %v, want %v", cfg.GhostscriptBin, "gs")
	}
	if cfg.CompressionTimeoutSeconds != 300 {
		t.Errorf("LoadFromFlags() CompressionTimeoutSeconds = %v, want %v", cfg.CompressionTimeoutSeconds, 300)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 100*1024*1024)
	}
}

func TestLoadFromFlags_ValidFlags(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantMode        string
		wantHost        string
		wantPort        int
		wantGsBin       string
		wantLogLevel    string
		wantMaxFileSize int64
	}{
		{
			name:            "server mode",
			args:            []string{"mcp-pdf-editor", "--mode=server"},
			wantMode:        "server",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantGsBin:       "gs",
			wantLogLevel:    "info",
			wantMaxFileSize: 100 * 1024 * 1024,
		},
		{
			name:            "server mode with custom host and port",
			args:            []string{"mcp-pdf-editor", "--mode=server", "--host=0.0.0.0", "--port=9090"},
			wantMode:        "server",
			wantHost:        "0.0.0.0",
			wantPort:        9090,
			wantGsBin:       "gs",
			wantLogLevel:    "info",
			wantMaxFileSize: 100 * 1024 * 1024,
		},
		{
			name:            "custom ghostscript binary",
			args:            []string{"mcp-pdf-editor", "--gsbin=/usr/local/bin/gs"},
			wantMode:        "stdio",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantGsBin:       "/usr/local/bin/gs",
			wantLogLevel:    "info",
			wantMaxFileSize: 100 * 1024 * 1024,
		},
		{
			name:            "debug logging",
			args:            []string{"mcp-pdf-editor", "--loglevel=debug"},
			wantMode:        "stdio",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantGsBin:       "gs",
			wantLogLevel:    "debug",
			wantMaxFileSize: 100 * 1024 * 1024,
		},
		{
			name:            "custom max file size",
			args:            []string{"mcp-pdf-editor", "--maxfilesize=50000000"},
			wantMode:        "stdio",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantGsBin:       "gs",
			wantLogLevel:    "info",
			wantMaxFileSize: 50000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save original args and environment
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			setArgs(tt.args)
			resetFlags()
			clearEnvVars()

			cfg, err := LoadFromFlags()
			if err != nil {
				t.Fatalf("LoadFromFlags() unexpected error: %v", err)
			}

			if cfg.Mode != tt.wantMode {
				t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, tt.wantMode)
			}
			if cfg.Host != tt.wantHost {
				t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, tt.wantHost)
			}
			if cfg.Port != tt.wantPort {
				t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, tt.wantPort)
			}
			if cfg.GhostscriptBin != tt.wantGsBin {
				t.Errorf("LoadFromFlags() GhostscriptBin = %v, want %v", cfg.GhostscriptBin, tt.wantGsBin)
			}
			if cfg.LogLevel != tt.wantLogLevel {
				t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, tt.wantLogLevel)
			}
			if cfg.MaxFileSize != tt.wantMaxFileSize {
				t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, tt.wantMaxFileSize)
			}
		})
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	// Save original args and environment
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	// Set environment variables
	os.Setenv("MCP_PDF_EDITOR_MODE", "server")
	os.Setenv("MCP_PDF_EDITOR_HOST", "192.168.1.1")
	os.Setenv("MCP_PDF_EDITOR_PORT", "3000")
	os.Setenv("MCP_PDF_EDITOR_GSBIN", "/opt/gs/bin/gs")
	os.Setenv("MCP_PDF_EDITOR_LOGLEVEL", "warn")
	os.Setenv("MCP_PDF_EDITOR_MAXFILESIZE", "200000000")

	setArgs([]string{"mcp-pdf-editor"})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "server" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "server")
	}
	if cfg.Host != "192.168.1.1" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "192.168.1.1")
	}
	if cfg.Port != 3000 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 3000)
	}
	if cfg.GhostscriptBin != "/opt/gs/bin/gs" {
		t.Errorf("LoadFromFlags() GhostscriptBin = %v, want %v", cfg.GhostscriptBin, "/opt/gs/bin/gs")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "warn")
	}
	if cfg.MaxFileSize != 200000000 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 200000000)
	}
}

func TestLoadFromFlags_FlagOverridesEnvironment(t *testing.T) {
	// Save original args and environment
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	// Set environment variables
	os.Setenv("MCP_PDF_EDITOR_MODE", "server")
	os.Setenv("MCP_PDF_EDITOR_HOST", "192.168.1.1")
	os.Setenv("MCP_PDF_EDITOR_PORT", "3000")

	// Set args that should override environment
	setArgs([]string{"mcp-pdf-editor", "--mode=stdio", "--host=localhost", "--port=8888"})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	// Flags should override environment variables
	if cfg.Mode != "stdio" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v (should override env)", cfg.Mode, "stdio")
	}
	if cfg.Host != "localhost" {
		t.Errorf("LoadFromFlags() Host = %v, want %v (should override env)", cfg.Host, "localhost")
	}
	if cfg.Port != 8888 {
		t.Errorf("LoadFromFlags() Port = %v, want %v (should override env)", cfg.Port, 8888)
	}
}

func TestLoadFromFlags_InvalidMode(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"mcp-pdf-editor", "--mode=invalid"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid mode")
	}
	if err != nil && !containsString(err.Error(), "mode must be either 'stdio' or 'server'") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid mode", err)
	}
}

func TestLoadFromFlags_InvalidPort(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"mcp-pdf-editor", "--mode=server", "--port=99999"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid port")
	}
	if err != nil && !containsString(err.Error(), "port must be between 1 and 65535") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid port", err)
	}
}

func TestLoadFromFlags_InvalidLogLevel(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"mcp-pdf-editor", "--loglevel=invalid"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid log level")
	}
	if err != nil && !containsString(err.Error(), "invalid log level") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid log level", err)
	}
}

func TestLoadFromFlags_VersionFlag(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"mcp-pdf-editor", "--version"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected version error")
	}
	if err != nil && err.Error() != "version requested" {
		t.Errorf("LoadFromFlags() error = %v, want 'version requested'", err)
	}
}

// Helper function to check if a string contains a substring
func containsString(s, substr string) bool {
	return len(s) >= len(substr) &&
		(s == substr ||
			(len(s) > len(substr) &&
				(s[:len(substr)] == substr ||
					s[len(s)-len(substr):] == substr ||
					findSubstring(s, substr))))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
