// Package paths resolves the configuration directory, the puzzle input
// directory and the session token file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// CWD-relative defaults.
const (
	DefaultInputDirName    = "inputs"
	DefaultSessionFileName = ".session"
)

// Environment variable names for overrides.
const (
	EnvConfigDir   = "ADVENT_CONFIG_DIR"
	EnvInputDir    = "ADVENT_INPUT_DIR"
	EnvSessionFile = "ADVENT_SESSION_FILE"
)

const appName = "advent"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/advent (fallback ~/.config/advent)
// macOS:   ~/Library/Application Support/advent
// Windows: %APPDATA%/advent
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ADVENT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveInputDir returns the puzzle input directory following the precedence
// chain: flag > config.yaml input_dir > ADVENT_INPUT_DIR env > $(CWD)/inputs.
func ResolveInputDir(flag, configValue string) (string, error) {
	return resolveCWDRelative(DefaultInputDirName, EnvInputDir, flag, configValue)
}

// ResolveSessionFile returns the session token file following the precedence
// chain: config.yaml session_file > ADVENT_SESSION_FILE env > $(CWD)/.session.
func ResolveSessionFile(configValue string) (string, error) {
	return resolveCWDRelative(DefaultSessionFileName, EnvSessionFile, "", configValue)
}

// InputFile returns the input path for day inside dir: dir/dayNN.txt.
func InputFile(dir string, day puzzle.Day) string {
	return filepath.Join(dir, "day"+day.Padded()+".txt")
}

func resolveCWDRelative(name, envKey string, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	if env := os.Getenv(envKey); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
