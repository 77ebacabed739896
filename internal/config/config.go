package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults
const (
	DefaultSrcDir  = "~/.aurx/aur"
	DefaultBaseURL = "https://aur.archlinux.org/"
)

// Environment overrides
const (
	EnvSrcDir  = "AURX_SRC_DIR"
	EnvBaseURL = "AURX_BASE_URL"
)

// BuildConfig describes the command run inside a working copy to build
// and install it. The package name is appended after Args.
type BuildConfig struct {
	Command       string   `toml:"command"`
	Args          []string `toml:"args"`
	NoConfirmFlag string   `toml:"no_confirm_flag"` // appended unless --interactive
}

// RemoveConfig describes the command run to uninstall a package.
type RemoveConfig struct {
	Command       string   `toml:"command"`
	Args          []string `toml:"args"`
	NoConfirmFlag string   `toml:"no_confirm_flag"`
	Sudo          string   `toml:"sudo"` // "auto", "always" or "never"
}

// ThemeConfig selects the color palette for status words and tables.
type ThemeConfig struct {
	Name string `toml:"name"` // preset family, see ValidThemeNames
	Mode string `toml:"mode"` // "auto", "light" or "dark"
}

// Config holds the aurx configuration
type Config struct {
	SrcDir  string       `toml:"src_dir"`
	BaseURL string       `toml:"base_url"`
	Build   BuildConfig  `toml:"build"`
	Remove  RemoveConfig `toml:"remove"`
	Theme   ThemeConfig  `toml:"theme"`
}

// Default returns the default configuration with src_dir expanded.
func Default() Config {
	cfg := Config{
		SrcDir:  DefaultSrcDir,
		BaseURL: DefaultBaseURL,
		Build: BuildConfig{
			Command:       "makepkg",
			Args:          []string{"-sirc"},
			NoConfirmFlag: "--noconfirm",
		},
		Remove: RemoveConfig{
			Command:       "pacman",
			Args:          []string{"-Rns"},
			NoConfirmFlag: "--noconfirm",
			Sudo:          SudoAuto,
		},
	}
	if expanded, err := expandPath(cfg.SrcDir); err == nil {
		cfg.SrcDir = expanded
	}
	return cfg
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aurx", "config.toml"), nil
}

// Load reads config from ~/.config/aurx/config.toml and applies
// environment overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path, os.Getenv)
}

// LoadFile reads config from path. getenv supplies environment overrides
// and may be nil.
func LoadFile(path string, getenv func(string) string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if getenv != nil {
		if v := getenv(EnvSrcDir); v != "" {
			cfg.SrcDir = v
		}
		if v := getenv(EnvBaseURL); v != "" {
			cfg.BaseURL = v
		}
	}

	if err := cfg.finish(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// SetSrcDir overrides src_dir (e.g. from a flag), validating and
// expanding it the same way as the config file value.
func (c *Config) SetSrcDir(dir string) error {
	if err := ValidatePath(dir, "src-dir"); err != nil {
		return err
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return fmt.Errorf("expand src-dir: %w", err)
	}
	c.SrcDir = expanded
	return nil
}

// finish fills defaults for empty values, validates and expands paths.
func (c *Config) finish() error {
	def := Default()

	if c.SrcDir == "" {
		c.SrcDir = def.SrcDir
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Build.Command == "" {
		c.Build = def.Build
	}
	if c.Remove.Command == "" {
		sudo := c.Remove.Sudo
		c.Remove = def.Remove
		if sudo != "" {
			c.Remove.Sudo = sudo
		}
	}
	if c.Remove.Sudo == "" {
		c.Remove.Sudo = SudoAuto
	}

	if err := ValidatePath(c.SrcDir, "src_dir"); err != nil {
		return err
	}
	expanded, err := expandPath(c.SrcDir)
	if err != nil {
		return fmt.Errorf("expand src_dir: %w", err)
	}
	c.SrcDir = expanded

	if err := validateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	return validateEnum(c.Remove.Sudo, "remove.sudo", ValidSudoModes)
}

const defaultConfig = `# aurx configuration

# Directory holding one working copy per package.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# src_dir = "~/.aurx/aur"

# Remote base that shorthand targets are appended to.
# "aurx install yay" clones <base_url>yay
# base_url = "https://aur.archlinux.org/"

# Build command, run inside the package's working copy.
# The package name is appended after args; no_confirm_flag is appended
# unless --interactive is given.
#
# [build]
# command = "makepkg"
# args = ["-sirc"]
# no_confirm_flag = "--noconfirm"

# Uninstall command.
# sudo: "auto" prefixes sudo when not running as root, "always" or "never".
#
# [remove]
# command = "pacman"
# args = ["-Rns"]
# no_confirm_flag = "--noconfirm"
# sudo = "auto"

# Colors for status words and tables.
# name: "default", "none", "nord", "gruvbox" or "catppuccin"
# mode: "auto" detects the terminal background, or "light" / "dark"
#
# [theme]
# name = "default"
# mode = "auto"
`

// DefaultContent returns the commented default config file.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/aurx/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitAt(path, force)
}

// InitAt writes the default config file to path.
func InitAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path + " (use -f to overwrite)")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
