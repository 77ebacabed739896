// Package config handles loading and validation of aurx configuration.
//
// Configuration is read from ~/.config/aurx/config.toml with environment
// variable overrides for the source tree and remote base.
//
// # Configuration Sources (highest priority first)
//
//   - --src-dir flag (applied by the CLI)
//   - AURX_SRC_DIR env var: managed source tree root
//   - AURX_BASE_URL env var: default remote base for shorthand targets
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - src_dir: directory holding one working copy per package (default: ~/.aurx/aur)
//   - base_url: remote base that shorthand names are appended to
//     (default: https://aur.archlinux.org/)
//   - [build]: command run inside each working copy (default: makepkg -sirc)
//   - [remove]: command run to uninstall a package (default: pacman -Rns),
//     with sudo = "auto", "always" or "never"
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
