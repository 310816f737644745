// Package config loads the taqvim configuration file.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path (the --config flag)
//  2. ~/.config/taqvim/config.toml
//  3. Built-in defaults when the file does not exist
//
// Fields that are missing or blank keep their defaults.
//
// # TOML Format
//
//	language = "en"          # en or fa
//	theme = "Nightfox"
//	log_level = "info"
//	log_file = "~/.local/state/taqvim/taqvim.log"
//	listen = "127.0.0.1:7488"
//	prefs_file = "~/.config/taqvim/prefs.toml"
//	refresh_seconds = 60
//
// Paths starting with ~ are expanded to the home directory and made absolute.
// refresh_seconds controls how often the "today" snapshot is recomputed and is
// never shorter than one second.
//
// # Error Handling
//
// Load returns errors for unreadable files and invalid TOML. A missing file is
// not an error.
package config
