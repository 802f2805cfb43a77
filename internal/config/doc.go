// Package config loads coverflow's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/coverflow/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, blank or out of range, use defaults
//
// # TOML Format
//
//	deck = "~/decks/films.yaml"      # file path or http(s) URL
//	poll_seconds = 2                 # remote decks only
//	margin_fraction = 0.05           # clamped to [0, 0.45]
//	drag_sensitivity = 2.5           # pointer cells per offset unit
//	touch_slop = 1                   # cells before a press becomes a drag
//	shift_ms = 1000
//	settle_ms = 300
//	frame_ms = 16
//	paging = false                   # true: drags page through items
//	log_file = "~/.local/state/coverflow/coverflow.log"
//	log_level = "info"
//
// Every field is optional. Tilde expansion is applied to deck and log paths;
// URLs are left untouched.
//
// Missing config files are not an error. A file that exists but fails to parse
// is reported as "parse config: ...".
package config
