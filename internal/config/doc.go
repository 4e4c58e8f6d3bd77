// Package config handles configuration loading for newsdesk.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from NEWSDESK_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/newsdesk/config.yaml
//  3. ~/.config/newsdesk/config.yaml
//
// A missing file is not an error for the CLI; LoadOrDefault falls back to
// Default(). Files ending in .toml are read as TOML, anything else as YAML.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	database:
//	  path: "${HOME}/news/newsdesk.db"
//
// # Configuration Sections
//
//	database:
//	  path: "~/.local/share/newsdesk/newsdesk.db"
//
//	cache:
//	  freshness_window: "10m"   # Go duration syntax
//
//	auth:
//	  hasher: "sha256"          # sha256, bcrypt
//	  bcrypt_cost: 0            # 0 = library default
//
//	logging:
//	  level: "info"             # debug, info, warn, error
//	  format: "text"            # text, json
package config
