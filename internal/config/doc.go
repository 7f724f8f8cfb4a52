// Package config loads and validates scriptdesk configuration.
//
// Configuration lives in a TOML file (default ~/.config/scriptdesk/config.toml,
// falling back to ./scriptdesk.toml). Load applies defaults, expands ~ in all
// path fields, and validates the result; a missing file yields a fully
// defaulted config. CreateSample writes the embedded sample file for
// `scriptdesk config init`.
package config
