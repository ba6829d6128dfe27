// Package config defines the application's configuration structures and the
// loader that populates them from environment variables, an optional YAML
// file, and built-in defaults.
package config
