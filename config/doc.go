// Package config loads application configuration from a YAML file, a .env
// file, and process environment variables, in that order of increasing
// precedence. Loading and validation are separate steps so callers decide
// when a partially specified config is acceptable.
package config
