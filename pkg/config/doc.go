// Package config loads typed configuration structs from environment
// variables (with optional .env files), caching one snapshot per config
// type for the process lifetime.
package config
