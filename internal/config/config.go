// Package config resolves a search configuration from positional
// arguments and the environment.
package config

import (
	"errors"
	"os"
)

const (
	// IgnoreToken is the third argument that turns on case-insensitive search.
	IgnoreToken = "ignore"

	// IgnoreCaseEnv turns on case-insensitive search when set to any value.
	IgnoreCaseEnv = "IGNORE_CASE"
)

// ErrInsufficientArguments is returned when the query or file path is missing.
var ErrInsufficientArguments = errors.New("not enough arguments: expected <query> <file_path> [ignore]")

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Config is the resolved input for one search run.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build resolves a Config from args, which must not include the program name.
// The third argument enables case-insensitive mode only when it is exactly
// IgnoreToken; otherwise the presence of IgnoreCaseEnv decides. Arguments
// past the third are ignored.
func Build(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 2 {
		return Config{}, ErrInsufficientArguments
	}

	cfg := Config{
		Query:    args[0],
		FilePath: args[1],
	}

	if len(args) >= 3 && args[2] == IgnoreToken {
		cfg.IgnoreCase = true
		return cfg, nil
	}

	if lookup != nil {
		_, cfg.IgnoreCase = lookup(IgnoreCaseEnv)
	}

	return cfg, nil
}

// FromEnv is Build against the process environment.
func FromEnv(args []string) (Config, error) {
	return Build(args, os.LookupEnv)
}
