package core

import "github.com/WingSMC/CPP20-Modules/pkg/foo"

// Config is runtime configuration for the CLI.
type Config struct {
	Policy foo.Policy
}
