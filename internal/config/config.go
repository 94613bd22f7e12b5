// Package config provides centralized configuration defaults for
// lexdist: the cost weights, distance tolerances, and worker counts
// the demo CLI and library defaults fall back to when no config.toml
// is found.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile mirrors config.toml's structure.
type ConfigFile struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults holds every tunable lexdist falls back to.
type Defaults struct {
	DeletionCost        int     `toml:"deletion_cost"`
	InsertionCost       int     `toml:"insertion_cost"`
	SubstitutionCost    int     `toml:"substitution_cost"`
	SpellToleranceRatio float64 `toml:"spell_tolerance_ratio"`
	MatchToleranceRatio float64 `toml:"match_tolerance_ratio"`
	SearchLimit         int     `toml:"search_limit"`
	Workers             int     `toml:"workers"`
	Quiet               bool    `toml:"quiet"`
	Verbose             bool    `toml:"verbose"`
	Metrics             bool    `toml:"metrics"`
}

// fallbackDefaults is used when config.toml can't be found or parsed.
var fallbackDefaults = Defaults{
	DeletionCost:        1,
	InsertionCost:       1,
	SubstitutionCost:    1,
	SpellToleranceRatio: 0.25,
	MatchToleranceRatio: 0.25,
	SearchLimit:         10,
	Workers:             0,
	Quiet:               false,
	Verbose:             false,
	Metrics:             true,
}

var loaded *ConfigFile

// Load reads config.toml from the working directory or the
// executable's directory, walking up a couple of levels the way a
// CLI's config file commonly is — falling back to hardcoded defaults
// if none is found or it fails to parse.
func Load() *ConfigFile {
	if loaded != nil {
		return loaded
	}

	paths := []string{"config.toml", "../config.toml", "../../config.toml"}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "..", "config.toml"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			var cfg ConfigFile
			if _, err := toml.DecodeFile(path, &cfg); err == nil {
				loaded = &cfg
				return loaded
			}
		}
	}

	loaded = &ConfigFile{Defaults: fallbackDefaults}
	return loaded
}

// Convenience accessors, loading config on first access.
var (
	DefaultDeletionCost        = func() int { return Load().Defaults.DeletionCost }
	DefaultInsertionCost       = func() int { return Load().Defaults.InsertionCost }
	DefaultSubstitutionCost    = func() int { return Load().Defaults.SubstitutionCost }
	DefaultSpellToleranceRatio = func() float64 { return Load().Defaults.SpellToleranceRatio }
	DefaultMatchToleranceRatio = func() float64 { return Load().Defaults.MatchToleranceRatio }
	DefaultSearchLimit         = func() int { return Load().Defaults.SearchLimit }
	DefaultWorkers             = func() int { return Load().Defaults.Workers }
	DefaultQuiet               = func() bool { return Load().Defaults.Quiet }
	DefaultVerbose             = func() bool { return Load().Defaults.Verbose }
	DefaultMetrics             = func() bool { return Load().Defaults.Metrics }
)

// MaxWorkers caps the parallel worker count a caller may request.
const MaxWorkers = 8
