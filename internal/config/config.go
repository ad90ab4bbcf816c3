// Package config loads chessplusplus's engine tuning knobs — cache size,
// search depth and per-move time budget, debug assertions — the same
// two-tier way the teacher's internal/config package loads display
// settings: a TOML file under ~/.chessplusplus/ with defaults filled in
// for anything missing or unreadable. Load never returns an error; a
// missing or corrupt config file just falls back to DefaultConfig.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the knobs the search and cache packages need but which are
// not per-call parameters.
type Config struct {
	CacheMB       int
	MaxSearchDepth int
	MoveTimeLimit  time.Duration
	DebugAssertions bool
}

// DefaultConfig mirrors the original engine's defaults: a modest cache, a
// 7-ply iterative-deepening ceiling (AI::DEPTH), and a five-second move
// budget.
func DefaultConfig() Config {
	return Config{
		CacheMB:        64,
		MaxSearchDepth: 7,
		MoveTimeLimit:  5 * time.Second,
		DebugAssertions: false,
	}
}

// configFile is the on-disk TOML shape, kept separate from Config the same
// way the teacher separates ConfigFile from Config.
type configFile struct {
	Engine struct {
		CacheMB        int    `toml:"cache_mb"`
		MaxSearchDepth int    `toml:"max_search_depth"`
		MoveTimeLimitMS int   `toml:"move_time_limit_ms"`
		DebugAssertions bool  `toml:"debug_assertions"`
	} `toml:"engine"`
}

// configDir returns ~/.chessplusplus.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chessplusplus"), nil
}

func configFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load resolves configuration in priority order: the CACHE_MB environment
// variable (§6) overrides everything else for cache size; then the TOML
// file at ~/.chessplusplus/config.toml, if present and valid; then
// DefaultConfig fills in whatever neither of those set.
func Load() Config {
	cfg := DefaultConfig()

	if path, err := configFilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			var cf configFile
			if _, decodeErr := toml.DecodeFile(path, &cf); decodeErr == nil {
				if cf.Engine.CacheMB > 0 {
					cfg.CacheMB = cf.Engine.CacheMB
				}
				if cf.Engine.MaxSearchDepth > 0 {
					cfg.MaxSearchDepth = cf.Engine.MaxSearchDepth
				}
				if cf.Engine.MoveTimeLimitMS > 0 {
					cfg.MoveTimeLimit = time.Duration(cf.Engine.MoveTimeLimitMS) * time.Millisecond
				}
				cfg.DebugAssertions = cf.Engine.DebugAssertions
			}
		}
	}

	if v := os.Getenv("CACHE_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil && mb > 0 {
			cfg.CacheMB = mb
		}
	}
	if os.Getenv("CHESSPLUSPLUS_DEBUG") == "1" {
		cfg.DebugAssertions = true
	}

	return cfg
}

// Save writes cfg to ~/.chessplusplus/config.toml, creating the directory
// if necessary, mirroring the teacher's SaveConfig permission handling.
func Save(cfg Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := configFilePath()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var cf configFile
	cf.Engine.CacheMB = cfg.CacheMB
	cf.Engine.MaxSearchDepth = cfg.MaxSearchDepth
	cf.Engine.MoveTimeLimitMS = int(cfg.MoveTimeLimit / time.Millisecond)
	cf.Engine.DebugAssertions = cfg.DebugAssertions

	return toml.NewEncoder(file).Encode(cf)
}
