// Package config loads notepad settings.
//
// Settings come from three layers, each overriding the one before:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← NOTEPAD_*
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← --config, or ~/.config/notepad/settings.{toml,yaml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Each layer is read into a map by the loader sub-package, the maps are
// merged, and the result is decoded into a Config.
//
// # Basic Usage
//
//	cfg, err := config.Load(ctx, config.WithFile("notepad.toml"))
//	if err != nil {
//	    return err
//	}
//	finder := search.New(cfg.SearchOptions()...)
//
// # File Format
//
//	[search]
//	wholeWord = false
//	legacySpaceBoundary = false
//	wholeWordReplace = false
//	normalizeTerm = true
//
//	[logging]
//	level = "debug"
//
//	[highlight.found]
//	foreground = "#000000"
//	background = "#C0C0C0"
//
//	[editor]
//	tabWidth = 8
//
// YAML files use the same keys.
package config
