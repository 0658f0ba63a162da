/*
Package config provides type-safe configuration extraction from map[string]any
and the crucible run settings built on top of it.

# Overview

Config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Section and Sections descend into nested YAML/JSON mappings.

	cfg := config.New(map[string]any{
	    "search": map[string]any{"timeout": "30s", "max_steps": 5000},
	})

	search := cfg.Section("search")
	timeout := search.Duration("timeout", 0)  // 30s
	steps := search.Int("max_steps", 0)       // 5000

# File Loading

	settings, err := config.LoadFile("crucible.yaml")

LoadFile is FromFile followed by Load. Every failure names the file and
wraps ErrSettingsFile, or the Load sentinel for bad values.

# Settings

Load turns a Config into Settings: log level and format, search budgets,
and the list of Variants to solve. Each Variant names a policy kind
("bounded" or "minimum-commit") and its run bounds; Variant.Build returns the
matching dijkstra.Policy. Without a variants list, DefaultVariants applies:

	variants:
	  - name: Part 1
	    policy: bounded
	    max_run: 3
	  - name: Part 2
	    policy: minimum-commit
	    min_run: 4
	    max_run: 10

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
