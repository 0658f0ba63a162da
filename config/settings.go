package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/crucible/dijkstra"
)

// Policy kinds accepted in a variant's "policy" field.
const (
	PolicyBounded       = "bounded"
	PolicyMinimumCommit = "minimum-commit"
)

var (
	// ErrUnknownPolicy indicates a variant names a policy kind that does not exist.
	ErrUnknownPolicy = errors.New("config: unknown policy kind")
	// ErrBadVariant indicates a malformed variant entry.
	ErrBadVariant = errors.New("config: invalid variant")
	// ErrBadSetting indicates a setting outside its allowed values.
	ErrBadSetting = errors.New("config: invalid setting")
	// ErrSettingsFile indicates a settings file that could not be read or decoded.
	ErrSettingsFile = errors.New("config: unusable settings file")
)

// Variant is one named search to run against every grid.
type Variant struct {
	Name   string
	Policy string
	MinRun int
	MaxRun int
}

// Build returns the dijkstra.Policy described by v.
func (v Variant) Build() (dijkstra.Policy, error) {
	switch v.Policy {
	case PolicyBounded:
		p, err := dijkstra.NewBoundedRun(v.MaxRun)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.Name, err)
		}
		return p, nil
	case PolicyMinimumCommit:
		p, err := dijkstra.NewMinimumCommit(v.MinRun, v.MaxRun)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.Name, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q in variant %q", ErrUnknownPolicy, v.Policy, v.Name)
	}
}

// DefaultVariants returns the two standard searches: a crucible and an ultra crucible.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "Part 1", Policy: PolicyBounded, MaxRun: dijkstra.CrucibleMaxRun},
		{Name: "Part 2", Policy: PolicyMinimumCommit, MinRun: dijkstra.UltraCrucibleMinRun, MaxRun: dijkstra.UltraCrucibleMaxRun},
	}
}

// Settings is the validated run configuration.
type Settings struct {
	LogLevel  string        // debug, info, warn, error
	LogFormat string        // text, json
	Timeout   time.Duration // per-grid deadline; 0 disables
	MaxSteps  int           // per-search settle budget; 0 disables
	Render    bool          // print the route overlay
	Variants  []Variant
}

// DefaultSettings returns Settings used when no configuration file is given.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Variants:  DefaultVariants(),
	}
}

// Load reads Settings from cfg, filling gaps from DefaultSettings.
//
//	log:      {level, format}
//	search:   {timeout, max_steps, render}
//	variants: [{name, policy, min_run, max_run}, ...]
func Load(cfg Config) (Settings, error) {
	s := DefaultSettings()

	logCfg := cfg.Section("log")
	s.LogLevel = strings.ToLower(logCfg.String("level", s.LogLevel))
	s.LogFormat = strings.ToLower(logCfg.String("format", s.LogFormat))

	search := cfg.Section("search")
	s.Timeout = search.Duration("timeout", s.Timeout)
	s.MaxSteps = search.Int("max_steps", s.MaxSteps)
	s.Render = search.Bool("render", s.Render)

	if cfg.Has("variants") {
		entries, ok := cfg.Sections("variants")
		if !ok {
			return Settings{}, fmt.Errorf("%w: variants must be a list of mappings", ErrBadVariant)
		}
		variants, err := parseVariants(entries)
		if err != nil {
			return Settings{}, err
		}
		s.Variants = variants
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every field and builds each variant's policy once.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrBadSetting, s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrBadSetting, s.LogFormat)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", ErrBadSetting, s.Timeout)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d is negative", ErrBadSetting, s.MaxSteps)
	}
	if len(s.Variants) == 0 {
		return fmt.Errorf("%w: at least one variant is required", ErrBadVariant)
	}
	seen := make(map[string]struct{}, len(s.Variants))
	for _, v := range s.Variants {
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrBadVariant, v.Name)
		}
		seen[v.Name] = struct{}{}
		if _, err := v.Build(); err != nil {
			return err
		}
	}
	return nil
}

func parseVariants(entries []Config) ([]Variant, error) {
	out := make([]Variant, 0, len(entries))
	for i, e := range entries {
		v := Variant{
			Name:   e.String("name", ""),
			Policy: strings.ToLower(e.String("policy", PolicyBounded)),
			MinRun: e.Int("min_run", 0),
			MaxRun: e.Int("max_run", 0),
		}
		if v.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrBadVariant, i)
		}
		// Absent bounds take the stock values; an explicit 0 is left for Validate to reject.
		if v.Policy == PolicyMinimumCommit && !e.Has("min_run") {
			v.MinRun = dijkstra.UltraCrucibleMinRun
		}
		if !e.Has("max_run") {
			v.MaxRun = dijkstra.CrucibleMaxRun
			if v.Policy == PolicyMinimumCommit {
				v.MaxRun = dijkstra.UltraCrucibleMaxRun
			}
		}
		out = append(out, v)
	}
	return out, nil
}
