package bspline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splines"
	"gopkg.in/yaml.v3"
)

// Config is the persisted form of a curve configuration, without the
// control elements. Example:
//
//	mode: clamped
//	equidistant:
//	  degree: 3
//	  domain: [0, 10]
//	workspace:
//	  kind: constant
//	  capacity: 4
type Config struct {
	Mode        string             `yaml:"mode,omitempty"`
	Knots       []float64          `yaml:"knots,omitempty"`
	Equidistant *EquidistantConfig `yaml:"equidistant,omitempty"`
	Workspace   WorkspaceConfig    `yaml:"workspace"`
}

// EquidistantConfig describes equidistant knots. Exactly one of Degree and
// Quantity, and exactly one of Domain, Distance and Normalized is required.
type EquidistantConfig struct {
	Degree     int       `yaml:"degree,omitempty"`
	Quantity   int       `yaml:"quantity,omitempty"`
	Domain     []float64 `yaml:"domain,omitempty"`   // start, end
	Distance   []float64 `yaml:"distance,omitempty"` // start, step
	Normalized bool      `yaml:"normalized,omitempty"`
}

// WorkspaceConfig describes the size and shape of a workspace.
type WorkspaceConfig struct {
	Kind     string `yaml:"kind"` // "constant" or "dynamic"
	Capacity int    `yaml:"capacity,omitempty"`
}

// ParseConfig reads a YAML curve configuration and validates its structure.
// Whether the configuration fits a given set of elements is checked when
// building the curve.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal writes cfg as YAML.
func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the structure of a configuration.
func (cfg Config) Validate() error {
	if _, err := ParseMode(cfg.Mode); err != nil {
		return err
	}
	if (cfg.Knots == nil) == (cfg.Equidistant == nil) {
		return fmt.Errorf("%w: need either knots or equidistant", ErrInvalidConfig)
	}
	if e := cfg.Equidistant; e != nil {
		if (e.Degree == 0) == (e.Quantity == 0) {
			return fmt.Errorf("%w: equidistant needs either degree or quantity", ErrInvalidConfig)
		}
		ranges := 0
		if e.Domain != nil {
			ranges++
			if len(e.Domain) != 2 {
				return fmt.Errorf("%w: domain needs start and end", ErrInvalidConfig)
			}
		}
		if e.Distance != nil {
			ranges++
			if len(e.Distance) != 2 {
				return fmt.Errorf("%w: distance needs start and step", ErrInvalidConfig)
			}
		}
		if e.Normalized {
			ranges++
		}
		if ranges != 1 {
			return fmt.Errorf("%w: equidistant needs exactly one of domain, distance, normalized",
				ErrInvalidConfig)
		}
	}
	switch strings.ToLower(cfg.Workspace.Kind) {
	case "constant":
		if cfg.Workspace.Capacity < 1 {
			return fmt.Errorf("%w: constant workspace needs a capacity", ErrInvalidConfig)
		}
	case "dynamic":
	default:
		return fmt.Errorf("%w: unknown workspace kind %q", ErrInvalidConfig, cfg.Workspace.Kind)
	}
	return nil
}

// Configure applies a configuration to a builder. Elements have to be set
// separately, before or after. Structural problems of cfg are recorded as
// the builder's error.
func Configure[V splines.Vector[V]](b *Builder[V], cfg Config) *Builder[V] {
	if err := cfg.Validate(); err != nil {
		return b.do(func(*Director[V]) error { return err })
	}
	mode, _ := ParseMode(cfg.Mode)
	b.Mode(mode)
	if cfg.Knots != nil {
		b.Knots(cfg.Knots)
	} else {
		e := cfg.Equidistant
		b.Equidistant()
		if e.Degree != 0 {
			b.Degree(e.Degree)
		} else {
			b.Quantity(e.Quantity)
		}
		switch {
		case e.Domain != nil:
			b.Domain(e.Domain[0], e.Domain[1])
		case e.Distance != nil:
			b.Distance(e.Distance[0], e.Distance[1])
		default:
			b.Normalized()
		}
	}
	if strings.ToLower(cfg.Workspace.Kind) == "constant" {
		return b.Constant(cfg.Workspace.Capacity)
	}
	return b.Dynamic()
}

// DescribeWorkspace returns the persisted form of a workspace choice for a
// curve of the given degree: a constant workspace of minimal size, or a
// dynamic one.
func DescribeWorkspace(degree int, constant bool) WorkspaceConfig {
	if constant {
		return WorkspaceConfig{Kind: "constant", Capacity: degree + 1}
	}
	return WorkspaceConfig{Kind: "dynamic"}
}
