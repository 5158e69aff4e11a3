package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/upcast/bubble"
	"github.com/dshills/upcast/pattern"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig is returned when a config value has an
	// unrecognized shape.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownComponent is returned by Apply when the config names a
	// component that was not provided.
	ErrUnknownComponent = errors.New("unknown component in config")
)

// Configurable is the surface Apply needs from a component. *bubble.Base
// satisfies it.
type Configurable interface {
	bubble.Component
	SetHandlers(bubble.HandlerTable)
	SetPassSpec(spec any)
}

// File is a parsed configuration file.
type File struct {
	Components map[string]Component `toml:"components"`
}

// Component is the per-component section of a config file.
type Component struct {
	// On maps table keys to handler method names.
	On map[string]string `toml:"on"`

	// Pass is the pass spec: bool, a list of name patterns, or a keyed
	// table of directives.
	Pass any `toml:"pass"`
}

// Load reads and parses a config file. A missing file is not an error;
// it yields a nil File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses TOML config data and validates its table keys.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name, c := range f.Components {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
	}
	return &f, nil
}

func (c Component) validate() error {
	for key := range c.On {
		if _, err := pattern.ParseKey(key); err != nil {
			return err
		}
	}
	if _, err := c.passSpec(); err != nil {
		return err
	}
	return nil
}

// handlerTable converts the On section to a handler table of named
// methods.
func (c Component) handlerTable() bubble.HandlerTable {
	if len(c.On) == 0 {
		return nil
	}
	t := make(bubble.HandlerTable, len(c.On))
	for key, method := range c.On {
		t[key] = bubble.Method(method)
	}
	return t
}

// passSpec normalizes the decoded Pass value to one of the engine's
// pass-spec shapes.
func (c Component) passSpec() (any, error) {
	switch v := c.Pass.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: pass list entry %v (%T)", ErrInvalidConfig, item, item)
			}
			names = append(names, s)
		}
		return names, nil
	case map[string]any:
		table := make(bubble.PassTable, len(v))
		for key, raw := range v {
			if _, err := pattern.ParseKey(key); err != nil {
				return nil, err
			}
			switch d := raw.(type) {
			case bool:
				if !d {
					return nil, fmt.Errorf("%w: pass entry %q: false is not a directive", ErrInvalidConfig, key)
				}
				table[key] = bubble.Forward
			case string:
				table[key] = bubble.Rename(d)
			default:
				return nil, fmt.Errorf("%w: pass entry %q: unsupported directive %T", ErrInvalidConfig, key, raw)
			}
		}
		return table, nil
	default:
		return nil, fmt.Errorf("%w: pass has unsupported shape %T", ErrInvalidConfig, c.Pass)
	}
}

// Apply installs the configured tables on their components. Every
// component named in the file must be present.
func (f *File) Apply(components map[string]Configurable) error {
	if f == nil {
		return nil
	}
	for name, c := range f.Components {
		target, ok := components[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownComponent, name)
		}
		spec, err := c.passSpec()
		if err != nil {
			return fmt.Errorf("component %s: %w", name, err)
		}
		if t := c.handlerTable(); t != nil {
			target.SetHandlers(t)
		}
		if spec != nil {
			target.SetPassSpec(spec)
		}
	}
	return nil
}
