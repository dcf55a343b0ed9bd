// Package runconfig models a run's configuration: which entities to process,
// which options to enumerate with what restrictions, and how to fill the
// rest. It merges three layers with fixed precedence: command-line flags over
// config file over built-in defaults.
package runconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-enumgen/pkg/enumerate"
)

// Built-in defaults, the lowest precedence layer.
const (
	DefaultDir     = "."
	DefaultSplits  = 2
	DefaultVerbose = 1
)

// EntityConfig is one entity's enumeration request, one YAML document in the
// multi-document config file.
type EntityConfig struct {
	// Entity names the game to enumerate configurations for.
	Entity string `yaml:"game"`

	// Options maps each option to enumerate to its restriction: the string
	// "all", a list of choice labels, or an integer split count.
	Options map[string]any `yaml:"options"`

	// Others picks the fill behavior for non-enumerated options. Empty means
	// default.
	Others string `yaml:"others"`

	// Ignore lists options excluded from filling and enumeration.
	Ignore []string `yaml:"ignore"`
}

// Config is the fully merged run configuration.
type Config struct {
	// Dir receives the generated files.
	Dir string

	// Source locates the option schema document (path or URL).
	Source string

	// Splits is the default range section count.
	Splits int

	// Verbose gates logging: 0 warnings, 1 info, 2+ debug.
	Verbose int

	// Yes answers every confirmation gate affirmatively.
	Yes bool

	// Entities holds the per-entity requests in order.
	Entities []EntityConfig
}

// Default returns the built-in configuration layer.
func Default() Config {
	return Config{
		Dir:     DefaultDir,
		Splits:  DefaultSplits,
		Verbose: DefaultVerbose,
	}
}

// Load reads a multi-document YAML config, one EntityConfig per document.
func Load(r io.Reader) ([]EntityConfig, error) {
	dec := yaml.NewDecoder(r)

	var entities []EntityConfig
	for {
		var ec EntityConfig
		if err := dec.Decode(&ec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("runconfig: parse config: %w", err)
		}
		if ec.Entity == "" {
			return nil, errors.New("runconfig: config document missing game name")
		}
		entities = append(entities, ec)
	}
	return entities, nil
}

// LoadFile reads a config file from disk.
func LoadFile(path string) ([]EntityConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runconfig: open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Selection converts the entity config into the engine's selection model.
// The fill behavior string passes through verbatim; the base builder warns
// and falls back to default on values it does not recognise.
func (ec EntityConfig) Selection(defaultSplits int) (enumerate.Selection, error) {
	options := make(map[string]enumerate.Restriction, len(ec.Options))
	for name, raw := range ec.Options {
		r, err := ParseRestriction(raw)
		if err != nil {
			return enumerate.Selection{}, fmt.Errorf("runconfig: option %q: %w", name, err)
		}
		options[name] = r
	}

	fill := enumerate.FillBehavior(ec.Others)
	if ec.Others == "" {
		fill = enumerate.FillDefault
	}

	return enumerate.Selection{
		Options: options,
		Ignored: enumerate.IgnoreSet(ec.Ignore...),
		Fill:    fill,
		Splits:  defaultSplits,
	}, nil
}

// ParseRestriction interprets a config-file restriction value: "all", an
// integer split count, or a list of choice labels (YAML list or
// comma-separated string).
func ParseRestriction(raw any) (enumerate.Restriction, error) {
	switch v := raw.(type) {
	case nil:
		return enumerate.AllValues(), nil
	case string:
		return parseRestrictionString(v)
	case int:
		if v < 1 {
			return enumerate.Restriction{}, fmt.Errorf("split count %d below 1", v)
		}
		return enumerate.SplitInto(v), nil
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			label, ok := item.(string)
			if !ok {
				return enumerate.Restriction{}, fmt.Errorf("label %v is not a string", item)
			}
			labels = append(labels, label)
		}
		return enumerate.OnlyLabels(labels...), nil
	default:
		return enumerate.Restriction{}, fmt.Errorf("unsupported restriction %v (%T)", raw, raw)
	}
}

func parseRestrictionString(v string) (enumerate.Restriction, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return enumerate.AllValues(), nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 {
			return enumerate.Restriction{}, fmt.Errorf("split count %d below 1", n)
		}
		return enumerate.SplitInto(n), nil
	}
	parts := strings.Split(trimmed, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return enumerate.OnlyLabels(labels...), nil
}

// ParseOptionSpec interprets a command-line option spec of the form
// "name", "name=all", "name=3", or "name=label,label".
func ParseOptionSpec(spec string) (string, enumerate.Restriction, error) {
	name, value, found := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", enumerate.Restriction{}, fmt.Errorf("runconfig: empty option name in %q", spec)
	}
	if !found {
		return name, enumerate.AllValues(), nil
	}
	r, err := parseRestrictionString(value)
	if err != nil {
		return "", enumerate.Restriction{}, fmt.Errorf("runconfig: option %q: %w", name, err)
	}
	return name, r, nil
}
