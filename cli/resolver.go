package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that parses config files
// written in YAML.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// The document must be a mapping of flag names to values. Flag names with
// hyphens (e.g., "log-level") may use underscores in the config file
// (e.g., "log_level") since YAML keys are conventionally snake_case.
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty config file
			return config{}, nil
		}

		return nil, err
	}

	return config(normalize(raw)), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// The config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys
	// conventionally use underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize converts decoded YAML values into forms Kong accepts.
func normalize(raw map[string]any) map[string]any {
	result := make(map[string]any, len(raw))

	for key, value := range raw {
		// Kong requires numbers as strings for parsing
		switch num := value.(type) {
		case int64:
			result[key] = strconv.FormatInt(num, 10)
		case uint64:
			result[key] = strconv.FormatUint(num, 10)
		case float64:
			result[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			result[key] = value
		}
	}

	return result
}
