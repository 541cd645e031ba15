package configuration

import (
	"autotable/sources/platform"
	"autotable/sources/tracing"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([^}]*))?\}`)

// NewSource resolves the configuration path: an explicit path wins, then
// CONFIG_PATH, then config.yaml.
func NewSource(path string) *Source {
	if path == "" {
		path = platform.Get("CONFIG_PATH", "config.yaml")
	}
	return &Source{Path: path}
}

// NewYaml reads the configuration file over Defaults. A missing file is not
// an error; the defaults are used as is.
func NewYaml(log *tracing.Logger, source *Source) (*Config, error) {
	defer tracing.ProfilePoint(log, "Configuration loaded", "configuration.load")()

	config := Defaults()

	log.D("reading configuration", "path", source.Path)

	content, err := os.ReadFile(source.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.I("configuration file not found, using defaults", "path", source.Path)
		return config, nil
	}
	if err != nil {
		log.E("failed to read configuration file", tracing.InnerError, err, "path", source.Path)
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnv(string(content))), config); err != nil {
		log.E("failed to parse configuration file", tracing.InnerError, err, "path", source.Path)
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	return config, nil
}

// expandEnv replaces ${VAR} or ${VAR:default} with environment values.
// An unset variable without a default becomes the empty string.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if value, exists := os.LookupEnv(matches[1]); exists {
			return value
		}
		return matches[2]
	})
}
