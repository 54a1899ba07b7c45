package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/readlinks/pkg/errors"
)

// GenerateConfigContent generates a config file template: the default
// values marshalled to TOML with every value line commented out, ready
// to drop into the user config path and edit.
func GenerateConfigContent() (string, error) {
	k, err := defaultsKoanf()
	if err != nil {
		return "", err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal defaults")
	}

	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal defaults")
	}

	return commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values, leaving section headers intact
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g. [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
