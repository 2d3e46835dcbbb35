package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const redactedSecret = ""

// MarshalYAML renders cfg in the layout LoadConfig reads from CONFIG_FILE.
// Passwords are blanked unless includeSecrets is set.
func MarshalYAML(cfg *Config, includeSecrets bool) ([]byte, error) {
	out := *cfg
	out.Server.AllowedOrigins = append([]string(nil), cfg.Server.AllowedOrigins...)
	if !includeSecrets {
		out.Database.Password = redactedSecret
		out.Redis.Password = redactedSecret
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
