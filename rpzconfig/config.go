// Package rpzconfig holds the configuration surface for an rpz.Index:
// per-instance limits and the per-zone labels a loader uses to tell one
// policy zone from another.
package rpzconfig

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"
)

// ZoneConfig describes one policy zone's identity and marker labels, as
// written by an operator.
type ZoneConfig struct {
	Origin  string `yaml:"origin"`
	Ordinal uint8  `yaml:"ordinal"`

	RpzIP      string `yaml:"rpzIp" default:"rpz-ip"`
	RpzNsIP    string `yaml:"rpzNsIp" default:"rpz-nsip"`
	RpzNsdname string `yaml:"rpzNsdname" default:"rpz-nsdname"`
	Passthru   string `yaml:"passthru" default:"rpz-passthru"`

	// Policy overrides this zone's configured action string; empty means
	// "given" (no override).
	Policy string `yaml:"policy" default:"given"`
}

// Config is the top-level rpz configuration block.
type Config struct {
	// QnameWaitRecurse: when true, no zone may decide on qname alone
	// before the resolver's recursion completes.
	QnameWaitRecurse bool `yaml:"qnameWaitRecurse" default:"true"`

	Zones []ZoneConfig `yaml:"zones"`
}

// LoadFile reads and parses a YAML configuration file, applying defaults
// to unset fields the way the rest of this codebase's config types do.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rpz config: %w", err)
	}

	return Parse(data)
}

// Parse decodes data as YAML into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying rpz config defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing rpz config: %w", err)
	}

	for i := range cfg.Zones {
		if err := defaults.Set(&cfg.Zones[i]); err != nil {
			return nil, fmt.Errorf("applying zone defaults: %w", err)
		}
	}

	return cfg, nil
}
