package rules

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

//go:embed default_rules.yaml
var defaultRules []byte

// Config holds the exception tables and progression constants of the skill
// rules. It is plain data so alternative rule sets can be loaded from YAML.
type Config struct {
	IgnoredAbilities  []string          `yaml:"ignored_abilities"`
	FinisherOverrides map[string]string `yaml:"finisher_overrides"`

	FinisherLevels        []int    `yaml:"finisher_levels"`
	EarlyFinisherPrefixes []string `yaml:"early_finisher_prefixes"`
	EarlyFinisherLevels   []int    `yaml:"early_finisher_levels"`
	FinisherMax           int      `yaml:"finisher_max"`
	FinisherMinAbilities  int      `yaml:"finisher_min_abilities"`

	TalentPrefix     string `yaml:"talent_prefix"`
	TalentMax        int    `yaml:"talent_max"`
	TalentFirstLevel int    `yaml:"talent_first_level"`
	TalentInterval   int    `yaml:"talent_interval"`

	AbilityMax        int            `yaml:"ability_max"`
	AbilityFirstLevel int            `yaml:"ability_first_level"`
	AbilityInterval   int            `yaml:"ability_interval"`
	ExtendedMax       map[string]int `yaml:"extended_max"`
}

// DefaultConfig returns the built-in rule set
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultRules, cfg); err != nil {
		panic("rules: embedded default rules are invalid: " + err.Error())
	}
	return cfg
}

// ParseConfig decodes YAML on top of the defaults. Keys missing from raw keep
// their default values, lists replace the defaults and maps are merged into them.
func ParseConfig(raw []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rules")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a rules file. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("rules file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rules file %s", path)
	}
	return cfg, nil
}

// Validate checks the constants are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("FinisherMax", c.FinisherMax, vb)
	errors.ValidatePositive("TalentMax", c.TalentMax, vb)
	errors.ValidatePositive("AbilityMax", c.AbilityMax, vb)
	errors.ValidatePositive("TalentInterval", c.TalentInterval, vb)
	errors.ValidatePositive("AbilityInterval", c.AbilityInterval, vb)
	errors.ValidateRequired("TalentPrefix", c.TalentPrefix, vb)

	if len(c.FinisherLevels) < c.FinisherMax {
		vb.Fieldf("FinisherLevels", "needs at least %d levels", c.FinisherMax)
	}
	if len(c.EarlyFinisherPrefixes) > 0 && len(c.EarlyFinisherLevels) < c.FinisherMax {
		vb.Fieldf("EarlyFinisherLevels", "needs at least %d levels", c.FinisherMax)
	}
	for prefix, limit := range c.ExtendedMax {
		if limit <= 0 {
			vb.Fieldf("ExtendedMax", "%s must be positive", prefix)
		}
	}

	return vb.Build()
}
