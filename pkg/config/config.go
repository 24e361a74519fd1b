/*
Package config manages TOML config for wordcheck.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name inside the config directory.
const FileName = "wordcheck.toml"

// Config holds the entire config structure
type Config struct {
	Spell SpellConfig `toml:"spell"`
	Dict  DictConfig  `toml:"dict"`
	CLI   CliConfig   `toml:"cli"`
}

// SpellConfig has matching thresholds and result sizes.
type SpellConfig struct {
	MaxDistance     int `toml:"max_distance"`
	MaxResults      int `toml:"max_results"`
	SuggestLimit    int `toml:"suggest_limit"`
	TextSuggestions int `toml:"text_suggestions"`
	MinWordLen      int `toml:"min_word_len"`
}

// DictConfig holds dictionary sources.
type DictConfig struct {
	WordFile   string `toml:"word_file"`
	UserDict   string `toml:"user_dict"`
	NoDefaults bool   `toml:"no_defaults"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowDistance bool `toml:"show_distance"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Spell: SpellConfig{
			MaxDistance:     3,
			MaxResults:      8,
			SuggestLimit:    10,
			TextSuggestions: 6,
			MinWordLen:      2,
		},
		Dict: DictConfig{
			WordFile:   "",
			UserDict:   "",
			NoDefaults: false,
		},
		CLI: CliConfig{
			ShowDistance: true,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	if defaultPath == "" {
		log.Warn("No default config path. Using built-in defaults...")
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	unknown, err := utils.DecodeTOMLFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file: %v. Attempting partial recovery...", err)
		return tryPartialParse(configPath)
	}
	if len(unknown) > 0 {
		log.Warnf("Ignoring unknown keys in %s: %v", configPath, unknown)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLMap(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if spellSection, ok := utils.ExtractSection(tempConfig, "spell"); ok {
		extractSpellConfig(spellSection, &config.Spell)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	config.Validate()
	return config, nil
}

// extractSpellConfig extracts matching configuration from a map
func extractSpellConfig(data map[string]any, spell *SpellConfig) {
	if val, ok := utils.ExtractInt(data, "max_distance"); ok {
		spell.MaxDistance = val
	}
	if val, ok := utils.ExtractInt(data, "max_results"); ok {
		spell.MaxResults = val
	}
	if val, ok := utils.ExtractInt(data, "suggest_limit"); ok {
		spell.SuggestLimit = val
	}
	if val, ok := utils.ExtractInt(data, "text_suggestions"); ok {
		spell.TextSuggestions = val
	}
	if val, ok := utils.ExtractInt(data, "min_word_len"); ok {
		spell.MinWordLen = val
	}
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.Extract[string](data, "word_file"); ok {
		dict.WordFile = val
	}
	if val, ok := utils.Extract[string](data, "user_dict"); ok {
		dict.UserDict = val
	}
	if val, ok := utils.Extract[bool](data, "no_defaults"); ok {
		dict.NoDefaults = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.Extract[bool](data, "show_distance"); ok {
		cli.ShowDistance = val
	}
}

// Validate resets out of range values to their defaults.
func (c *Config) Validate() {
	defaults := DefaultConfig().Spell
	s := &c.Spell
	if s.MaxDistance < 0 {
		log.Warnf("max_distance %d is negative, using %d", s.MaxDistance, defaults.MaxDistance)
		s.MaxDistance = defaults.MaxDistance
	}
	if s.MaxResults < 1 {
		log.Warnf("max_results %d is too small, using %d", s.MaxResults, defaults.MaxResults)
		s.MaxResults = defaults.MaxResults
	}
	if s.SuggestLimit < 1 {
		log.Warnf("suggest_limit %d is too small, using %d", s.SuggestLimit, defaults.SuggestLimit)
		s.SuggestLimit = defaults.SuggestLimit
	}
	if s.TextSuggestions < 0 {
		s.TextSuggestions = defaults.TextSuggestions
	}
	if s.MinWordLen < 1 {
		s.MinWordLen = 1
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the spell thresholds and saves to file
func (c *Config) Update(configPath string, maxDistance, maxResults *int) error {
	if maxDistance != nil {
		c.Spell.MaxDistance = *maxDistance
	}
	if maxResults != nil {
		c.Spell.MaxResults = *maxResults
	}
	c.Validate()
	return SaveConfig(c, configPath)
}
