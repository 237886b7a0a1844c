package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duron27/plox/rules"
)

// Config is the optional plox.yaml sitting in -directory. Game can also
// be given with --game; the other fields are set only here. The config
// file pins a project's defaults so they aren't needed on every invocation.
type Config struct {
	Game            string `yaml:"game"`
	RulesDir        string `yaml:"rulesdir"`
	ModsDir         string `yaml:"modsdir"`
	DescriptionFile string `yaml:"descriptionfile"`
}

// LoadConfig reads plox.yaml from directory, if present. A missing file
// is not an error: the zero Config falls back entirely to flags.
func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, "plox.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	data, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolveGame prefers the config file's game setting over the --game
// flag's default, but an explicitly-passed flag always wins: the flag's
// Changed state tells an explicit "--game openmw" apart from the default.
func resolveGame(cfg Config) (rules.Game, error) {
	name := gameFlag
	if cfg.Game != "" && !rootCmd.PersistentFlags().Changed("game") {
		name = cfg.Game
	}

	switch strings.ToLower(name) {
	case "morrowind", "mw":
		return rules.Morrowind, nil
	case "openmw", "openmorrowind":
		return rules.OpenMorrowind, nil
	case "cyberpunk", "cp77":
		return rules.Cyberpunk, nil
	default:
		return 0, fmt.Errorf("unknown game %q: expected morrowind, openmw, or cyberpunk", name)
	}
}
