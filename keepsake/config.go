package keepsake

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

const appTitle = "Keepsake"

var configFile = "./keepsake.yml"

type Config struct {
	ScreenWidth  float64 `yaml:"screenWidth"`
	ScreenHeight float64 `yaml:"screenHeight"`
	Fullscreen   bool    `yaml:"fullscreen"`
	Music        bool    `yaml:"music"`
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024.0,
		ScreenHeight: 768.0,
		Fullscreen:   false,
		Music:        true,
	}
}

// ReadConfig loads keepsake.yml, falling back to defaults when the file is
// missing or broken. A broken file is worth a note; a missing one isn't.
func ReadConfig() Config {
	config := DefaultConfig()

	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fmt.Printf("[Boot] error loading config, using defaults: %v\n", err)
		return DefaultConfig()
	}

	if config.ScreenWidth <= 0 || config.ScreenHeight <= 0 {
		fmt.Printf("[Boot] nonsense window size in config, using defaults\n")
		config.ScreenWidth = DefaultConfig().ScreenWidth
		config.ScreenHeight = DefaultConfig().ScreenHeight
	}

	return config
}
