// Package config resolves the self-play demo settings from an XDG config
// file, falling back to defaults when none exists.
package config

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "othello/config.json"

// Config holds the demo runner settings.
type Config struct {
	SearchDepth int  `json:"search_depth"` // alpha-beta depth for the searching player
	Games       int  `json:"games"`        // games per run
	Colour      bool `json:"colour"`       // coloured board rendering
}

var DefaultConfig = Config{
	SearchDepth: 3,
	Games:       1,
	Colour:      true,
}

// InitConfig loads the user config, if any, on top of DefaultConfig.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if config.SearchDepth < 0 {
		config.SearchDepth = 0
	}
	if config.Games < 1 {
		config.Games = 1
	}
	return &config, nil
}

// Save writes the config to the XDG config path.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, a)
}
