package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tapedeck.db")
	viper.SetConfigName(".tapedeck") // .yaml is implicit
	viper.SetEnvPrefix("TAPEDECK")
	viper.AutomaticEnv()

	if override := os.Getenv("TAPEDECK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
