// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the user's pawns configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvVariable names the environment variable which overrides the location
// of the configuration file.
const EnvVariable = "PAWNS_CONFIG"

var (
	Directory string = filepath.Join(xdg.ConfigHome, "pawns")

	File string = filepath.Join(Directory, "config.yaml")
)

// Config is the contents of a configuration file. Every field is optional.
type Config struct {
	Players Players `yaml:"players"`

	// LogLevel is any level name understood by logrus.
	LogLevel string `yaml:"log-level"`

	// Color can be set to false to disable coloured output.
	Color *bool `yaml:"color"`
}

// Players holds default player names, used instead of prompting.
type Players struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Path returns the configuration file to use. An explicitly provided path
// wins over the environment variable, which wins over the default File.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if path := os.Getenv(EnvVariable); path != "" {
		return path
	}

	return File
}

// Load reads the configuration file at path. A missing file is not an
// error and results in an empty configuration.
func Load(path string) (*Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Debugf("no config file at %s", path)
			return &config, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if _, err := config.Level(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &config, nil
}

// Level returns the configured logging level, Info if none is set.
func (config *Config) Level() (logrus.Level, error) {
	if config.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	return logrus.ParseLevel(config.LogLevel)
}

// Colored reports whether coloured output is enabled.
func (config *Config) Colored() bool {
	return config.Color == nil || *config.Color
}
