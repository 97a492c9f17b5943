// config.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config collects the settings of the tex2web command from
// command line flags, environment variables and an optional YAML
// configuration file.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/grencez/tex2web/latex"
	"github.com/grencez/tex2web/latex/cache"
)

// EnvPrefix is prepended to the upper-cased setting names to form the
// names of environment variables, e.g. TEX2WEB_CSS_ONLY.
const EnvPrefix = "TEX2WEB"

// Keys lists all setting names.
var Keys = []string{
	"input",
	"output",
	"include",
	"stylesheet",
	"define",
	"macro-files",
	"css-only",
	"highlight",
	"highlight-style",
	"verbose",
}

// Settings holds the merged configuration.
type Settings struct {
	Input          string   `mapstructure:"input"`
	Output         string   `mapstructure:"output"`
	Include        []string `mapstructure:"include"`
	Stylesheet     string   `mapstructure:"stylesheet"`
	Define         []string `mapstructure:"define"`
	MacroFiles     []string `mapstructure:"macro-files"`
	CSSOnly        bool     `mapstructure:"css-only"`
	Highlight      bool     `mapstructure:"highlight"`
	HighlightStyle string   `mapstructure:"highlight-style"`
	Verbose        bool     `mapstructure:"verbose"`
}

// NewViper returns a viper instance with the defaults and environment
// bindings for all keys.  Command line flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range Keys {
		// BindEnv only fails if no key is given.
		_ = v.BindEnv(key)
	}
	v.SetDefault("highlight-style", "github")
	return v
}

// Load reads the configuration file, if one is given, and returns the
// merged settings.  Flags take precedence over the environment, which
// takes precedence over the file.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Options converts the settings into options for the converter.  Macro
// files are read before the -D definitions, so that the latter can
// override the former.
func (s *Settings) Options() (*latex.Options, error) {
	searchPath, err := ExpandSearchPaths(s.Include)
	if err != nil {
		return nil, err
	}

	var defs []latex.Definition
	for _, fileName := range s.MacroFiles {
		fileDefs, err := LoadMacroFile(fileName)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	for _, arg := range s.Define {
		def, err := ParseDefine(arg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return &latex.Options{
		SearchPath:     searchPath,
		Stylesheet:     s.Stylesheet,
		Macros:         defs,
		Highlight:      s.Highlight,
		HighlightStyle: s.HighlightStyle,
		Files:          cache.NewCache(),
	}, nil
}
