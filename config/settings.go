//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads and writes jot's settings file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"jot/lists"
)

const (
	defaultTabStop      = 8
	defaultPreviewWidth = 80
)

var ErrUnknownSetting = errors.New("unknown setting")

// Settings are the user preferences that persist between sessions.
type Settings struct {
	ListContinuation  bool   `yaml:"list-continuation"`
	GuardOrderedLists bool   `yaml:"guard-ordered-lists"`
	SystemClipboard   bool   `yaml:"system-clipboard"`
	TabStop           int    `yaml:"tab-stop"`
	PreviewWidth      int    `yaml:"preview-width"`
	LogFile           string `yaml:"log-file"`
	RCFile            string `yaml:"rc-file"`
}

// Default returns the settings used when there is no settings file.
func Default() Settings {
	s := Settings{
		ListContinuation: true,
		SystemClipboard:  true,
		TabStop:          defaultTabStop,
		PreviewWidth:     defaultPreviewWidth,
	}
	if home, err := os.UserHomeDir(); err == nil {
		s.LogFile = filepath.Join(home, ".jotlog")
	}
	if dir, err := Dir(); err == nil {
		s.RCFile = filepath.Join(dir, "init.lisp")
	}
	return s
}

// Dir returns the directory holding jot's configuration files.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jot"), nil
}

// DefaultPath returns the path of the settings file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Load reads settings from path. Keys missing from the file keep their
// default values, and a missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("No settings file at %s, using defaults", path)
		return s, nil
	} else if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	s.clamp()
	return s, nil
}

// Save writes s to path, creating its directory if needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// String returns s in settings file form.
func (s Settings) String() string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s *Settings) clamp() {
	if s.TabStop < 1 || s.TabStop > 16 {
		s.TabStop = defaultTabStop
	}
	if s.PreviewWidth < 20 {
		s.PreviewWidth = defaultPreviewWidth
	}
}

// ListOptions returns the options for continuing lists.
func (s Settings) ListOptions() lists.Options {
	return lists.Options{GuardOrdered: s.GuardOrderedLists}
}

// Names returns the names of all settings, sorted.
func Names() []string {
	names := []string{
		"list-continuation",
		"guard-ordered-lists",
		"system-clipboard",
		"tab-stop",
		"preview-width",
		"log-file",
		"rc-file",
	}
	sort.Strings(names)
	return names
}

// Get returns the value of the named setting as a string.
func (s Settings) Get(name string) (string, error) {
	switch name {
	case "list-continuation":
		return strconv.FormatBool(s.ListContinuation), nil
	case "guard-ordered-lists":
		return strconv.FormatBool(s.GuardOrderedLists), nil
	case "system-clipboard":
		return strconv.FormatBool(s.SystemClipboard), nil
	case "tab-stop":
		return strconv.Itoa(s.TabStop), nil
	case "preview-width":
		return strconv.Itoa(s.PreviewWidth), nil
	case "log-file":
		return s.LogFile, nil
	case "rc-file":
		return s.RCFile, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, name)
}

// Set parses value and assigns it to the named setting.
// Booleans also accept "on" and "off".
func (s *Settings) Set(name, value string) error {
	var err error
	next := *s
	switch name {
	case "list-continuation":
		next.ListContinuation, err = parseBool(value)
	case "guard-ordered-lists":
		next.GuardOrderedLists, err = parseBool(value)
	case "system-clipboard":
		next.SystemClipboard, err = parseBool(value)
	case "tab-stop":
		next.TabStop, err = strconv.Atoi(value)
	case "preview-width":
		next.PreviewWidth, err = strconv.Atoi(value)
	case "log-file":
		next.LogFile = value
	case "rc-file":
		next.RCFile = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", name, value)
	}
	next.clamp()
	*s = next
	return nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return strconv.ParseBool(value)
}
