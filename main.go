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
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jot/commander"
	"jot/config"
	"jot/editor"
	"jot/screen"
)

type options struct {
	script     string
	configPath string
	noLists    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "jot [files...]",
		Short:        "A terminal note editor that continues markdown lists",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Edit a note
  jot notes.md

  # Run a script against a note and print its result
  jot --eval tidy.lisp notes.md
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.script, "eval", "", "Run a lisp script against the files and print its result")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/jot/settings.yaml)")
	cmd.Flags().BoolVar(&opts.noLists, "no-lists", false, "Don't continue lists when Enter is pressed")
	return cmd
}

func loadSettings(path string) (config.Settings, string, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			// no configuration directory, so run with the defaults
			return config.Default(), "", nil
		}
	}
	settings, err := config.Load(path)
	return settings, path, err
}

func run(cmd *cobra.Command, opts *options, filenames []string) error {
	settings, settingsPath, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	if opts.noLists {
		settings.ListContinuation = false
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetSettings(settings)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetSettingsPath(settingsPath)

	for _, filename := range filenames {
		if err := e.OpenFile(filename); err != nil {
			return fmt.Errorf("opening %s: %w", filename, err)
		}
	}

	if opts.script != "" {
		// Run a jot script and exit.
		if err := c.LoadRC(settings.RCFile); err != nil {
			return err
		}
		output, err := c.ParseEvalFile(opts.script)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	// Open a log file.
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		defer f.Close()
	}

	if err := c.LoadRC(settings.RCFile); err != nil {
		log.Printf("%+v", err)
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return errors.New("unable to open the terminal")
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
