// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to upper-cased flag names to get environment variable names.
const EnvironmentPrefix = "PROPVIEW"

var (
	app = kingpin.New("propview", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// Command registers a subcommand on the application. Flags registered in this
// package stay global and can be passed to every command.
func Command(name, help string) *kingpin.CmdClause {
	return app.Command(name, help)
}

// Parse parses given command line arguments together with environment variables
// and returns the full name of the selected command (empty when no commands are registered).
func Parse(args []string) (string, error) {
	resetSlices()
	command, err := app.Parse(args)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse command line flags")
	}
	isEnvParsed = true
	return command, nil
}

// ParseFlags parses both the command line flags of the process and
// environment variables.
func ParseFlags() (string, error) {
	return Parse(os.Args[1:])
}

// ParseEnv parses only the environment for arguments.
func ParseEnv() error {
	resetSlices()
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse environment flags")
}

// resetSlices empties cumulative flag values, kingpin appends to them on every parse.
func resetSlices() {
	for _, flag := range definedFlags {
		if slice, ok := flag.(*SliceFlag); ok {
			*slice.value = (*slice.value)[:0]
		}
	}
}

type flagDefinition struct {
	Name, Value, Default, Help string
}

// getFlagsDefinition returns current, default, keys and description for every flag.
// Order follows registration, which keeps related flags together.
func getFlagsDefinition() (flags []flagDefinition) {
	for _, model := range app.Model().Flags {
		// Skip kingpin builtin flags like help-long.
		if strings.Contains(model.Name, "-") {
			continue
		}

		definition := flagDefinition{
			Name:    model.Name,
			Help:    model.Help,
			Default: strings.Join(model.Default, ","),
		}
		if flag, ok := definedFlags[model.Name]; ok {
			definition.Value = flag.valueString()
		} else {
			definition.Value = model.Value.String()
		}
		flags = append(flags, definition)
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%q\n", EnvironmentPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
