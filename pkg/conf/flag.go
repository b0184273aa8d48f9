package conf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag knows its environment variable name, can clear it and
// can serialize its current value for config dumps.
type flagType interface {
	envName() string
	clear()
	valueString() string
}

// definedFlags stores all the defined flags. It helps to find
// duplicates when defining flag with the same name.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic("This flag was already defined. Flag definition is lack of duplicate check.")
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns name converted to environment variable name.
// For instance: "fetch_timeout" will be "PROPVIEW_FETCH_TIMEOUT".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// redefined returns already registered flag with given name or nil.
// It panics when the flag was registered with another type.
func redefined(flagName string, check func(flagType) bool) flagType {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag == nil {
		return nil
	}
	if !check(duplicatedFlag) {
		panic("Flag was redefined but with different type or default value. Unify the definition.")
	}
	return duplicatedFlag
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if flag := redefined(flagName, func(f flagType) bool {
		def, ok := f.(*StringFlag)
		return ok && def.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*StringFlag)
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s StringFlag) valueString() string {
	return s.Value()
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if flag := redefined(flagName, func(f flagType) bool {
		def, ok := f.(*IntFlag)
		return ok && def.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*IntFlag)
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%d", defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

func (i IntFlag) valueString() string {
	return fmt.Sprintf("%d", i.Value())
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if flag := redefined(flagName, func(f flagType) bool {
		def, ok := f.(*BoolFlag)
		return ok && def.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*BoolFlag)
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

func (b BoolFlag) valueString() string {
	return fmt.Sprintf("%v", b.Value())
}

// DurationFlag represents flag with duration value.
type DurationFlag struct {
	*cliAndEnvFlag
	defaultValue time.Duration
	value        *time.Duration
}

// NewDurationFlag is a constructor of DurationFlag struct.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	if flag := redefined(flagName, func(f flagType) bool {
		def, ok := f.(*DurationFlag)
		return ok && def.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*DurationFlag)
	}

	flagDef := &DurationFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue.String()),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Duration()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (d DurationFlag) Value() time.Duration {
	if !isEnvParsed {
		return d.defaultValue
	}

	return *d.value
}

func (d DurationFlag) valueString() string {
	return d.Value().String()
}

// SliceFlag represents flag with slice value.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
}

// NewSliceFlag is a constructor of SliceFlag struct.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	if flag := redefined(flagName, func(f flagType) bool {
		def, ok := f.(*SliceFlag)
		return ok && strings.Join(def.defaultValue, stringListDelimiter) == strings.Join(elemsInDefaultSlice, stringListDelimiter)
	}); flag != nil {
		return flag.(*SliceFlag)
	}

	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter)),
		defaultValue:  elemsInDefaultSlice,
	}
	flagDef.value = StringList(flagDef)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return append([]string{}, s.defaultValue...)
	}

	return *s.value
}

func (s SliceFlag) valueString() string {
	return strings.Join(s.Value(), stringListDelimiter)
}
