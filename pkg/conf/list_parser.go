package conf

import (
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListValue is a custom kingpin value which resolves flag's parameters consisting of
// a string slice delimited by `stringListDelimiter`.
//
// When user specifies options: `-f=A,B -f=C` the flag value is a slice with A,B,C items.
type StringListValue []string

// Set splits the input string and appends the parts. Implements kingpin.Value.
func (s *StringListValue) Set(value string) error {
	*s = append(*s, strings.Split(value, stringListDelimiter)...)
	return nil
}

// Get implements kingpin.Getter.
func (s *StringListValue) Get() interface{} {
	return []string(*s)
}

// String returns comma separated elements. Implements kingpin.Value.
func (s *StringListValue) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *StringListValue) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListValue)(target))
	return
}
