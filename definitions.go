package argspec

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// NameConversionFunc converts a Go field name to an option name (without prefix)
type NameConversionFunc func(string) string

// ConfigureIntrospectorFunc is used when building an Introspector with NewIntrospector
type ConfigureIntrospectorFunc func(in *Introspector, err *error)

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "output-dir"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "output_dir"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "outputDir"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "outputdir"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultNameConverter = ToKebabCase
)

const (
	// DefaultOptionPrefix precedes option names derived from field names
	DefaultOptionPrefix = "--"
	// DefaultMaxDepth limits how deep nested structs are walked
	DefaultMaxDepth = 5
	// ArgumentPlaceholder is displayed for arguments declared without a name
	ArgumentPlaceholder = "ARGUMENT"
)

// ArgumentEntry pairs a positional Argument with the member it decorates
type ArgumentEntry struct {
	Member   *Member
	Argument Argument
}

type optionEntry struct {
	option Option
	member *Member
}
