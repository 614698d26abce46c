package argspec

import (
	"reflect"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/i18n"
)

// WithOption registers option as decorating member
func WithOption(option Option, member *Member) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		in.register(func() error {
			return in.addOption(option, member)
		})
	}
}

// WithArgument registers argument as decorating member
func WithArgument(argument Argument, member *Member) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		in.register(func() error {
			return in.addArgument(argument, member)
		})
	}
}

// WithStruct registers every option and argument declared with argspec struct
// tags on structWithTags, which must be a struct or a non-nil pointer to one.
// Pass a pointer when the members should be bound to the struct's fields.
func WithStruct(structWithTags interface{}) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		if structWithTags == nil {
			*err = errs.ErrNilPointer
			return
		}
		v := reflect.ValueOf(structWithTags)
		if v.Kind() == reflect.Ptr && v.IsNil() {
			*err = errs.ErrNilPointer
			return
		}

		in.register(func() error {
			return in.processStruct(v, "", "", 0)
		})
	}
}

// WithNameConverter sets how option names are derived from field names when a
// struct tag gives no name. The default is ToKebabCase.
func WithNameConverter(converter NameConversionFunc) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		if converter != nil {
			in.nameConverter = converter
		}
	}
}

// WithOptionPrefix sets the prefix put in front of derived option names ("--" by default)
func WithOptionPrefix(prefix string) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		in.optionPrefix = prefix
	}
}

// WithBundle sets the bundle used for description keys and warnings. The
// default bundle is used when none is set.
func WithBundle(bundle *i18n.Bundle) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		in.bundle = bundle
	}
}

// WithMaxDepth limits how deep nested structs are walked
func WithMaxDepth(depth int) ConfigureIntrospectorFunc {
	return func(in *Introspector, err *error) {
		if depth < 0 {
			*err = errs.ErrRecursionDepthExceeded.WithArgs(depth)
			return
		}
		in.maxDepth = depth
	}
}
