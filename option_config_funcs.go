package argspec

import (
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/internal/parse"
)

// ConfigureOptionFunc is used when defining an Option with NewOption
type ConfigureOptionFunc func(option *Option, err *error)

// NewOption creates an Option named name configured by configs
func NewOption(name string, configs ...ConfigureOptionFunc) (Option, error) {
	option := Option{Name: name}
	if name == "" {
		return option, errs.ErrEmptyOptionName
	}

	var err error
	for _, cfg := range configs {
		cfg(&option, &err)
		if err != nil {
			return Option{}, err
		}
	}

	return option, nil
}

// WithAliases appends alternative names; they are displayed after the canonical name
func WithAliases(aliases ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Aliases = append(option.Aliases, aliases...)
	}
}

// WithAliasList is WithAliases for a single whitespace separated string which
// may contain quoted names, e.g. `-o "--out file"`
func WithAliasList(aliases string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		names, e := parse.Split(aliases)
		if e != nil {
			*err = errs.ErrInvalidList.WithArgs("aliases", aliases).Wrap(e)
			return
		}
		option.Aliases = append(option.Aliases, names...)
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// WithRequired marks the option as mandatory
func WithRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Required = required
	}
}

// WithIncompatible lists options which cannot be used together with this one
func WithIncompatible(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Incompatible = append(option.Incompatible, names...)
	}
}

// WithMustUseWith lists options which must be used together with this one
func WithMustUseWith(names ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.MustUseWith = append(option.MustUseWith, names...)
	}
}
