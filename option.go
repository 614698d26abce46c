package argspec

import (
	"slices"
	"strings"
)

// Option describes a named command-line switch. Options are values: the copy
// held by an Introspector carries an owner id which OptionMember uses to find
// the decorated member again.
type Option struct {
	Name         string
	Aliases      []string
	Description  string
	Required     bool
	Incompatible []string // options which cannot be used together with this one
	MustUseWith  []string // options which must be used together with this one

	id string
}

// ID returns the id assigned when the option was registered with an
// Introspector, or an empty string for an unregistered option.
func (o Option) ID() string {
	return o.id
}

// Names returns the canonical name followed by all aliases
func (o Option) Names() []string {
	names := make([]string, 0, len(o.Aliases)+1)
	names = append(names, o.Name)

	return append(names, o.Aliases...)
}

// String returns a short representation such as "--output, -o (required)"
func (o Option) String() string {
	s := strings.Join(o.Names(), ", ")
	if o.Required {
		s += " (required)"
	}

	return s
}

func (o Option) clone() Option {
	o.Aliases = slices.Clone(o.Aliases)
	o.Incompatible = slices.Clone(o.Incompatible)
	o.MustUseWith = slices.Clone(o.MustUseWith)

	return o
}
