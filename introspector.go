package argspec

import (
	"github.com/google/uuid"
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/i18n"
	"github.com/napalu/argspec/internal/messages"
	"github.com/napalu/argspec/internal/util"
	"github.com/napalu/argspec/types/orderedmap"
)

// Introspector is the read-only catalog of the options and positional arguments
// declared for one configuration object. It is built once by NewIntrospector
// (or one of its variants) and never changes afterwards, so it is safe for
// concurrent use.
type Introspector struct {
	options       *orderedmap.OrderedMap[string, *optionEntry]
	names         map[string]string
	arguments     []ArgumentEntry
	members       map[*Member]struct{}
	warnings      []string
	pending       []func() error
	nameConverter NameConversionFunc
	optionPrefix  string
	bundle        *i18n.Bundle
	maxDepth      int
}

// NewIntrospector builds an Introspector from the given configuration functions.
// Registrations (WithOption, WithArgument, WithStruct) are applied in the order
// given, after all settings, and become the declaration order.
func NewIntrospector(configs ...ConfigureIntrospectorFunc) (*Introspector, error) {
	in := newIntrospector()

	var err error
	for _, cfg := range configs {
		cfg(in, &err)
		if err != nil {
			return nil, errs.ErrConfiguringIntrospector.Wrap(err)
		}
	}

	for _, register := range in.pending {
		if err = register(); err != nil {
			return nil, err
		}
	}
	in.pending = nil

	if err = in.validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// NewIntrospectorFromStruct builds an Introspector from the argspec struct tags
// of structWithTags. Further configs are applied as with NewIntrospector;
// registrations they carry follow the struct's declarations.
func NewIntrospectorFromStruct[T any](structWithTags *T, configs ...ConfigureIntrospectorFunc) (*Introspector, error) {
	return NewIntrospectorFromInterface(structWithTags, configs...)
}

// NewIntrospectorFromInterface is the non-generic form of NewIntrospectorFromStruct
func NewIntrospectorFromInterface(i interface{}, configs ...ConfigureIntrospectorFunc) (*Introspector, error) {
	all := make([]ConfigureIntrospectorFunc, 0, len(configs)+1)
	all = append(all, WithStruct(i))

	return NewIntrospector(append(all, configs...)...)
}

func newIntrospector() *Introspector {
	return &Introspector{
		options:       orderedmap.NewOrderedMap[string, *optionEntry](),
		names:         map[string]string{},
		members:       map[*Member]struct{}{},
		nameConverter: DefaultNameConverter,
		optionPrefix:  DefaultOptionPrefix,
		maxDepth:      DefaultMaxDepth,
	}
}

// DeclaredOptions returns all options in declaration order
func (in *Introspector) DeclaredOptions() []Option {
	if in == nil {
		return nil
	}

	result := make([]Option, 0, in.options.Count())
	for kv := in.options.Front(); kv != nil; kv = kv.Next() {
		result = append(result, kv.Value.option.clone())
	}

	return result
}

// OptionMember returns the member decorated by option. It fails with
// errs.ErrOptionNotDeclared when option was not obtained from this Introspector.
func (in *Introspector) OptionMember(option Option) (*Member, error) {
	if in == nil || option.id == "" {
		return nil, errs.ErrOptionNotDeclared.WithArgs(option.Name)
	}

	entry, found := in.options.Get(option.id)
	if !found {
		return nil, errs.ErrOptionNotDeclared.WithArgs(option.Name)
	}

	return entry.member, nil
}

// LookupOption finds a declared option by its name or one of its aliases
func (in *Introspector) LookupOption(name string) (Option, bool) {
	if in == nil {
		return Option{}, false
	}

	id, found := in.names[name]
	if !found {
		return Option{}, false
	}
	entry, _ := in.options.Get(id)

	return entry.option.clone(), true
}

// Arguments returns the (member, Argument) pairs in declaration order. The
// order is never changed to index order.
func (in *Introspector) Arguments() []ArgumentEntry {
	if in == nil {
		return nil
	}

	result := make([]ArgumentEntry, len(in.arguments))
	copy(result, in.arguments)

	return result
}

// Warnings returns the non-fatal schema problems found while building the
// Introspector, translated with its bundle.
func (in *Introspector) Warnings() []string {
	if in == nil {
		return nil
	}

	result := make([]string, len(in.warnings))
	copy(result, in.warnings)

	return result
}

func (in *Introspector) addOption(option Option, member *Member) error {
	if member == nil {
		return errs.ErrNilMember.WithArgs(option.Name)
	}
	if option.Name == "" {
		return errs.ErrEmptyOptionName
	}
	if err := in.claim(member); err != nil {
		return err
	}

	option = option.clone()
	seen := make(map[string]struct{}, len(option.Aliases)+1)
	for _, name := range option.Names() {
		if name == "" {
			return errs.ErrEmptyOptionName
		}
		if _, found := in.names[name]; found {
			return errs.ErrOptionAlreadyExists.WithArgs(name)
		}
		if _, found := seen[name]; found {
			return errs.ErrOptionAlreadyExists.WithArgs(name)
		}
		seen[name] = struct{}{}
	}

	if c, ok := MemberConstraint(member); ok {
		if err := c.validate(member.kind); err != nil {
			return err
		}
	}

	option.id = uuid.NewString()
	for _, name := range option.Names() {
		in.names[name] = option.id
	}
	in.options.Set(option.id, &optionEntry{option: option, member: member})
	in.members[member] = struct{}{}

	return nil
}

func (in *Introspector) addArgument(argument Argument, member *Member) error {
	if member == nil {
		return errs.ErrNilMember.WithArgs(argument.DisplayName())
	}
	if argument.Index < 0 {
		return errs.ErrNegativeIndex.WithArgs(argument.Index)
	}
	if err := in.claim(member); err != nil {
		return err
	}

	if c, ok := MemberConstraint(member); ok {
		if err := c.validate(member.kind); err != nil {
			return err
		}
	}

	in.arguments = append(in.arguments, ArgumentEntry{Member: member, Argument: argument})
	in.members[member] = struct{}{}

	return nil
}

func (in *Introspector) claim(member *Member) error {
	if _, used := in.members[member]; used {
		return errs.ErrMemberAlreadyDecorated.WithArgs(member.Name())
	}

	return nil
}

func (in *Introspector) validate() error {
	names := make([]string, 0, len(in.names))
	for kv := in.options.Front(); kv != nil; kv = kv.Next() {
		names = append(names, kv.Value.option.Names()...)
	}

	for kv := in.options.Front(); kv != nil; kv = kv.Next() {
		option := kv.Value.option
		for _, refs := range [][]string{option.Incompatible, option.MustUseWith} {
			for _, ref := range refs {
				if err := in.checkReference(option, ref, names); err != nil {
					return err
				}
			}
		}

		for _, ref := range option.Incompatible {
			if util.Contains(option.MustUseWith, ref) {
				in.warn(messages.WarnConflictingRelationKey, option.Name, ref)
			}
		}
	}

	in.checkArgumentLayout()

	return nil
}

func (in *Introspector) checkReference(option Option, ref string, names []string) error {
	if util.Contains(option.Names(), ref) {
		return errs.ErrSelfReference.WithArgs(option.Name)
	}
	if _, found := in.names[ref]; found {
		return nil
	}

	err := errs.ErrUnknownOptionReference.WithArgs(option.Name, ref)
	if suggestion, ok := util.ClosestMatch(ref, names, 2); ok {
		return err.Wrap(errs.ErrDidYouMean.WithArgs(suggestion))
	}

	return err
}

// checkArgumentLayout records a warning for every argument which can never
// receive a value because another one claims its index first.
func (in *Introspector) checkArgumentLayout() {
	for i, current := range in.arguments {
		for _, earlier := range in.arguments[:i] {
			if earlier.Argument.Index == current.Argument.Index {
				in.warn(messages.WarnDuplicateIndexKey, earlier.Argument.DisplayName(), current.Argument.DisplayName(), earlier.Argument.Index)
				continue
			}
			lower, higher := earlier, current
			if higher.Argument.Index < lower.Argument.Index {
				lower, higher = higher, lower
			}
			if !IsArrayType(lower.Member) {
				continue
			}
			l, h := lower.Argument, higher.Argument
			switch {
			case l.ConsumesRemaining():
				in.warn(messages.WarnShadowedArgumentKey, h.DisplayName(), h.Index, l.DisplayName(), l.Index)
			case h.Index < l.Index+l.Size:
				in.warn(messages.WarnOverlappingArgumentKey, h.DisplayName(), h.Index, l.DisplayName(), l.Index, l.Index+l.Size-1)
			}
		}
	}
}

func (in *Introspector) warn(key string, args ...interface{}) {
	in.warnings = append(in.warnings, in.translations().T(key, args...))
}

func (in *Introspector) translations() *i18n.Bundle {
	if in.bundle != nil {
		return in.bundle
	}

	return i18n.Default()
}

func (in *Introspector) register(fn func() error) {
	in.pending = append(in.pending, fn)
}
