package argspec

import (
	"reflect"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/internal/parse"
	"github.com/napalu/argspec/internal/util"
	"github.com/napalu/argspec/types"
)

var introspectorType = reflect.TypeOf(Introspector{})

// processStruct registers the tagged fields of structValue. path is the Go field
// path used for member names; flagPrefix is the converted path which qualifies
// derived option names of nested fields.
func (in *Introspector) processStruct(structValue reflect.Value, path, flagPrefix string, depth int) error {
	if depth > in.maxDepth {
		return errs.ErrRecursionDepthExceeded.WithArgs(in.maxDepth)
	}

	unwrappedValue, err := util.UnwrapValue(structValue)
	if err != nil {
		return err
	}

	st := unwrappedValue.Type()
	if st.Kind() != reflect.Struct {
		return errs.ErrOnlyStructsCanBeTagged
	}

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, tagged := field.Tag.Lookup(parse.TagName)
		if tag == "-" {
			continue
		}

		fieldValue := unwrappedValue.Field(i)
		memberName := field.Name
		if path != "" {
			memberName = path + "." + field.Name
		}

		if !tagged {
			if !isNestedStruct(field.Type) {
				continue
			}
			if fieldValue.Kind() == reflect.Ptr && fieldValue.IsNil() {
				continue
			}
			fieldFlagPath := in.nameConverter(field.Name)
			if flagPrefix != "" {
				fieldFlagPath = flagPrefix + "." + fieldFlagPath
			}
			if err = in.processStruct(fieldValue, memberName, fieldFlagPath, depth+1); err != nil {
				return errs.WrapOnce(err, errs.ErrProcessingField, memberName)
			}
			continue
		}

		config, err := parse.UnmarshalTagFormat(tag, field)
		if err != nil {
			return errs.WrapOnce(err, errs.ErrProcessingField, memberName)
		}

		member := in.memberFromField(memberName, field, fieldValue, config)
		switch config.Kind {
		case types.KindArgument:
			err = in.addArgument(in.argumentFromConfig(config), member)
		default:
			err = in.addOption(in.optionFromConfig(field, flagPrefix, config), member)
		}
		if err != nil {
			return errs.WrapOnce(err, errs.ErrProcessingField, memberName)
		}
	}

	return nil
}

func (in *Introspector) memberFromField(name string, field reflect.StructField, value reflect.Value, config *types.TagConfig) *Member {
	kind := parse.InferValueKind(field.Type)
	if config.Shape != types.Unclassified {
		kind = kind.WithShape(config.Shape)
	}
	if len(config.Enum) > 0 {
		kind = kind.WithEnum(config.Enum...)
	}

	var constraint *Constraint
	if c := config.Constraint; c != nil {
		constraint = &Constraint{
			Min:           c.Min,
			Max:           c.Max,
			AllowedValues: c.AllowedValues,
			IgnoreCase:    c.IgnoreCase,
			Regexp:        c.Regexp,
		}
	}

	member := NewMember(name, kind, constraint)
	member.value = value

	return member
}

func (in *Introspector) optionFromConfig(field reflect.StructField, flagPrefix string, config *types.TagConfig) Option {
	name := config.Name
	if name == "" {
		name = in.nameConverter(field.Name)
		if flagPrefix != "" {
			name = flagPrefix + "." + name
		}
		name = in.optionPrefix + name
	}

	return Option{
		Name:         name,
		Aliases:      config.Aliases,
		Description:  in.description(config),
		Required:     config.Required,
		Incompatible: config.Incompatible,
		MustUseWith:  config.MustUseWith,
	}
}

func (in *Introspector) argumentFromConfig(config *types.TagConfig) Argument {
	return Argument{
		Name:        config.Name,
		Index:       *config.Index,
		Size:        config.Size,
		Required:    config.Required,
		Description: in.description(config),
	}
}

// description prefers the translation of the description key, falling back
// to the literal description when the bundle has no such key.
func (in *Introspector) description(config *types.TagConfig) string {
	if config.DescriptionKey == "" {
		return config.Description
	}

	bundle := in.translations()
	if msg, ok := bundle.Lookup(bundle.GetDefaultLanguage(), config.DescriptionKey); ok {
		return msg
	}

	return config.Description
}

func isNestedStruct(t reflect.Type) bool {
	ut := util.UnwrapType(t)
	if ut.Kind() != reflect.Struct || ut == introspectorType {
		return false
	}

	return parse.InferValueKind(ut).Shape() == types.Unclassified
}
