// Package parse unmarshals argspec struct tags.
package parse

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
)

// TagName is the struct tag key read by UnmarshalTagFormat
const TagName = "argspec"

var (
	optionOnlyKeys   = []string{"aliases", "incompatible", "with"}
	argumentOnlyKeys = []string{"pos", "size"}
)

// UnmarshalTagFormat parses a tag of the form "key:value;key:value" found on field.
//
// Recognised keys: kind, name, aliases, desc, desckey, required, incompatible,
// with, pos, size, type, enum, min, max, allowed, ignorecase, regexp, constrained.
// List values (aliases, incompatible, with, enum, allowed) are whitespace
// separated and may be quoted.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*types.TagConfig, error) {
	config := &types.TagConfig{}
	seen := make(map[string]bool)

	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		k, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(part)
		}

		key := strings.ToLower(strings.TrimSpace(k))
		seen[key] = true

		var err error
		switch key {
		case "kind":
			switch types.Kind(value) {
			case types.KindOption, types.KindArgument, types.KindEmpty:
				config.Kind = types.Kind(value)
			default:
				return nil, errs.ErrInvalidKind.WithArgs(value)
			}
		case "name":
			config.Name = value
		case "desc":
			config.Description = value
		case "desckey":
			config.DescriptionKey = value
		case "required":
			config.Required, err = parseBool(key, value)
		case "aliases":
			config.Aliases, err = parseList(key, value)
		case "incompatible":
			config.Incompatible, err = parseList(key, value)
		case "with":
			config.MustUseWith, err = parseList(key, value)
		case "pos":
			var index int
			index, err = parseInt(key, value)
			if err == nil && index < 0 {
				err = errs.ErrNegativeIndex.WithArgs(index)
			}
			config.Index = &index
		case "size":
			config.Size, err = parseInt(key, value)
		case "type":
			config.Shape = types.ShapeFromString(value)
			if config.Shape == types.Unclassified {
				err = errs.ErrInvalidShape.WithArgs(value)
			}
		case "enum":
			config.Enum, err = parseList(key, value)
		case "min":
			constraint(config).Min = value
		case "max":
			constraint(config).Max = value
		case "allowed":
			constraint(config).AllowedValues, err = parseList(key, value)
		case "ignorecase":
			constraint(config).IgnoreCase, err = parseBool(key, value)
		case "regexp":
			constraint(config).Regexp = value
		case "constrained":
			var attach bool
			if attach, err = parseBool(key, value); attach {
				constraint(config)
			}
		default:
			return nil, errs.ErrUnrecognizedTag.WithArgs(k)
		}

		if err != nil {
			return nil, err
		}
	}

	if config.Kind == types.KindEmpty {
		config.Kind = types.KindOption
		if config.Index != nil {
			config.Kind = types.KindArgument
		}
	}

	invalid := argumentOnlyKeys
	if config.Kind == types.KindArgument {
		invalid = optionOnlyKeys
		if config.Index == nil {
			return nil, errs.ErrMissingPosition.WithArgs(field.Name)
		}
	}
	for _, key := range invalid {
		if seen[key] {
			return nil, errs.ErrInvalidAttribute.WithArgs(key, config.Kind)
		}
	}

	return config, nil
}

func constraint(config *types.TagConfig) *types.ConstraintConfig {
	if config.Constraint == nil {
		config.Constraint = &types.ConstraintConfig{}
	}

	return config.Constraint
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errs.ErrInvalidBool.WithArgs(key, value)
	}

	return b, nil
}

func parseInt(key, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.ErrInvalidInt.WithArgs(key, value)
	}

	return i, nil
}

func parseList(key, value string) ([]string, error) {
	values, err := Split(value)
	if err != nil {
		return nil, errs.ErrInvalidList.WithArgs(key, value).Wrap(err)
	}

	return values, nil
}
