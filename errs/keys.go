// Package errs declares every error returned by argspec together with its
// translation key.
package errs

const (
	prefixKey = "argspec"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	TagErrorPrefixKey = ErrorPrefixKey + ".tag"
)

// Introspection errors
const (
	ErrNilPointerKey              = ErrorPrefixKey + ".nil_pointer"
	ErrOnlyStructsCanBeTaggedKey  = ErrorPrefixKey + ".only_structs_can_be_tagged"
	ErrRecursionDepthExceededKey  = ErrorPrefixKey + ".recursion_depth_exceeded"
	ErrProcessingFieldKey         = ErrorPrefixKey + ".processing_field"
	ErrConfiguringIntrospectorKey = ErrorPrefixKey + ".configuring_introspector"
	ErrEmptyOptionNameKey         = ErrorPrefixKey + ".empty_option_name"
	ErrOptionAlreadyExistsKey     = ErrorPrefixKey + ".option_already_exists"
	ErrNilMemberKey               = ErrorPrefixKey + ".nil_member"
	ErrMemberAlreadyDecoratedKey  = ErrorPrefixKey + ".member_already_decorated"
	ErrNegativeIndexKey           = ErrorPrefixKey + ".negative_index"
	ErrOptionNotDeclaredKey       = ErrorPrefixKey + ".option_not_declared"
	ErrUnknownOptionReferenceKey  = ErrorPrefixKey + ".unknown_option_reference"
	ErrDidYouMeanKey              = ErrorPrefixKey + ".did_you_mean"
	ErrSelfReferenceKey           = ErrorPrefixKey + ".self_reference"
	ErrRegexCompileKey            = ErrorPrefixKey + ".regex_compile"
	ErrConstraintBoundsKey        = ErrorPrefixKey + ".constraint_bounds"
	ErrInvalidBoundKey            = ErrorPrefixKey + ".invalid_bound"
	ErrNotEnumKey                 = ErrorPrefixKey + ".not_enum"
	ErrPointerExpectedKey         = ErrorPrefixKey + ".pointer_expected"
	ErrBindNilKey                 = ErrorPrefixKey + ".bind_nil"
)

// Struct tag errors
const (
	ErrInvalidTagFormatKey = TagErrorPrefixKey + ".invalid_format"
	ErrInvalidKindKey      = TagErrorPrefixKey + ".invalid_kind"
	ErrUnrecognizedTagKey  = TagErrorPrefixKey + ".unrecognized_key"
	ErrInvalidBoolKey      = TagErrorPrefixKey + ".invalid_bool"
	ErrInvalidIntKey       = TagErrorPrefixKey + ".invalid_int"
	ErrInvalidShapeKey     = TagErrorPrefixKey + ".invalid_shape"
	ErrInvalidListKey      = TagErrorPrefixKey + ".invalid_list"
	ErrMissingPositionKey  = TagErrorPrefixKey + ".missing_position"
	ErrInvalidAttributeKey = TagErrorPrefixKey + ".invalid_attribute"
)
