package errs

import (
	"errors"
	"sync"

	"github.com/napalu/argspec/i18n"
)

// Introspection errors
var (
	ErrNilPointer              = i18n.NewError(ErrNilPointerKey)
	ErrOnlyStructsCanBeTagged  = i18n.NewError(ErrOnlyStructsCanBeTaggedKey)
	ErrRecursionDepthExceeded  = i18n.NewError(ErrRecursionDepthExceededKey)
	ErrProcessingField         = i18n.NewError(ErrProcessingFieldKey)
	ErrConfiguringIntrospector = i18n.NewError(ErrConfiguringIntrospectorKey)
	ErrEmptyOptionName         = i18n.NewError(ErrEmptyOptionNameKey)
	ErrOptionAlreadyExists     = i18n.NewError(ErrOptionAlreadyExistsKey)
	ErrNilMember               = i18n.NewError(ErrNilMemberKey)
	ErrMemberAlreadyDecorated  = i18n.NewError(ErrMemberAlreadyDecoratedKey)
	ErrNegativeIndex           = i18n.NewError(ErrNegativeIndexKey)
	ErrOptionNotDeclared       = i18n.NewError(ErrOptionNotDeclaredKey)
	ErrUnknownOptionReference  = i18n.NewError(ErrUnknownOptionReferenceKey)
	ErrDidYouMean              = i18n.NewError(ErrDidYouMeanKey)
	ErrSelfReference           = i18n.NewError(ErrSelfReferenceKey)
	ErrRegexCompile            = i18n.NewError(ErrRegexCompileKey)
	ErrConstraintBounds        = i18n.NewError(ErrConstraintBoundsKey)
	ErrInvalidBound            = i18n.NewError(ErrInvalidBoundKey)
	ErrNotEnum                 = i18n.NewError(ErrNotEnumKey)
	ErrPointerExpected         = i18n.NewError(ErrPointerExpectedKey)
	ErrBindNil                 = i18n.NewError(ErrBindNilKey)
)

// Struct tag errors
var (
	ErrInvalidTagFormat = i18n.NewError(ErrInvalidTagFormatKey)
	ErrInvalidKind      = i18n.NewError(ErrInvalidKindKey)
	ErrUnrecognizedTag  = i18n.NewError(ErrUnrecognizedTagKey)
	ErrInvalidBool      = i18n.NewError(ErrInvalidBoolKey)
	ErrInvalidInt       = i18n.NewError(ErrInvalidIntKey)
	ErrInvalidShape     = i18n.NewError(ErrInvalidShapeKey)
	ErrInvalidList      = i18n.NewError(ErrInvalidListKey)
	ErrMissingPosition  = i18n.NewError(ErrMissingPositionKey)
	ErrInvalidAttribute = i18n.NewError(ErrInvalidAttributeKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrNilPointer,
		ErrOnlyStructsCanBeTagged,
		ErrRecursionDepthExceeded,
		ErrProcessingField,
		ErrConfiguringIntrospector,
		ErrEmptyOptionName,
		ErrOptionAlreadyExists,
		ErrNilMember,
		ErrMemberAlreadyDecorated,
		ErrNegativeIndex,
		ErrOptionNotDeclared,
		ErrUnknownOptionReference,
		ErrDidYouMean,
		ErrSelfReference,
		ErrRegexCompile,
		ErrConstraintBounds,
		ErrInvalidBound,
		ErrNotEnum,
		ErrPointerExpected,
		ErrBindNil,
		ErrInvalidTagFormat,
		ErrInvalidKind,
		ErrUnrecognizedTag,
		ErrInvalidBool,
		ErrInvalidInt,
		ErrInvalidShape,
		ErrInvalidList,
		ErrMissingPosition,
		ErrInvalidAttribute,
	},
}

// UpdateMessageProvider updates the message provider of all built-in errors
// and makes it the default for errors created afterwards.
//
// Example:
//
//	bundle, _ := i18n.NewBundle()
//	_ = bundle.SetDefaultLanguage(language.German)
//	errs.UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}

// WrapOnce wraps err in the sentinel wrapper unless err already carries it.
func WrapOnce(err error, wrapper i18n.TranslatableError, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, wrapper) {
		return err
	}

	if len(args) > 0 {
		return wrapper.WithArgs(args...).Wrap(err)
	}

	return wrapper.Wrap(err)
}
