package messages

const (
	prefixKey        = "argspec"
	WarningPrefixKey = prefixKey + ".warning"
)

// Schema warnings
const (
	WarnDuplicateIndexKey      = WarningPrefixKey + ".duplicate_index"
	WarnShadowedArgumentKey    = WarningPrefixKey + ".shadowed_argument"
	WarnOverlappingArgumentKey = WarningPrefixKey + ".overlapping_argument"
	WarnConflictingRelationKey = WarningPrefixKey + ".conflicting_relation"
)
