// Package types provides the type definitions shared by the argspec packages.
package types

// Kind is used to define the kind of entity a struct tag describes
type Kind string

const (
	KindOption   Kind = "option"
	KindArgument Kind = "argument"
	KindEmpty    Kind = ""
)

// TagConfig is used to store struct tag information about an option or argument
type TagConfig struct {
	Kind           Kind
	Name           string
	Aliases        []string
	Description    string
	DescriptionKey string
	Required       bool
	Incompatible   []string
	MustUseWith    []string
	Index          *int
	Size           int
	Shape          Shape
	Enum           []string
	Constraint     *ConstraintConfig
}

// ConstraintConfig holds the constraint entries found in a struct tag
type ConstraintConfig struct {
	Min           string
	Max           string
	AllowedValues []string
	IgnoreCase    bool
	Regexp        string
}
