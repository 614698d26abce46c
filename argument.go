package argspec

import "fmt"

// Argument describes a positional command-line value
type Argument struct {
	Name        string // empty means ArgumentPlaceholder is displayed
	Index       int    // zero-based position
	Size        int    // number of values consumed; 0 or less consumes all remaining values from Index
	Required    bool
	Description string
}

// DisplayName returns the name shown in help output
func (a Argument) DisplayName() string {
	if a.Name == "" {
		return ArgumentPlaceholder
	}

	return a.Name
}

// ConsumesRemaining reports whether the argument takes every value from Index onward
func (a Argument) ConsumesRemaining() bool {
	return a.Size <= 0
}

// String returns a short representation such as "input (index: 0)"
func (a Argument) String() string {
	if a.Size > 0 {
		return fmt.Sprintf("%s (index: %d, size: %d)", a.DisplayName(), a.Index, a.Size)
	}

	return fmt.Sprintf("%s (index: %d)", a.DisplayName(), a.Index)
}
