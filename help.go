package argspec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// HelpRenderer writes usage text for an Introspector to a writer. One call to
// PrintHelp is a single write, serialized with the renderer's other calls, so
// concurrent renderings never interleave.
type HelpRenderer struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewHelpRenderer creates a renderer writing to w (os.Stdout when w is nil)
func NewHelpRenderer(w io.Writer) *HelpRenderer {
	if w == nil {
		w = os.Stdout
	}

	return &HelpRenderer{writer: w}
}

var stdoutRenderer = NewHelpRenderer(os.Stdout)

// PrintHelp writes usage text for in to standard output
func PrintHelp(in *Introspector) {
	stdoutRenderer.PrintHelp(in)
}

// PrintHelpTo writes usage text for in to w
func PrintHelpTo(w io.Writer, in *Introspector) {
	NewHelpRenderer(w).PrintHelp(in)
}

// HelpText returns the usage text PrintHelp would write
func HelpText(in *Introspector) string {
	var buf bytes.Buffer
	writeHelp(&buf, in)

	return buf.String()
}

// PrintHelp writes the OPTIONS section followed by the ARGUMENTS section.
// Write errors from the underlying writer are ignored.
func (r *HelpRenderer) PrintHelp(in *Introspector) {
	var buf bytes.Buffer
	writeHelp(&buf, in)

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.writer.Write(buf.Bytes())
}

func writeHelp(buf *bytes.Buffer, in *Introspector) {
	buf.WriteString("Usage: OPTIONS\n")
	for _, option := range in.DeclaredOptions() {
		member, err := in.OptionMember(option)
		if err != nil {
			continue
		}
		writeOption(buf, option, member)
	}

	buf.WriteString("Usage: ARGUMENTS\n")
	for _, entry := range in.Arguments() {
		writeArgument(buf, entry.Argument, entry.Member)
	}
}

func writeOption(buf *bytes.Buffer, option Option, member *Member) {
	fmt.Fprintf(buf, "\t%s ", option.Name)
	for _, alias := range option.Aliases {
		fmt.Fprintf(buf, ", %s ", alias)
	}

	switch {
	case IsFlagType(member):
		buf.WriteString("[flag]")
	case IsSimpleType(member):
		fmt.Fprintf(buf, "[%s]", ValueTypeName(member))
	case IsArrayType(member):
		fmt.Fprintf(buf, "[array of %s]", ValueTypeName(member))
	}

	if option.Required {
		buf.WriteString(" REQUIRED ")
	}

	if IsEnumType(member) {
		fmt.Fprintf(buf, "\n\t\tAllowed values: %s", EnumConstants(member))
	}

	fmt.Fprintf(buf, "\n\t\t %s \n", option.Description)

	if len(option.Incompatible) > 0 {
		buf.WriteString("\n\t\t NOTE: Cannot be used together with: ")
		for _, name := range option.Incompatible {
			fmt.Fprintf(buf, "%s ", name)
		}
	}

	if len(option.MustUseWith) > 0 {
		buf.WriteString("\n\t\t NOTE: Used together with: ")
		for _, name := range option.MustUseWith {
			fmt.Fprintf(buf, "%s ", name)
		}
	}

	writeConstraint(buf, member)
	buf.WriteString("\n")
}

func writeArgument(buf *bytes.Buffer, argument Argument, member *Member) {
	fmt.Fprintf(buf, "\t%s ", argument.DisplayName())

	if IsArrayType(member) {
		fmt.Fprintf(buf, "[array of %s] ", ValueTypeName(member))
		if argument.Size > 0 {
			fmt.Fprintf(buf, "(index: %d, size: %d)", argument.Index, argument.Size)
		} else {
			fmt.Fprintf(buf, "(all from index %d)", argument.Index)
		}
	} else {
		fmt.Fprintf(buf, "[%s] ", ValueTypeName(member))
		fmt.Fprintf(buf, "(index: %d)", argument.Index)
	}

	if argument.Required {
		buf.WriteString(" REQUIRED ")
	}

	fmt.Fprintf(buf, "\n\t\t %s \n", argument.Description)

	writeConstraint(buf, member)
	buf.WriteString("\n")
}

func writeConstraint(buf *bytes.Buffer, member *Member) {
	constraint, ok := MemberConstraint(member)
	if !ok {
		return
	}

	buf.WriteString("\t\tconstraints: ")
	buf.WriteString(constraint.String())
	buf.WriteString("\n")
}
