package parse

import "github.com/google/shlex"

// Split splits a list-valued tag entry on whitespace. Shell-style quoting keeps
// values containing spaces together.
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
