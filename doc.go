// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argspec describes command-line options and positional arguments
// declaratively and renders usage text for them.
//
// A configuration struct declares its schema with argspec struct tags:
//
//	type Config struct {
//		Verbose bool     `argspec:"name:--verbose;aliases:-v;desc:verbose output;required:true"`
//		Level   int      `argspec:"desc:log level;min:0;max:5"`
//		Input   string   `argspec:"pos:0;name:input;desc:input file;min:1"`
//		Rest    []string `argspec:"pos:1;size:0;desc:remaining files"`
//	}
//
//	in, err := argspec.NewIntrospectorFromStruct(&Config{})
//	argspec.PrintHelp(in)
//
// Recognised tag keys, separated by ';' and written key:value:
//
//	kind          option or argument; pos alone implies argument
//	name          option name including prefix, or argument display name
//	aliases       option aliases (whitespace separated, shell quoting)
//	desc          description
//	desckey       description translation key, looked up in the Introspector's bundle
//	required      true or false
//	incompatible  options which cannot be used together with this one
//	with          options which must be used together with this one
//	pos           zero-based argument index
//	size          number of values an array argument takes; 0 or less takes the rest
//	type          flag, scalar or array; overrides the classification of the Go type
//	enum          legal constants, overriding types.Enumerator
//	min, max      constraint bounds
//	allowed       constraint allowed values
//	ignorecase    allowed values compare case-insensitively
//	regexp        constraint pattern (cannot contain ';')
//	constrained   attach an empty constraint, displayed as "none"
//
// Options without a name are named by prefixing the converted field name
// ("--" and kebab case by default). Untagged struct fields are walked
// recursively and the options found inside are qualified with the converted
// path, so a Host field in a Server struct becomes --server.host.
// `argspec:"-"` skips a field.
//
// The same schema can be registered without struct tags:
//
//	verbose, _ := argspec.BindMember("verbose", &cfg.Verbose, nil)
//	in, err := argspec.NewIntrospector(
//		argspec.WithOption(argspec.Option{Name: "--verbose", Required: true}, verbose))
//
// Only the schema and its rendering are covered: parsing command-line tokens
// and validating values against constraints are left to the caller.
package argspec
