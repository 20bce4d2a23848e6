// Package cli implements the jsonschema-validate command line tool: a
// thin cobra wrapper around Compile/Register and Validate.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jsonschema "github.com/dazerdude/json-everything"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	Draft          string
	RequireFormat  bool
	OutputFormat   string
	JSONOutput     bool
	LogIndentLevel int
}

// NewRootCmd builds the jsonschema-validate command tree.
func NewRootCmd() *cobra.Command {
	opts := &RootOptions{Draft: "2020-12", OutputFormat: "basic"}

	cmd := &cobra.Command{
		Use:           "jsonschema-validate",
		Short:         "Compile and validate against JSON Schema documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.Draft, "draft", opts.Draft, "Default dialect when a schema has no $schema (draft6, draft7, 2019-09, 2020-12)")
	cmd.PersistentFlags().BoolVar(&opts.RequireFormat, "require-format", opts.RequireFormat, "Assert the format keyword even where it is annotation-only by default")
	cmd.PersistentFlags().StringVar(&opts.OutputFormat, "output-format", opts.OutputFormat, "Result detail: flag, basic, detailed, or verbose")
	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit machine-readable JSON output")
	cmd.PersistentFlags().IntVar(&opts.LogIndentLevel, "log-indent-level", 2, "Spaces per nesting level when --output-format=detailed or verbose")

	cmd.AddCommand(
		newValidateCmd(opts),
		newCompileCmd(opts),
	)
	return cmd
}

func (o *RootOptions) toOptions() (jsonschema.Options, error) {
	d, ok := parseDraft(o.Draft)
	if !ok {
		return jsonschema.Options{}, fmt.Errorf("unknown --draft %q", o.Draft)
	}
	of, ok := parseOutputFormat(o.OutputFormat)
	if !ok {
		return jsonschema.Options{}, fmt.Errorf("unknown --output-format %q", o.OutputFormat)
	}
	return jsonschema.Options{
		DefaultDraft:            d,
		OutputFormat:            of,
		RequireFormatValidation: o.RequireFormat,
		Decode:                  jsonschema.DecodeOptions{OnDuplicateKey: jsonschema.DuplicateKeyError},
		LogIndentLevel:          o.LogIndentLevel,
	}, nil
}

func parseDraft(s string) (jsonschema.Draft, bool) {
	switch s {
	case "draft6", "6":
		return jsonschema.Draft6, true
	case "draft7", "7":
		return jsonschema.Draft7, true
	case "2019-09", "2019":
		return jsonschema.Draft2019, true
	case "2020-12", "2020":
		return jsonschema.Draft2020, true
	default:
		return jsonschema.DraftUnknown, false
	}
}

func parseOutputFormat(s string) (jsonschema.OutputFormat, bool) {
	switch s {
	case "flag":
		return jsonschema.OutputFlag, true
	case "basic":
		return jsonschema.OutputBasic, true
	case "detailed":
		return jsonschema.OutputDetailed, true
	case "verbose":
		return jsonschema.OutputVerbose, true
	default:
		return jsonschema.OutputFlag, false
	}
}
