package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jsonschema "github.com/dazerdude/json-everything"
)

func newValidateCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema-file> <instance-file>",
		Short: "Validate an instance document against a schema document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts.toOptions()
			if err != nil {
				return err
			}
			schemaBytes, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading schema file: %w", err)
			}
			instanceBytes, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading instance file: %w", err)
			}

			reg := jsonschema.NewRegistry()
			s, err := reg.Register("file://"+args[0], schemaBytes, o)
			if err != nil {
				return fmt.Errorf("compiling schema: %w", err)
			}

			instance, err := decodeInstance(instanceBytes, o.Decode)
			if err != nil {
				return fmt.Errorf("decoding instance: %w", err)
			}

			ok, issues := jsonschema.Validate(reg, s, instance, o)
			return reportResult(cmd, opts, o, ok, issues)
		},
	}
	return cmd
}

func newCompileCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <schema-file>",
		Short: "Compile a schema document and report any compile-time errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts.toOptions()
			if err != nil {
				return err
			}
			schemaBytes, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading schema file: %w", err)
			}
			reg := jsonschema.NewRegistry()
			s, err := reg.Register("file://"+args[0], schemaBytes, o)
			if err != nil {
				return fmt.Errorf("compiling schema: %w", err)
			}
			if opts.JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(map[string]any{"ok": true, "draft": s.Draft.String()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: compiled as %s\n", s.Draft.String())
			return nil
		},
	}
	return cmd
}

func decodeInstance(data []byte, opt jsonschema.DecodeOptions) (any, error) {
	return jsonschema.DecodeAny(jsonschema.JSONBytes(data), opt)
}

func reportResult(cmd *cobra.Command, opts *RootOptions, o jsonschema.Options, ok bool, issues jsonschema.Issues) error {
	if opts.JSONOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(map[string]any{"valid": ok, "issues": issues}); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		fmt.Fprintln(cmd.OutOrStdout(), jsonschema.RenderIssues(issues, o))
	}
	if !ok {
		return errInvalid
	}
	return nil
}

var errInvalid = fmt.Errorf("instance failed validation")
