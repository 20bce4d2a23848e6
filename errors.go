package jsonschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeTooSmall             = "too_small"
	CodeTooBig               = "too_big"
	CodeTooShort             = "too_short"
	CodeTooLong              = "too_long"
	CodePattern              = "pattern"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidFormat        = "invalid_format"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeUnionAmbiguous       = "union_ambiguous"
	CodeParseError           = "parse_error"
	CodeOverflow             = "overflow"
	CodeTruncated            = "truncated"
	// Domain/Context passes (business semantics)
	CodeDomainRange        = "domain_range"
	CodeAggregateViolation = "aggregate_violation"
	CodeUniqueness         = "uniqueness"
	CodeBusinessRule       = "business_rule"
	CodeConflict           = "conflict"
	// Dependency temporary/unavailable errors (for mapping to 5xx at API layer)
	CodeDependencyUnavailable = "dependency_unavailable"

	// Reference resolution and compile-time codes.
	CodeUnresolvedRef  = "unresolved_ref"
	CodeCycle          = "reference_cycle"
	CodeUnsupportedRef = "unsupported_ref"
	CodeInvalidSchema  = "invalid_schema"
	CodeUnknownDraft   = "unknown_draft"

	// Keyword-evaluation codes (one per JSON Schema keyword family).
	CodeMultipleOf            = "multiple_of"
	CodeMinimum               = "minimum"
	CodeMaximum               = "maximum"
	CodeExclusiveMinimum      = "exclusive_minimum"
	CodeExclusiveMaximum      = "exclusive_maximum"
	CodeMinLength             = "min_length"
	CodeMaxLength             = "max_length"
	CodeMinItems              = "min_items"
	CodeMaxItems              = "max_items"
	CodeUniqueItems           = "unique_items"
	CodeMinContains           = "min_contains"
	CodeMaxContains           = "max_contains"
	CodeContains              = "contains"
	CodeMinProperties         = "min_properties"
	CodeMaxProperties         = "max_properties"
	CodeAdditionalProperties  = "additional_properties"
	CodeAdditionalItems       = "additional_items"
	CodeUnevaluatedProperties = "unevaluated_properties"
	CodeUnevaluatedItems      = "unevaluated_items"
	CodePropertyNames         = "property_names"
	CodeDependentRequired     = "dependent_required"
	CodeConst                 = "const"
	CodeNot                   = "not"
	CodeAllOf                 = "all_of"
	CodeAnyOf                 = "any_of"
	CodeOneOf                 = "one_of"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// InputFragment is an optional snippet of the offending input. Because it can
	// be expensive to produce, it is best-effort.
	InputFragment string
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42})
	// for i18n and observability.
	Params map[string]any
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// RenderIssues formats issues for display, honoring opts.OutputFormat and,
// under OutputDetailed and OutputVerbose, opts.LogIndentLevel. OutputFlag/OutputBasic render one
// "code at path: message" line per issue; OutputDetailed and OutputVerbose
// additionally indent and print each issue's Hint, with OutputVerbose also
// printing its Cause when set.
func RenderIssues(iss Issues, opts Options) string {
	if len(iss) == 0 {
		return ""
	}
	indent := opts.LogIndentLevel
	if indent <= 0 {
		indent = 2
	}
	pad := strings.Repeat(" ", indent)
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
		if opts.OutputFormat >= OutputDetailed && it.Hint != "" {
			fmt.Fprintf(b, "\n%shint: %s", pad, it.Hint)
		}
		if opts.OutputFormat >= OutputVerbose && it.Cause != nil {
			fmt.Fprintf(b, "\n%scause: %s", pad, it.Cause)
		}
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
