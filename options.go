package jsonschema

// DuplicateKeyPolicy controls how a decoder reacts to a repeated object key
// within a single JSON object.
type DuplicateKeyPolicy int

const (
	DuplicateKeyError DuplicateKeyPolicy = iota
	DuplicateKeyWarn
	DuplicateKeyIgnore
)

// DecodeOptions governs the hardening applied while decoding a document
// from a Source (see DecodeAny).
type DecodeOptions struct {
	OnDuplicateKey DuplicateKeyPolicy
	MaxDepth       int   // 0 disables the check
	MaxBytes       int64 // 0 disables the check
}

// OutputFormat selects how much detail Validate reports, mirroring the
// four standard JSON Schema output formats.
type OutputFormat int

const (
	// OutputFlag reports only a boolean valid/invalid and enables
	// short-circuit evaluation (the only mode in which short-circuiting is
	// observable per the evaluation algorithm).
	OutputFlag OutputFormat = iota
	// OutputBasic reports a flat list of Issues.
	OutputBasic
	// OutputDetailed reports the same flat Issues as OutputBasic, which
	// RenderIssues prints with each Issue's Hint indented per
	// Options.LogIndentLevel; this validator does not expose a separate
	// keyword-location tree type.
	OutputDetailed
	// OutputVerbose reports everything OutputDetailed does plus each Issue's
	// Cause, indented per Options.LogIndentLevel - intended for
	// interactive debugging rather than machine consumption.
	OutputVerbose
)

// Options configures compilation and evaluation.
type Options struct {
	// DefaultDraft is used when a schema carries no $schema keyword.
	DefaultDraft Draft
	// DefaultBaseURI is carried on Options but is not read by Register,
	// Compile or Validate: relative $id values resolve against the URI
	// passed to Register or Compile.
	DefaultBaseURI string
	// OutputFormat controls Validate's result granularity and whether
	// short-circuiting is permitted.
	OutputFormat OutputFormat
	// RequireFormatValidation forces format assertions to behave as
	// validation keywords even under drafts/vocabularies where format is
	// annotation-only by default.
	RequireFormatValidation bool
	// MaxDepth/MaxBytes/OnDuplicateKey harden decoding of instances through
	// DecodeAny. Register and Compile decode schema documents without
	// these checks.
	Decode DecodeOptions
	// LogIndentLevel sets the number of spaces used per nesting level when
	// rendering Issues under OutputDetailed and OutputVerbose. Ignored by
	// OutputFlag and OutputBasic. Zero falls back to 2 spaces (see RenderIssues).
	LogIndentLevel int
}

// DefaultOptions returns the validator's default configuration: 2020-12,
// basic output, duplicate keys rejected.
func DefaultOptions() Options {
	return Options{
		DefaultDraft: Draft2020,
		OutputFormat: OutputBasic,
		Decode:       DecodeOptions{OnDuplicateKey: DuplicateKeyError},
	}
}
