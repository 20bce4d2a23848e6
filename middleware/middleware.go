// Package middleware holds the HTTP-framework-agnostic pieces shared by the
// echo and gin adapters: the context key for a request's validated
// instance, the default decode options for request bodies, and the JSON
// shape an Issues failure is reported in.
package middleware

import (
	"context"

	jsonschema "github.com/dazerdude/json-everything"
)

type ctxKeyInstance struct{}

// ContextWithInstance attaches a validated request instance to ctx.
func ContextWithInstance(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyInstance{}, v)
}

// InstanceFromContext retrieves the instance ContextWithInstance attached.
func InstanceFromContext(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(ctxKeyInstance{}).(any)
	return v, ok
}

// DefaultDecodeOptions is the recommended default for HTTP JSON request
// bodies: duplicate keys are rejected rather than silently taking the last
// value, the same policy jsonschema.DefaultOptions sets in Options.Decode.
func DefaultDecodeOptions() jsonschema.DecodeOptions {
	return jsonschema.DecodeOptions{OnDuplicateKey: jsonschema.DuplicateKeyError}
}

// ErrorPayload shapes Issues for a JSON error response body.
func ErrorPayload(issues jsonschema.Issues) map[string]any {
	return map[string]any{"issues": issues}
}
