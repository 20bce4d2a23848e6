package middleware

import (
	"context"
	"testing"

	jsonschema "github.com/dazerdude/json-everything"
)

func TestContextWithInstance_RoundTrip(t *testing.T) {
	ctx := ContextWithInstance(context.Background(), map[string]any{"a": 1})
	got, ok := InstanceFromContext(ctx)
	if !ok {
		t.Fatalf("expected an instance to be present")
	}
	m, ok := got.(map[string]any)
	if !ok || m["a"] != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestInstanceFromContext_Absent(t *testing.T) {
	if _, ok := InstanceFromContext(context.Background()); ok {
		t.Fatalf("expected no instance on a bare context")
	}
}

func TestDefaultDecodeOptions_RejectsDuplicateKeys(t *testing.T) {
	if DefaultDecodeOptions().OnDuplicateKey != jsonschema.DuplicateKeyError {
		t.Fatalf("expected the default HTTP decode policy to reject duplicate keys")
	}
}

func TestErrorPayload_WrapsIssues(t *testing.T) {
	iss := jsonschema.Issues{{Path: "/name", Code: jsonschema.CodeRequired, Message: "missing"}}
	payload := ErrorPayload(iss)
	got, ok := payload["issues"].(jsonschema.Issues)
	if !ok || len(got) != 1 {
		t.Fatalf("got %v", payload)
	}
}
