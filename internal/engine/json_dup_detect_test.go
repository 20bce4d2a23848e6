package engine

import "testing"

func TestDetectJSONDuplicateKeysBytes_FindsDuplicate(t *testing.T) {
	issues, err := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), DupWarn, -1)
	if err != nil {
		t.Fatalf("DetectJSONDuplicateKeysBytes: %v", err)
	}
	if len(issues) != 1 || issues[0].Code != "duplicate_key" {
		t.Fatalf("got %v", issues)
	}
}

func TestDetectJSONDuplicateKeysBytes_IgnoreSkipsWork(t *testing.T) {
	issues, err := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), DupIgnore, -1)
	if err != nil {
		t.Fatalf("DetectJSONDuplicateKeysBytes: %v", err)
	}
	if issues != nil {
		t.Fatalf("expected no issues under DupIgnore, got %v", issues)
	}
}

func TestDetectJSONDuplicateKeysBytes_ErrorStopsAtFirst(t *testing.T) {
	issues, err := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2,"a":3}`), DupError, -1)
	if err != nil {
		t.Fatalf("DetectJSONDuplicateKeysBytes: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected DupError to stop at the first duplicate, got %v", issues)
	}
}

func TestDetectJSONDuplicateKeysBytes_NestedObjectsIndependent(t *testing.T) {
	issues, err := DetectJSONDuplicateKeysBytes([]byte(`{"a":{"x":1},"b":{"x":1}}`), DupWarn, -1)
	if err != nil {
		t.Fatalf("DetectJSONDuplicateKeysBytes: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no duplicates across sibling objects, got %v", issues)
	}
}
