package echomw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	jsonschema "github.com/dazerdude/json-everything"
)

func personSchema(t *testing.T) (*jsonschema.Registry, *jsonschema.Schema) {
	t.Helper()
	reg := jsonschema.NewRegistry()
	s := reg.MustRegister("https://example.com/person.json", map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
		},
	}, jsonschema.DefaultOptions())
	return reg, s
}

func TestValidateJSON_PassesValidInstanceThrough(t *testing.T) {
	reg, s := personSchema(t)
	e := echo.New()
	e.POST("/people", ValidateJSON(reg, s, jsonschema.DefaultOptions())(func(c echo.Context) error {
		instance, ok := GetInstance(c)
		if !ok {
			t.Fatalf("expected the validated instance to be attached to the request context")
		}
		m := instance.(map[string]any)
		return c.JSON(http.StatusOK, map[string]any{"got": m["name"]})
	}))

	req := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestValidateJSON_RejectsInvalidInstance(t *testing.T) {
	reg, s := personSchema(t)
	e := echo.New()
	called := false
	e.POST("/people", ValidateJSON(reg, s, jsonschema.DefaultOptions())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if called {
		t.Fatalf("expected the handler not to run for a failing instance")
	}
	if !strings.Contains(rec.Body.String(), "issues") {
		t.Fatalf("expected the response body to carry an issues payload, got %s", rec.Body.String())
	}
}

func TestValidateJSON_RejectsMalformedJSON(t *testing.T) {
	reg, s := personSchema(t)
	e := echo.New()
	e.POST("/people", ValidateJSON(reg, s, jsonschema.DefaultOptions())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
