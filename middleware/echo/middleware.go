// Package echomw wires schema validation into an echo.Echo request
// pipeline: a middleware that decodes and validates the request body
// against a compiled schema before the handler runs.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	jsonschema "github.com/dazerdude/json-everything"
	"github.com/dazerdude/json-everything/middleware"
)

// ValidateJSON decodes the request body against reg/s, stores the decoded
// instance in the request context on success, or responds 400 with an
// Issues payload when decoding or validation fails.
func ValidateJSON(reg *jsonschema.Registry, s *jsonschema.Schema, opts jsonschema.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			instance, err := jsonschema.DecodeAny(jsonschema.JSONReader(c.Request().Body), opts.Decode)
			if err != nil {
				if iss, ok := jsonschema.AsIssues(err); ok {
					return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(iss))
				}
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			ok, issues := jsonschema.Validate(reg, s, instance, opts)
			if !ok {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(issues))
			}
			ctx := middleware.ContextWithInstance(c.Request().Context(), instance)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetInstance fetches the validated instance ValidateJSON attached to the
// request context.
func GetInstance(c echo.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request().Context())
}
