// Package ginmw wires schema validation into a gin.Engine request pipeline:
// a middleware that decodes and validates the request body against a
// compiled schema before the handler runs.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jsonschema "github.com/dazerdude/json-everything"
	"github.com/dazerdude/json-everything/middleware"
)

// ValidateJSON decodes the request body against reg/s, stores the decoded
// instance in the request context on success, or aborts with 400 and an
// Issues payload when decoding or validation fails.
func ValidateJSON(reg *jsonschema.Registry, s *jsonschema.Schema, opts jsonschema.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		instance, err := jsonschema.DecodeAny(jsonschema.JSONReader(c.Request.Body), opts.Decode)
		if err != nil {
			if iss, ok := jsonschema.AsIssues(err); ok {
				c.JSON(http.StatusBadRequest, middleware.ErrorPayload(iss))
				c.Abort()
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		ok, issues := jsonschema.Validate(reg, s, instance, opts)
		if !ok {
			c.JSON(http.StatusBadRequest, middleware.ErrorPayload(issues))
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithInstance(c.Request.Context(), instance))
		c.Next()
	}
}

// GetInstance fetches the validated instance ValidateJSON attached to the
// request context.
func GetInstance(c *gin.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request.Context())
}
