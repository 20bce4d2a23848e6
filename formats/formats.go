// Package formats holds the built-in "format" keyword validators and the
// registration hook third-party format plug-ins use. Formats are kept out
// of the core evaluator so a plug-in author can add or override one
// (RegisterFormat) without touching compiled-in keyword logic, the same
// separation santhosh-tekuri/jsonschema's formats subpackage draws between
// its core and its format validators.
package formats

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Validator reports whether a string instance satisfies a named format.
type Validator func(s string) bool

var (
	mu      sync.RWMutex
	formats = map[string]Validator{
		"date-time": isDateTime,
		"date":      isDate,
		"time":      isTime,
		"email":     isEmail,
		"hostname":  isHostname,
		"ipv4":      isIPv4,
		"ipv6":      isIPv6,
		"uri":       isURI,
		"uri-reference": isURIReference,
		"uuid":      isUUID,
		"regex":     isRegex,
	}
)

// RegisterFormat installs or overrides a format validator by name.
func RegisterFormat(name string, v Validator) {
	mu.Lock()
	defer mu.Unlock()
	formats[name] = v
}

// Lookup returns the validator registered for name, if any.
func Lookup(name string) (Validator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := formats[name]
	return v, ok
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(s string) bool {
	_, err := time.Parse("15:04:05Z07:00", s)
	if err == nil {
		return true
	}
	_, err = time.Parse("15:04:05", s)
	return err == nil
}

func isEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func isHostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
	}
	return hostnameRe.MatchString(s)
}

var hostnameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ":") == 0
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && strings.Contains(s, ":")
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func isURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func isUUID(s string) bool {
	return uuidRe.MatchString(s)
}

var uuidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func isRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
