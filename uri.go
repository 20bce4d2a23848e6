package jsonschema

import (
	"net/url"
	"strings"
)

// SplitFragment separates a URI reference into its base (scheme, authority,
// path, query) and fragment parts. The returned base never contains "#".
func SplitFragment(ref string) (base, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// JoinURI resolves ref against base the way a schema's $id/$ref resolution
// must: relative references are resolved relative to the current base URI,
// absolute references pass through unchanged.
func JoinURI(base, ref string) (string, error) {
	if ref == "" {
		return base, nil
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if refURL.IsAbs() {
		return ref, nil
	}
	if base == "" {
		return ref, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// CanonicalURI strips the fragment, giving the key used to index the
// registry map; no other normalization is applied.
func CanonicalURI(uri string) string {
	base, _ := SplitFragment(uri)
	return base
}

// IsPointerFragment reports whether a fragment is a JSON Pointer (begins
// with "/" or is empty) as opposed to a plain-name anchor.
func IsPointerFragment(fragment string) bool {
	return fragment == "" || strings.HasPrefix(fragment, "/")
}
