package jsonschema

// Draft identifies which JSON Schema dialect a schema document was authored
// against. Dialect affects which keywords apply and how a handful of them
// (notably the array-item and reference keywords) are shaped.
type Draft int

const (
	// DraftUnknown is the zero value; Compile rejects it unless a default
	// draft is supplied via Options.
	DraftUnknown Draft = iota
	Draft6
	Draft7
	Draft2019
	Draft2020
)

func (d Draft) String() string {
	switch d {
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft2019:
		return "2019-09"
	case Draft2020:
		return "2020-12"
	default:
		return "unknown"
	}
}

// draftByMetaSchema maps a $schema URI to the Draft it selects. Only the
// exact spellings listed here are recognized; trailing slashes are not
// normalized.
var draftByMetaSchema = map[string]Draft{
	"http://json-schema.org/draft-06/schema#":         Draft6,
	"https://json-schema.org/draft-06/schema#":        Draft6,
	"http://json-schema.org/draft-07/schema#":         Draft7,
	"https://json-schema.org/draft-07/schema#":        Draft7,
	"https://json-schema.org/draft/2019-09/schema":    Draft2019,
	"https://json-schema.org/draft/2019-09/schema#":   Draft2019,
	"https://json-schema.org/draft/2020-12/schema":    Draft2020,
	"https://json-schema.org/draft/2020-12/schema#":   Draft2020,
}

// DraftFromMetaSchema resolves a $schema URI to a Draft, reporting false
// when the URI is not recognized.
func DraftFromMetaSchema(uri string) (Draft, bool) {
	d, ok := draftByMetaSchema[uri]
	return d, ok
}

// VocabSet is the set of active vocabularies for a schema resource. Draft
// 2019-09 and 2020-12 schemas can narrow or extend the default set via
// $vocabulary; drafts 6 and 7 have no such mechanism and always run the
// full fixed keyword set for their dialect.
type VocabSet map[string]bool

// defaultVocabSet returns the vocabulary set implied by a draft alone (no
// explicit $vocabulary present).
func defaultVocabSet(d Draft) VocabSet {
	switch d {
	case Draft2020:
		return VocabSet{
			"core": true, "applicator": true, "validation": true,
			"meta-data": true, "format-annotation": true, "content": true, "unevaluated": true,
		}
	case Draft2019:
		return VocabSet{
			"core": true, "applicator": true, "validation": true,
			"meta-data": true, "format": true, "content": true, "unevaluated": true,
		}
	default:
		// draft6/draft7 have no vocabulary concept; treat every keyword of
		// their fixed set as always-on by returning a permissive set.
		return VocabSet{"core": true, "applicator": true, "validation": true, "meta-data": true, "format": true, "content": true, "unevaluated": true}
	}
}
