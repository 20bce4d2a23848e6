package jsonschema

// keywordTable is the complete keyword catalogue: for each recognized
// keyword name it records the factory that compiles it, the priority that
// determines its position in a schema's sorted Keywords slice (lower runs
// first), which vocabulary gates it under 2019-09/2020-12 (empty string
// means always active), and which drafts it applies to at all (nil means
// every supported draft).
//
// Priority bands, low to high:
//
//	 0  identity/metadata keywords - compile-time or pure annotations, order
//	    among themselves never matters.
//	10  plain assertions that only look at the instance value.
//	20  subschema-applying keywords that feed annotations into this frame
//	    ($ref, $dynamicRef, allOf/anyOf/oneOf/not, if/then/else,
//	    dependentSchemas).
//	30  per-key/per-item keywords that produce evaluatedProps/evaluatedItems
//	    annotations (properties, patternProperties, propertyNames, items,
//	    prefixItems, contains).
//	40  "additional" keywords, which read the *sibling* keywords (not the
//	    frame) to find uncovered keys/items.
//	90  unevaluated keywords, which must run after every other annotation
//	    producer in this schema object has already populated the frame.
var keywordTable map[string]keywordSpec

func init() {
	keywordTable = map[string]keywordSpec{
		// --- identity / structural, priority 0 ---
		"$id":            {factory: buildID, priority: 0},
		"$anchor":        {factory: buildAnchor, priority: 0, drafts: []Draft{Draft2019, Draft2020}},
		"$dynamicAnchor": {factory: buildDynamicAnchor, priority: 0, drafts: []Draft{Draft2020}},
		"$schema":        {factory: buildSchemaKeyword, priority: 0},
		"$vocabulary":    {factory: buildVocabulary, priority: 0, drafts: []Draft{Draft2019, Draft2020}},
		"$defs":          {factory: buildDefs, priority: 0, drafts: []Draft{Draft2019, Draft2020}},
		"definitions":    {factory: buildDefinitions, priority: 0, drafts: []Draft{Draft6, Draft7}},

		// --- metadata / annotation-only, priority 0 ---
		"title":            {factory: buildTitle, priority: 0, vocabulary: "meta-data"},
		"description":      {factory: buildDescription, priority: 0, vocabulary: "meta-data"},
		"default":          {factory: buildDefault, priority: 0, vocabulary: "meta-data"},
		"examples":         {factory: buildExamples, priority: 0, vocabulary: "meta-data", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"deprecated":       {factory: buildDeprecated, priority: 0, vocabulary: "meta-data", drafts: []Draft{Draft2019, Draft2020}},
		"readOnly":         {factory: buildReadOnly, priority: 0, vocabulary: "meta-data"},
		"writeOnly":        {factory: buildWriteOnly, priority: 0, vocabulary: "meta-data", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"$comment":         {factory: buildComment, priority: 0, drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"contentEncoding":  {factory: buildContentEncoding, priority: 0, vocabulary: "content", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"contentMediaType": {factory: buildContentMediaType, priority: 0, vocabulary: "content", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"contentSchema":    {factory: buildContentSchema, priority: 0, vocabulary: "content", drafts: []Draft{Draft2019, Draft2020}},

		// --- plain assertions, priority 10 ---
		"type":              {factory: buildType, priority: 10, vocabulary: "validation"},
		"enum":              {factory: buildEnum, priority: 10, vocabulary: "validation"},
		"const":             {factory: buildConst, priority: 10, vocabulary: "validation", drafts: []Draft{Draft6, Draft7, Draft2019, Draft2020}},
		"multipleOf":        {factory: buildMultipleOf, priority: 10, vocabulary: "validation"},
		"minimum":           {factory: buildMinimum, priority: 10, vocabulary: "validation"},
		"maximum":           {factory: buildMaximum, priority: 10, vocabulary: "validation"},
		"exclusiveMinimum":  {factory: buildExclusiveMinimum, priority: 10, vocabulary: "validation", drafts: []Draft{Draft6, Draft7, Draft2019, Draft2020}},
		"exclusiveMaximum":  {factory: buildExclusiveMaximum, priority: 10, vocabulary: "validation", drafts: []Draft{Draft6, Draft7, Draft2019, Draft2020}},
		"minLength":         {factory: buildMinLength, priority: 10, vocabulary: "validation"},
		"maxLength":         {factory: buildMaxLength, priority: 10, vocabulary: "validation"},
		"pattern":           {factory: buildPattern, priority: 10, vocabulary: "validation"},
		"format":            {factory: buildFormat, priority: 10},
		"required":          {factory: buildRequired, priority: 10, vocabulary: "validation"},
		"minProperties":     {factory: buildMinProperties, priority: 10, vocabulary: "validation"},
		"maxProperties":     {factory: buildMaxProperties, priority: 10, vocabulary: "validation"},
		"dependentRequired": {factory: buildDependentRequired, priority: 10, vocabulary: "validation", drafts: []Draft{Draft2019, Draft2020}},
		"minItems":          {factory: buildMinItems, priority: 10, vocabulary: "validation"},
		"maxItems":          {factory: buildMaxItems, priority: 10, vocabulary: "validation"},
		"uniqueItems":       {factory: buildUniqueItems, priority: 10, vocabulary: "validation"},
		"minContains":       {factory: buildMinContains, priority: 10, vocabulary: "validation", drafts: []Draft{Draft2019, Draft2020}},
		"maxContains":       {factory: buildMaxContains, priority: 10, vocabulary: "validation", drafts: []Draft{Draft2019, Draft2020}},

		// --- subschema-applying, feed annotations up, priority 20 ---
		"$ref":             {factory: buildRef, priority: 20},
		"$dynamicRef":      {factory: buildDynamicRef, priority: 20, drafts: []Draft{Draft2020}},
		"$recursiveRef":    {factory: buildRecursiveRef, priority: 20, drafts: []Draft{Draft2019}},
		"$recursiveAnchor": {factory: buildRecursiveAnchor, priority: 0, drafts: []Draft{Draft2019}},
		"allOf":            {factory: buildAllOf, priority: 20, vocabulary: "applicator"},
		"anyOf":            {factory: buildAnyOf, priority: 20, vocabulary: "applicator"},
		"oneOf":            {factory: buildOneOf, priority: 20, vocabulary: "applicator"},
		"not":              {factory: buildNot, priority: 20, vocabulary: "applicator"},
		"if":               {factory: buildIf, priority: 20, vocabulary: "applicator", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"then":             {factory: buildThen, priority: 20, vocabulary: "applicator", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"else":             {factory: buildElse, priority: 20, vocabulary: "applicator", drafts: []Draft{Draft7, Draft2019, Draft2020}},
		"dependentSchemas": {factory: buildDependentSchemas, priority: 20, vocabulary: "applicator", drafts: []Draft{Draft2019, Draft2020}},
		"dependencies":     {factory: buildDependencies, priority: 20, drafts: []Draft{Draft6, Draft7}},

		// --- per-key/per-item annotation producers, priority 30 ---
		"properties":        {factory: buildProperties, priority: 30, vocabulary: "applicator"},
		"patternProperties": {factory: buildPatternProperties, priority: 30, vocabulary: "applicator"},
		"propertyNames":     {factory: buildPropertyNames, priority: 30, vocabulary: "applicator", drafts: []Draft{Draft6, Draft7, Draft2019, Draft2020}},
		"items":             {factory: buildItems, priority: 30, vocabulary: "applicator"},
		"prefixItems":       {factory: buildPrefixItems, priority: 30, vocabulary: "applicator", drafts: []Draft{Draft2020}},
		"contains":          {factory: buildContains, priority: 30, vocabulary: "applicator", drafts: []Draft{Draft6, Draft7, Draft2019, Draft2020}},

		// --- "additional" keywords, read siblings not frame, priority 40 ---
		"additionalProperties": {factory: buildAdditionalProperties, priority: 40, vocabulary: "applicator"},
		"additionalItems":      {factory: buildAdditionalItems, priority: 40, vocabulary: "applicator", drafts: []Draft{Draft6, Draft7, Draft2019}},

		// --- unevaluated, must run after everything else, priority 90 ---
		"unevaluatedProperties": {factory: buildUnevaluatedProperties, priority: 90, vocabulary: "unevaluated", drafts: []Draft{Draft2019, Draft2020}},
		"unevaluatedItems":      {factory: buildUnevaluatedItems, priority: 90, vocabulary: "unevaluated", drafts: []Draft{Draft2019, Draft2020}},
	}
}
