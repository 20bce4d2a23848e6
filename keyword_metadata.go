package jsonschema

// Annotation-only keywords: they never fail evaluation, they just record
// their value on the enclosing frame so output formatters and
// unevaluatedProperties/Items (which only care about evaluatedProps/Items,
// not these) can surface them.

type annotationOnlyKeyword struct {
	name  string
	value any
}

func (k *annotationOnlyKeyword) Name() string { return k.name }
func (k *annotationOnlyKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	frame.setValue(k.name, k.value)
	return pass()
}

func metadataFactory(name string) keywordFactory {
	return func(bc *buildCtx) (Keyword, error) {
		return &annotationOnlyKeyword{name: name, value: bc.raw}, nil
	}
}

func buildTitle(bc *buildCtx) (Keyword, error)       { return metadataFactory("title")(bc) }
func buildDescription(bc *buildCtx) (Keyword, error) { return metadataFactory("description")(bc) }
func buildDefault(bc *buildCtx) (Keyword, error)     { return metadataFactory("default")(bc) }
func buildExamples(bc *buildCtx) (Keyword, error)    { return metadataFactory("examples")(bc) }
func buildDeprecated(bc *buildCtx) (Keyword, error)  { return metadataFactory("deprecated")(bc) }
func buildReadOnly(bc *buildCtx) (Keyword, error)    { return metadataFactory("readOnly")(bc) }
func buildWriteOnly(bc *buildCtx) (Keyword, error)   { return metadataFactory("writeOnly")(bc) }
func buildComment(bc *buildCtx) (Keyword, error)     { return &noopKeyword{name: "$comment"}, nil }

// contentEncoding/contentMediaType/contentSchema are annotation-only too:
// they sit in the content vocabulary (see keywordTable), and validating the encoded
// content against contentSchema is explicitly an opt-in a consumer layers
// on top, not something the core evaluator asserts.
func buildContentEncoding(bc *buildCtx) (Keyword, error) {
	return metadataFactory("contentEncoding")(bc)
}
func buildContentMediaType(bc *buildCtx) (Keyword, error) {
	return metadataFactory("contentMediaType")(bc)
}
func buildContentSchema(bc *buildCtx) (Keyword, error) {
	sub, err := bc.compileChild(bc.raw, "contentSchema")
	if err != nil {
		return nil, err
	}
	return &contentSchemaKeyword{schema: sub}, nil
}

type contentSchemaKeyword struct{ schema *Schema }

func (k *contentSchemaKeyword) Name() string { return "contentSchema" }
func (k *contentSchemaKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	frame.setValue("contentSchema", k.schema.Location)
	return pass()
}
