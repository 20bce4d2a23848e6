package jsonschema

import (
	"math/big"
	"regexp"
	"unicode/utf8"

	"github.com/dazerdude/json-everything/formats"
)

type typeKeyword struct{ types []string }

func (k *typeKeyword) Name() string { return "type" }
func (k *typeKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	got := TypeOf(instance)
	for _, t := range k.types {
		if t == got {
			return pass()
		}
		// "integer" is a refinement of "number": a schema declaring type
		// "number" also accepts values TypeOf reports as "integer".
		if t == "number" && got == "integer" {
			return pass()
		}
	}
	return failf(path, CodeInvalidType, "expected type %v, got %s", k.types, got)
}

func buildType(bc *buildCtx) (Keyword, error) {
	switch v := bc.raw.(type) {
	case string:
		return &typeKeyword{types: []string{v}}, nil
	case []any:
		return &typeKeyword{types: stringSliceFrom(v)}, nil
	}
	return &typeKeyword{}, nil
}

type enumKeyword struct{ values []any }

func (k *enumKeyword) Name() string { return "enum" }
func (k *enumKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	for _, v := range k.values {
		if Equal(instance, v) {
			return pass()
		}
	}
	return failf(path, CodeInvalidEnum, "value %v is not one of %v", instance, k.values)
}

func buildEnum(bc *buildCtx) (Keyword, error) {
	arr, _ := bc.raw.([]any)
	return &enumKeyword{values: arr}, nil
}

type constKeyword struct{ value any }

func (k *constKeyword) Name() string { return "const" }
func (k *constKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	if Equal(instance, k.value) {
		return pass()
	}
	return failf(path, CodeConst, "value %v does not equal const %v", instance, k.value)
}

func buildConst(bc *buildCtx) (Keyword, error) { return &constKeyword{value: bc.raw}, nil }

type multipleOfKeyword struct{ divisor any }

func (k *multipleOfKeyword) Name() string { return "multipleOf" }
func (k *multipleOfKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	if !isNumber(instance) {
		return pass()
	}
	iv, ok1 := toRat(instance)
	dv, ok2 := toRat(k.divisor)
	if !ok1 || !ok2 || dv.Sign() == 0 {
		return pass()
	}
	q := new(big.Rat).Quo(iv, dv)
	if q.IsInt() {
		return pass()
	}
	return failf(path, CodeMultipleOf, "value %v is not a multiple of %v", instance, k.divisor)
}

func buildMultipleOf(bc *buildCtx) (Keyword, error) { return &multipleOfKeyword{divisor: bc.raw}, nil }

type rangeKeyword struct {
	code      string
	limit     any
	exclusive bool
	min       bool
}

func (k *rangeKeyword) Name() string {
	if k.min {
		if k.exclusive {
			return "exclusiveMinimum"
		}
		return "minimum"
	}
	if k.exclusive {
		return "exclusiveMaximum"
	}
	return "maximum"
}

func (k *rangeKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	if !isNumber(instance) {
		return pass()
	}
	iv, ok1 := toRat(instance)
	lv, ok2 := toRat(k.limit)
	if !ok1 || !ok2 {
		return pass()
	}
	cmp := iv.Cmp(lv)
	var ok bool
	if k.min {
		if k.exclusive {
			ok = cmp > 0
		} else {
			ok = cmp >= 0
		}
	} else {
		if k.exclusive {
			ok = cmp < 0
		} else {
			ok = cmp <= 0
		}
	}
	if ok {
		return pass()
	}
	verb := "below"
	if !k.min {
		verb = "above"
	}
	return failf(path, k.code, "value %v is %s %s %v", instance, verb, k.Name(), k.limit)
}

func buildMinimum(bc *buildCtx) (Keyword, error) {
	return &rangeKeyword{code: CodeMinimum, limit: bc.raw, min: true}, nil
}
func buildMaximum(bc *buildCtx) (Keyword, error) {
	return &rangeKeyword{code: CodeMaximum, limit: bc.raw, min: false}, nil
}

// buildExclusiveMinimum/buildExclusiveMaximum treat the keyword value as
// numeric, as it is in every supported draft (draft6+). Draft 4-style boolean exclusiveMinimum paired
// with "minimum" is out of scope (draft4 is not a supported dialect here).
func buildExclusiveMinimum(bc *buildCtx) (Keyword, error) {
	return &rangeKeyword{code: CodeExclusiveMinimum, limit: bc.raw, min: true, exclusive: true}, nil
}
func buildExclusiveMaximum(bc *buildCtx) (Keyword, error) {
	return &rangeKeyword{code: CodeExclusiveMaximum, limit: bc.raw, min: false, exclusive: true}, nil
}

type lengthKeyword struct {
	max   bool
	limit int
}

func (k *lengthKeyword) Name() string {
	if k.max {
		return "maxLength"
	}
	return "minLength"
}
func (k *lengthKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	str, ok := instance.(string)
	if !ok {
		return pass()
	}
	n := utf8.RuneCountInString(str)
	if k.max {
		if n <= k.limit {
			return pass()
		}
		return failf(path, CodeTooLong, "string length %d exceeds maxLength %d", n, k.limit)
	}
	if n >= k.limit {
		return pass()
	}
	return failf(path, CodeTooShort, "string length %d is below minLength %d", n, k.limit)
}

func intFromAny(v any) int {
	f, _ := toFloat(v)
	return int(f)
}

func buildMinLength(bc *buildCtx) (Keyword, error) {
	return &lengthKeyword{limit: intFromAny(bc.raw)}, nil
}
func buildMaxLength(bc *buildCtx) (Keyword, error) {
	return &lengthKeyword{max: true, limit: intFromAny(bc.raw)}, nil
}

type patternKeyword struct {
	re  *regexp.Regexp
	src string
}

func (k *patternKeyword) Name() string { return "pattern" }
func (k *patternKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	str, ok := instance.(string)
	if !ok || k.re == nil {
		return pass()
	}
	if k.re.MatchString(str) {
		return pass()
	}
	return failf(path, CodePattern, "string does not match pattern %q", k.src)
}

func buildPattern(bc *buildCtx) (Keyword, error) {
	src, _ := bc.raw.(string)
	re, err := regexp.Compile(src)
	if err != nil {
		return &patternKeyword{src: src}, nil
	}
	return &patternKeyword{re: re, src: src}, nil
}

type formatKeyword struct {
	name    string
	assert  bool
}

func (k *formatKeyword) Name() string { return "format" }
func (k *formatKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	frame.setValue("format", k.name)
	if !k.assert && !ec.opts.RequireFormatValidation {
		return pass()
	}
	str, ok := instance.(string)
	if !ok {
		return pass()
	}
	v, ok := formats.Lookup(k.name)
	if !ok {
		return pass()
	}
	if v(str) {
		return pass()
	}
	return failf(path, CodeInvalidFormat, "string does not satisfy format %q", k.name)
}

func buildFormat(bc *buildCtx) (Keyword, error) {
	name, _ := bc.raw.(string)
	assert := bc.draft == Draft6 || bc.draft == Draft7 || bc.vocab["format"]
	return &formatKeyword{name: name, assert: assert}, nil
}
