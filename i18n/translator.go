package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		case "dependency_unavailable":
			return "依存先サービスが利用できません"
		case "multiple_of":
			return "multipleOfの倍数ではありません"
		case "minimum":
			return "minimumを下回っています"
		case "maximum":
			return "maximumを超えています"
		case "exclusive_minimum":
			return "exclusiveMinimumを満たしていません"
		case "exclusive_maximum":
			return "exclusiveMaximumを満たしていません"
		case "min_length":
			return "minLengthを下回っています"
		case "max_length":
			return "maxLengthを超えています"
		case "min_items":
			return "minItemsを下回っています"
		case "max_items":
			return "maxItemsを超えています"
		case "unique_items":
			return "要素が重複しています"
		case "min_contains":
			return "containsの一致数がminContainsを下回っています"
		case "max_contains":
			return "containsの一致数がmaxContainsを超えています"
		case "contains":
			return "containsに一致する要素がありません"
		case "min_properties":
			return "minPropertiesを下回っています"
		case "max_properties":
			return "maxPropertiesを超えています"
		case "additional_properties":
			return "許可されていない追加プロパティです"
		case "additional_items":
			return "許可されていない追加要素です"
		case "unevaluated_properties":
			return "評価されていないプロパティです"
		case "unevaluated_items":
			return "評価されていない要素です"
		case "property_names":
			return "プロパティ名が不正です"
		case "dependent_required":
			return "依存するプロパティが不足しています"
		case "const":
			return "const値と一致しません"
		case "not":
			return "notスキーマに一致してはいけません"
		case "all_of":
			return "allOfの一部のスキーマに一致しません"
		case "any_of":
			return "anyOfのいずれのスキーマにも一致しません"
		case "one_of":
			return "oneOfの一致数が1ではありません"
		case "invalid_enum":
			return "enumのいずれの値とも一致しません"
		case "invalid_format":
			return "formatを満たしていません"
		case "pattern":
			return "patternに一致しません"
		case "unresolved_ref":
			return "参照を解決できません"
		case "reference_cycle":
			return "参照が循環しています"
		case "unsupported_ref":
			return "サポートされていない参照です"
		case "invalid_schema":
			return "スキーマが不正です"
		case "unknown_draft":
			return "不明なJSON Schemaドラフトです"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		case "dependency_unavailable":
			return "dependency unavailable"
		case "multiple_of":
			return "not a multiple of multipleOf"
		case "minimum":
			return "below minimum"
		case "maximum":
			return "above maximum"
		case "exclusive_minimum":
			return "not strictly greater than exclusiveMinimum"
		case "exclusive_maximum":
			return "not strictly less than exclusiveMaximum"
		case "min_length":
			return "shorter than minLength"
		case "max_length":
			return "longer than maxLength"
		case "min_items":
			return "fewer items than minItems"
		case "max_items":
			return "more items than maxItems"
		case "unique_items":
			return "items are not unique"
		case "min_contains":
			return "fewer contains matches than minContains"
		case "max_contains":
			return "more contains matches than maxContains"
		case "contains":
			return "no item matches contains"
		case "min_properties":
			return "fewer properties than minProperties"
		case "max_properties":
			return "more properties than maxProperties"
		case "additional_properties":
			return "additional property not allowed"
		case "additional_items":
			return "additional item not allowed"
		case "unevaluated_properties":
			return "unevaluated property not allowed"
		case "unevaluated_items":
			return "unevaluated item not allowed"
		case "property_names":
			return "invalid property name"
		case "dependent_required":
			return "missing dependent required property"
		case "const":
			return "does not equal const value"
		case "not":
			return "matched a schema it must not match"
		case "all_of":
			return "did not match every schema in allOf"
		case "any_of":
			return "did not match any schema in anyOf"
		case "one_of":
			return "did not match exactly one schema in oneOf"
		case "invalid_enum":
			return "not one of the enumerated values"
		case "invalid_format":
			return "does not satisfy format"
		case "pattern":
			return "does not match pattern"
		case "unresolved_ref":
			return "could not resolve reference"
		case "reference_cycle":
			return "reference cycle detected"
		case "unsupported_ref":
			return "unsupported reference"
		case "invalid_schema":
			return "invalid schema"
		case "unknown_draft":
			return "unknown JSON Schema draft"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
