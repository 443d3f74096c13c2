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
		case "missing_required":
			return "必須プロパティが不足しています"
		case "duplicate_field":
			return "キーが重複しています"
		case "type_mismatch":
			return "どの候補型にも一致しません"
		case "unknown_discriminant":
			return "未知の型タグです"
		case "malformed_scalar":
			return "スカラー値の形式が不正です"
		case "unknown_supertype":
			return "未定義の親型です"
		case "kind_mismatch":
			return "プロパティ種別が一致しません"
		case "unknown_value_type":
			return "未知の値型です"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "missing_required":
			return "required property missing"
		case "duplicate_field":
			return "duplicate field"
		case "type_mismatch":
			return "no candidate type matched"
		case "unknown_discriminant":
			return "unknown type tag"
		case "malformed_scalar":
			return "malformed scalar value"
		case "unknown_supertype":
			return "supertype is not defined"
		case "kind_mismatch":
			return "property kind does not match"
		case "unknown_value_type":
			return "unknown value type"
		case "parse_error":
			return "parse error"
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
