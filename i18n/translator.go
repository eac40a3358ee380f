package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_a_union_type":
			return "ユニオン型が必要です"
		case "unsupported_nested_type":
			return "サポートされていないネスト型です"
		case "duplicate_declared_name":
			return "宣言名が重複しています"
		case "duplicate_member_name":
			return "メンバー名が重複しています"
		case "invalid_wire_value":
			return "ワイヤ値が不正です"
		case "internal_name_mismatch":
			return "名前がマーシャリング表にありません"
		}
	default: // "en"
		switch code {
		case "not_a_union_type":
			return "union request requires a union type"
		case "unsupported_nested_type":
			return "unsupported nested type"
		case "duplicate_declared_name":
			return "declared name appears more than once"
		case "duplicate_member_name":
			return "member name appears more than once"
		case "invalid_wire_value":
			return "invalid wire value"
		case "internal_name_mismatch":
			return "name missing from marshalling tables"
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
