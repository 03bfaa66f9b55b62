package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "tag" or "min").
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
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "parse_error":
			return "解析エラー"
		case "discriminator_missing":
			return "判別キーがありません"
		case "discriminator_unknown":
			return "未知のドキュメント型です"
		case "unsupported_kind":
			return "未対応のフィールド種別です"
		case "data_integrity":
			return "保存データが不整合です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "parse_error":
			return "parse error"
		case "discriminator_missing":
			return "discriminator missing"
		case "discriminator_unknown":
			return "unknown document type"
		case "unsupported_kind":
			return "unsupported field kind"
		case "data_integrity":
			return "stored data is inconsistent"
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
