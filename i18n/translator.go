package i18n

// Translator retrieves localized hints for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "param").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "format_error":
			return "値の書式が不正です"
		case "parse_error":
			return "解析エラー"
		case "invalid_type":
			return "型が不正です"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "invalid_enum":
			return "許可された値のいずれでもありません"
		case "invalid_datetime":
			return "日時の書式が不正です"
		case "length_mismatch":
			return "リスト長が一致しません"
		case "incompatible_value":
			return "両立しない値です"
		case "required":
			return "必須パラメータが不足しています"
		case "missing_block":
			return "必須ブロックが不足しています"
		case "unknown_param":
			return "未知のパラメータです"
		case "unknown_schema":
			return "未知のスキーマです"
		case "duplicate_registration":
			return "登録が重複しています"
		}
	default: // "en"
		switch code {
		case "format_error":
			return "malformed value"
		case "parse_error":
			return "parse error"
		case "invalid_type":
			return "invalid type"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "invalid_enum":
			return "not one of the allowed values"
		case "invalid_datetime":
			return "invalid datetime format"
		case "length_mismatch":
			return "list length mismatch"
		case "incompatible_value":
			return "incompatible values"
		case "required":
			return "required parameter is unset"
		case "missing_block":
			return "required block is missing"
		case "unknown_param":
			return "unknown parameter"
		case "unknown_schema":
			return "unknown schema"
		case "duplicate_registration":
			return "duplicate registration"
		}
	}
	return code
}

var current Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in dictionary. Supported: "en", "ja".
func SetLanguage(lang string) { current = dictTranslator{lang: lang} }

// SetTranslator installs a custom Translator.
func SetTranslator(t Translator) {
	if t != nil {
		current = t
	}
}

// T resolves a hint for the given code via the current Translator.
func T(code string, data map[string]string) string { return current.Message(code, data) }
