// Package i18n provides localized messages for validation error codes.
package i18n

import (
	"github.com/AntonioAngelino/jsonmodels"
)

// Translator retrieves localized messages for validation error codes. params
// provides optional structured values from the originating error (for
// example, "minimum" or "pattern").
type Translator interface {
	Message(code string, params map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, params map[string]any) string {
	switch t.lang {
	case "ja":
		switch code {
		case jsonmodels.CodeInvalidType:
			return "型が不正です"
		case jsonmodels.CodeRequired:
			return "必須フィールドが不足しています"
		case jsonmodels.CodeTooSmall:
			return "最小値を下回っています"
		case jsonmodels.CodeTooBig:
			return "最大値を上回っています"
		case jsonmodels.CodeTooShort:
			return "短すぎます"
		case jsonmodels.CodeTooLong:
			return "長すぎます"
		case jsonmodels.CodePattern:
			return "パターンに一致しません"
		case jsonmodels.CodeInvalidEnum:
			return "許可された値ではありません"
		case jsonmodels.CodeInvalidFormat:
			return "書式が不正です"
		}
	default: // "en"
		switch code {
		case jsonmodels.CodeInvalidType:
			return "invalid type"
		case jsonmodels.CodeRequired:
			return "required field missing"
		case jsonmodels.CodeTooSmall:
			return "below the allowed minimum"
		case jsonmodels.CodeTooBig:
			return "above the allowed maximum"
		case jsonmodels.CodeTooShort:
			return "too short"
		case jsonmodels.CodeTooLong:
			return "too long"
		case jsonmodels.CodePattern:
			return "does not match the pattern"
		case jsonmodels.CodeInvalidEnum:
			return "not an allowed value"
		case jsonmodels.CodeInvalidFormat:
			return "invalid format"
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

// SetTranslator installs a custom Translator.
func SetTranslator(t Translator) {
	if t != nil {
		currentTranslator = t
	}
}

// Message resolves a code through the active Translator.
func Message(code string, params map[string]any) string {
	return currentTranslator.Message(code, params)
}

// Translate renders err through the active Translator when it carries a
// validation code; other errors fall back to their own message.
func Translate(err error) string {
	if err == nil {
		return ""
	}
	if ve, ok := jsonmodels.AsValidationError(err); ok {
		return currentTranslator.Message(ve.Code, ve.Params)
	}
	return err.Error()
}
