package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data carries the placeholders to embed in the message ("label", "limit",
// "valids", "expected", "detail").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		"invalid_type":   `"{label}" must be {expected}`,
		"required":       `"{label}" is required`,
		"unknown_key":    `"{label}" is not allowed`,
		"empty":          `"{label}" is not allowed to be empty`,
		"too_short":      `"{label}" length must be at least {limit} characters long`,
		"too_long":       `"{label}" length must be less than or equal to {limit} characters long`,
		"too_small":      `"{label}" must be larger than or equal to {limit}`,
		"too_big":        `"{label}" must be less than or equal to {limit}`,
		"not_greater":    `"{label}" must be greater than {limit}`,
		"not_integer":    `"{label}" must be an integer`,
		"invalid_enum":   `"{label}" must be one of [{valids}]`,
		"invalid_format": `"{label}" has an invalid format`,
		"iso_date":       `"{label}" must be a valid ISO 8601 date`,
		"eth_address":    `"{label}" needs to be a valid ethereum address`,
		"bytes32":        `"{label}" needs to be a valid bytes32 hexString`,
		"semver":         `"{label}" needs to be a valid semantic version`,
		"too_few_keys":   `"{label}" must have at least {limit} children`,
		"parse_error":    `"{label}" could not be parsed: {detail}`,
	},
	"ja": {
		"invalid_type":   `"{label}" の型が不正です ({expected} が必要です)`,
		"required":       `"{label}" は必須です`,
		"unknown_key":    `"{label}" は許可されていません`,
		"empty":          `"{label}" は空にできません`,
		"too_short":      `"{label}" は {limit} 文字以上必要です`,
		"too_long":       `"{label}" は {limit} 文字以下にしてください`,
		"too_small":      `"{label}" は {limit} 以上にしてください`,
		"too_big":        `"{label}" は {limit} 以下にしてください`,
		"not_greater":    `"{label}" は {limit} より大きくしてください`,
		"not_integer":    `"{label}" は整数にしてください`,
		"invalid_enum":   `"{label}" は [{valids}] のいずれかにしてください`,
		"invalid_format": `"{label}" の形式が不正です`,
		"iso_date":       `"{label}" は ISO 8601 形式の日付にしてください`,
		"eth_address":    `"{label}" は有効な Ethereum アドレスにしてください`,
		"bytes32":        `"{label}" は有効な bytes32 16進文字列にしてください`,
		"semver":         `"{label}" は有効なセマンティックバージョンにしてください`,
		"too_few_keys":   `"{label}" には {limit} 個以上の要素が必要です`,
		"parse_error":    `"{label}" を解析できません: {detail}`,
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalog[t.lang][code]
	if !ok {
		tmpl, ok = catalog["en"][code]
	}
	if !ok {
		if l := data["label"]; l != "" {
			return fmt.Sprintf("%q %s", l, code)
		}
		return code
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalog[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

// Render builds the placeholder set from a label and structured params and
// fetches the message for code.
func Render(code, label string, params map[string]any) string {
	data := make(map[string]string, len(params)+1)
	for k, v := range params {
		switch vv := v.(type) {
		case []string:
			data[k] = strings.Join(vv, ", ")
		default:
			data[k] = fmt.Sprint(vv)
		}
	}
	data["label"] = label
	return T(code, data)
}
