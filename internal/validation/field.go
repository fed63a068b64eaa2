// Package validation описывает поля и схемы запросов API и проверяет сырые JSON-данные по ним.
package validation

import (
	"encoding/json"
)

// Kind вид поля, определяет проверку формата.
type Kind int

const (
	KindString Kind = iota
	KindArguments
	KindEmail
	KindPhone
	KindDate
	KindBirthDate
	KindGender
	KindClientIDs
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindArguments:
		return "arguments"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindDate:
		return "date"
	case KindBirthDate:
		return "birthdate"
	case KindGender:
		return "gender"
	case KindClientIDs:
		return "client_ids"
	default:
		return "unknown"
	}
}

// Field описание одного поля схемы: имя, вид и флаги. Проверка не хранит состояния между запросами.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool
}

// Outcome результат проверки одного поля.
// Filled означает, что значение передано непустым и прошло проверку формата.
type Outcome struct {
	Valid   bool
	Filled  bool
	Message string
	Value   any
}

// Validate проверяет сырое значение: обязательность, затем пустоту, затем формат.
// Отсутствующее значение передаётся как nil.
func (f Field) Validate(raw any) Outcome {
	if raw == nil && f.Required {
		return f.fail("is required")
	}
	if isEmpty(f.Kind, raw) {
		if !f.Nullable {
			return f.fail("must not be empty")
		}
		return Outcome{Valid: true}
	}
	v, err := check(f.Kind, raw)
	if err != nil {
		return f.fail(err.Error())
	}
	return Outcome{Valid: true, Filled: true, Value: v}
}

func (f Field) fail(reason string) Outcome {
	return Outcome{Message: f.Name + " " + reason}
}

// isEmpty повторяет «ложность» значения: nil, пустая строка, пустые коллекции, false и ноль.
// Для пола ноль допустимое значение, а не пустота.
func isEmpty(kind Kind, raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case bool:
		return kind != KindGender && !v
	case json.Number:
		if kind == KindGender {
			return false
		}
		f, err := v.Float64()
		return err == nil && f == 0
	case int:
		return kind != KindGender && v == 0
	case int64:
		return kind != KindGender && v == 0
	case float64:
		return kind != KindGender && v == 0
	}
	return false
}
