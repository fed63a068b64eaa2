package validation

import (
	"fmt"
	"time"

	"scoringAPI/internal/domain"
)

// Rule межполевое правило схемы, вызывается только когда все поля валидны.
type Rule func(r *Result) bool

// Schema упорядоченный набор полей и необязательное межполевое правило.
type Schema struct {
	Name        string
	Fields      []Field
	Rule        Rule
	RuleMessage string
}

// FieldError ошибка валидации схемы. Field пуст, если не выполнено межполевое правило.
type FieldError struct {
	Schema  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Schema, e.Message)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, domain.ErrInvalidRequest).
func (e *FieldError) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Result исход проверки схемы. Создаётся на каждый запрос заново.
type Result struct {
	Outcomes map[string]Outcome
	err      error
}

// Validate проверяет все поля по порядку. Отсутствующий ключ считается nil.
// Ошибкой результата становится первое невалидное поле, затем межполевое правило.
func (s Schema) Validate(data map[string]any) *Result {
	r := &Result{Outcomes: make(map[string]Outcome, len(s.Fields))}
	for _, f := range s.Fields {
		o := f.Validate(data[f.Name])
		r.Outcomes[f.Name] = o
		if !o.Valid && r.err == nil {
			r.err = &FieldError{Schema: s.Name, Field: f.Name, Message: o.Message}
		}
	}
	if r.err == nil && s.Rule != nil && !s.Rule(r) {
		r.err = &FieldError{Schema: s.Name, Message: s.RuleMessage}
	}
	return r
}

// Err возвращает *FieldError или nil.
func (r *Result) Err() error {
	return r.err
}

// Valid сообщает, прошла ли схема целиком.
func (r *Result) Valid() bool {
	return r.err == nil
}

// Filled true, если все перечисленные поля переданы непустыми и валидны.
func (r *Result) Filled(names ...string) bool {
	for _, name := range names {
		o, ok := r.Outcomes[name]
		if !ok || !o.Valid || !o.Filled {
			return false
		}
	}
	return true
}

// String возвращает нормализованное строковое значение поля или "".
func (r *Result) String(name string) string {
	s, _ := r.Outcomes[name].Value.(string)
	return s
}

// Time возвращает дату поля или nil.
func (r *Result) Time(name string) *time.Time {
	t, ok := r.Outcomes[name].Value.(time.Time)
	if !ok {
		return nil
	}
	return &t
}

// Int возвращает целое значение поля или nil.
func (r *Result) Int(name string) *int {
	n, ok := r.Outcomes[name].Value.(int)
	if !ok {
		return nil
	}
	return &n
}
