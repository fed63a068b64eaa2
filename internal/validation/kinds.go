package validation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"time"

	"scoringAPI/internal/domain"
)

// DateLayout формат дат в запросах: DD.MM.YYYY.
const DateLayout = "02.01.2006"

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phoneRe = regexp.MustCompile(`^7\d{10}$`)
)

var (
	errNotString    = errors.New("must be a string")
	errNotObject    = errors.New("must be an object")
	errEmailFormat  = errors.New("must have appropriate email format")
	errPhoneFormat  = errors.New("must have appropriate phone format (7XXXXXXXXXX)")
	errDateFormat   = errors.New("must have appropriate date format (DD.MM.YYYY)")
	errGenderValue  = errors.New("must have value in (0, 1, 2)")
	errClientIDList = errors.New("must be a list with integers")
)

// check проверяет формат непустого значения и возвращает нормализованное значение.
func check(kind Kind, raw any) (any, error) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, errNotString
		}
		return s, nil
	case KindArguments:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, errNotObject
		}
		return m, nil
	case KindEmail:
		s, ok := raw.(string)
		if !ok {
			return nil, errNotString
		}
		if !emailRe.MatchString(s) {
			return nil, errEmailFormat
		}
		return s, nil
	case KindPhone:
		s, ok := phoneString(raw)
		if !ok || !phoneRe.MatchString(s) {
			return nil, errPhoneFormat
		}
		return s, nil
	case KindDate, KindBirthDate:
		// BirthDate пока проверяется так же, как Date.
		s, ok := raw.(string)
		if !ok {
			return nil, errDateFormat
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil, errDateFormat
		}
		return t, nil
	case KindGender:
		n, ok := integer(raw)
		if !ok {
			return nil, errGenderValue
		}
		if _, known := domain.Genders[int(n)]; !known {
			return nil, errGenderValue
		}
		return int(n), nil
	case KindClientIDs:
		list, ok := raw.([]any)
		if !ok {
			return nil, errClientIDList
		}
		ids := make([]int64, 0, len(list))
		for _, item := range list {
			id, ok := integer(item)
			if !ok {
				return nil, errClientIDList
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	return nil, errors.New("has unknown kind " + kind.String())
}

// integer принимает только целые: json.Number без дробной части и целые типы Go.
func integer(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// phoneString приводит телефон к строке: допускаются строка и целое число.
func phoneString(raw any) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	n, ok := integer(raw)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}
