package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Rule checks a raw string value and returns a human readable message when it fails
type Rule func(value string) error

// Field is a single schema entry. A field with HasDefault takes Default when the
// key is absent from the environment; otherwise an absent key is reported as required.
type Field struct {
	Name       string
	Default    string
	HasDefault bool
	Rules      []Rule
}

// Schema is an ordered list of fields
type Schema []Field

// Values holds the resolved raw values of a validated schema
type Values map[string]string

// Validate evaluates every field against env. Rules for a field stop at the first
// failure, but all fields are always evaluated so the returned ValidationError
// lists every problem at once.
func (s Schema) Validate(env Environment) (Values, *ValidationError) {
	values := make(Values, len(s))
	var issues []FieldError

	for _, field := range s {
		raw, ok := env.Lookup(field.Name)
		if !ok {
			if !field.HasDefault {
				issues = append(issues, FieldError{Path: field.Name, Message: "Required"})
				continue
			}
			raw = field.Default
		}

		if err := field.check(raw); err != nil {
			issues = append(issues, FieldError{Path: field.Name, Message: err.Error()})
			continue
		}
		values[field.Name] = raw
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return values, nil
}

func (f Field) check(value string) error {
	for _, rule := range f.Rules {
		if err := rule(value); err != nil {
			return err
		}
	}
	return nil
}

// Int returns the integer value of key. It panics when used on a key that was not
// validated with an integer rule.
func (v Values) Int(key string) int {
	n, err := strconv.Atoi(v[key])
	if err != nil {
		panic(fmt.Sprintf("config: %s is not an integer: %v", key, err))
	}
	return n
}

// String returns the raw value of key
func (v Values) String(key string) string {
	return v[key]
}

// OneOf accepts only the listed values
func OneOf(allowed ...string) Rule {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	expected := strings.Join(quoted, " | ")

	return func(value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("Invalid enum value. Expected %s, received '%s'", expected, value)
	}
}

// HasPrefix requires the value to start with prefix
func HasPrefix(prefix string) Rule {
	return func(value string) error {
		if !strings.HasPrefix(value, prefix) {
			return fmt.Errorf("Invalid input: must start with %q", prefix)
		}
		return nil
	}
}

// MinLength requires at least n characters, counted as UTF-16 code units so a
// character outside the Basic Multilingual Plane counts twice. An empty message
// selects the default one.
func MinLength(n int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("String must contain at least %d character(s)", n)
	}
	return func(value string) error {
		if len(utf16.Encode([]rune(value))) < n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// Integer requires a base 10 integer
func Integer() Rule {
	return func(value string) error {
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("Expected integer, received '%s'", value)
		}
		return nil
	}
}

// Positive requires an integer greater than zero
func Positive() Rule {
	return func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("Expected integer, received '%s'", value)
		}
		if n <= 0 {
			return fmt.Errorf("Number must be greater than 0")
		}
		return nil
	}
}

// Between requires an integer within [lo, hi]
func Between(lo, hi int) Rule {
	return func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("Expected integer, received '%s'", value)
		}
		if n < lo {
			return fmt.Errorf("Number must be greater than or equal to %d", lo)
		}
		if n > hi {
			return fmt.Errorf("Number must be less than or equal to %d", hi)
		}
		return nil
	}
}
