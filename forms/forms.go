// Package forms validates login and registration input. Validation is pure:
// it returns a list of field errors and leaves rendering to the handlers.
package forms

import (
	"fmt"
	"unicode/utf8"
)

const (
	MinFieldLen   = 4
	MaxFieldLen   = 150
	MaxContentLen = 200
)

// FieldError names the offending field and carries the message shown next to
// it on the re-rendered form.
type FieldError struct {
	Field   string
	Message string
}

func checkCredential(field, label, value string) *FieldError {
	if value == "" {
		return &FieldError{Field: field, Message: label + " is required."}
	}
	if n := utf8.RuneCountInString(value); n < MinFieldLen || n > MaxFieldLen {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters.", label, MinFieldLen, MaxFieldLen),
		}
	}
	return nil
}

// ValidateLogin checks the username and password fields of the login form.
func ValidateLogin(username, password string) []FieldError {
	var errs []FieldError
	if e := checkCredential("username", "Username", username); e != nil {
		errs = append(errs, *e)
	}
	if e := checkCredential("password", "Password", password); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// ValidateRegister checks the registration form. taken reports whether a
// username is already registered; a storage failure from it aborts
// validation and is returned as the second value.
func ValidateRegister(username, password string, taken func(string) (bool, error)) ([]FieldError, error) {
	errs := ValidateLogin(username, password)
	if username != "" {
		exists, err := taken(username)
		if err != nil {
			return nil, err
		}
		if exists {
			errs = append(errs, FieldError{
				Field:   "username",
				Message: "That username already exists. Please choose a different one.",
			})
		}
	}
	return errs, nil
}

// ValidateContent checks a task's content field.
func ValidateContent(content string) *FieldError {
	if content == "" {
		return &FieldError{Field: "content", Message: "Content is required."}
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return &FieldError{
			Field:   "content",
			Message: fmt.Sprintf("Content must be at most %d characters.", MaxContentLen),
		}
	}
	return nil
}
