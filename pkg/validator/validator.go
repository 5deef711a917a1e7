package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(name, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Name
	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	}

	// Email
	validateEmail(email, errs)

	// Password
	if len(password) < 6 {
		errs.Add("password", "Please enter a password with 6 or more characters")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Please include a valid email")
	}
}
