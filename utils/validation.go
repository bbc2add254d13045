// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldError is a validation failure on a single input field. Validation is
// synchronous and the first failing field wins; nothing reaches the store.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s()-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateName checks a customer name: 3-100 characters, letters and spaces
// only (accented letters allowed).
func ValidateName(name string) *FieldError {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 3 {
		return &FieldError{Field: "nome", Message: "Nome deve ter pelo menos 3 caracteres"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &FieldError{Field: "nome", Message: "Nome muito longo (máximo 100 caracteres)"}
	}
	if !nameRegex.MatchString(name) {
		return &FieldError{Field: "nome", Message: "Nome deve conter apenas letras"}
	}
	return nil
}

// ValidatePhone checks a WhatsApp number: 10-20 characters of digits, spaces,
// parentheses and dashes.
func ValidatePhone(phone string) *FieldError {
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) < 10 {
		return &FieldError{Field: "whatsapp", Message: "WhatsApp deve ter pelo menos 10 dígitos"}
	}
	if utf8.RuneCountInString(phone) > 20 {
		return &FieldError{Field: "whatsapp", Message: "WhatsApp inválido"}
	}
	if !phoneRegex.MatchString(phone) {
		return &FieldError{Field: "whatsapp", Message: "WhatsApp deve conter apenas números e caracteres válidos"}
	}
	return nil
}

// ValidateEmail checks email syntax and the 255 character limit.
func ValidateEmail(email string) *FieldError {
	email = strings.TrimSpace(email)
	if len(email) > 255 {
		return &FieldError{Field: "email", Message: "Email muito longo"}
	}
	if !emailRegex.MatchString(email) {
		return &FieldError{Field: "email", Message: "Email inválido"}
	}
	return nil
}

// ValidateNotes checks the optional free-text field (500 character cap).
func ValidateNotes(notes string) *FieldError {
	if utf8.RuneCountInString(notes) > 500 {
		return &FieldError{Field: "observacoes", Message: "Observações muito longas (máximo 500 caracteres)"}
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD booking date: parseable, not in the past
// and not on a Sunday, the shop's closed weekday. The check only happens at
// input time; stored rows are never re-validated.
func ValidateDate(date string, now time.Time) *FieldError {
	if date == "" {
		return &FieldError{Field: "data", Message: "Selecione uma data"}
	}
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return &FieldError{Field: "data", Message: "Data inválida"}
	}
	if d.Before(BeginningOfDay(now)) {
		return &FieldError{Field: "data", Message: "Data não pode ser no passado"}
	}
	if d.Weekday() == time.Sunday {
		return &FieldError{Field: "data", Message: "Estamos fechados aos domingos"}
	}
	return nil
}
