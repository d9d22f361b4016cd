package resources

import (
	"strconv"
	"strings"
	"time"
)

// ValidationError rejects form state before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func required(field, label, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &ValidationError{Field: field, Message: label + " é obrigatório"}
	}
	return v, nil
}

func parseInt(field, label, value string) (int, error) {
	v, err := required(field, label, value)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: label + " deve ser um número inteiro"}
	}
	return n, nil
}

func parseLayout(field, label, layout, value string) (string, error) {
	v, err := required(field, label, value)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(layout, v)
	if err != nil {
		return "", &ValidationError{Field: field, Message: label + " inválido"}
	}
	return t.Format(layout), nil
}
