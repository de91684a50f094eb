package errors

import (
	"fmt"
	"strings"
)

// ValidationError is an error with a field and a list of messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	message string
	errors  []*ValidationError
}

// NewValidationErrorCollector creates a collector whose Error() starts with message.
func NewValidationErrorCollector(message string) *ValidationErrorCollector {
	return &ValidationErrorCollector{
		message: message,
		errors:  make([]*ValidationError, 0),
	}
}

// Add adds a new validation error to the collector and returns the collector for chaining.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

// Fields returns the names of the offending fields in insertion order.
func (c *ValidationErrorCollector) Fields() []string {
	fields := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		fields = append(fields, err.Field)
	}
	return fields
}

// Error renders as "<message>: field1, field2".
func (c *ValidationErrorCollector) Error() string {
	if c.message == "" {
		msgs := make([]string, 0, len(c.errors))
		for _, err := range c.errors {
			msgs = append(msgs, err.Error())
		}
		return strings.Join(msgs, ", ")
	}
	return fmt.Sprintf("%s: %s", c.message, strings.Join(c.Fields(), ", "))
}
