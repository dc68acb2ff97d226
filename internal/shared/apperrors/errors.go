package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Fields []string
	Msg    string
	Err    error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && len(e.Fields) > 0:
		return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.Fields, ", "))
	case e.Msg != "":
		return e.Msg
	case len(e.Fields) > 0:
		return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an identifier that does not resolve to a record.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// RenderError wraps any failure inside the invoice rendering pipeline.
// Stage names the step that failed (template, launch, screenshot, persist).
type RenderError struct {
	Stage string
	Err   error
}

func (e RenderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invoice rendering failed at %s", e.Stage)
	}
	return fmt.Sprintf("invoice rendering failed at %s: %v", e.Stage, e.Err)
}

func (e RenderError) Unwrap() error { return e.Err }

// StoreError wraps an underlying persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store %s failed", e.Op)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e StoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target RenderError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}
