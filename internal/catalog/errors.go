package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName = errors.New("duplicate_template")
	ErrNotFound      = errors.New("template_not_found")
)

type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("template %q has been registered", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
