package conversation

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedStyle = errors.New("unsupported_style")
	ErrConfiguration    = errors.New("invalid_configuration")
)

// UnsupportedStyleError is returned by Render for templates that carry no
// separator style. Those templates are meant for StructuredMessages.
type UnsupportedStyleError struct {
	Template string
	Style    SeparatorStyle
}

func (e *UnsupportedStyleError) Error() string {
	if e.Style == StyleNone {
		return fmt.Sprintf("template %q has no separator style; use structured messages", e.Template)
	}
	return fmt.Sprintf("template %q: invalid style %s", e.Template, e.Style)
}

func (e *UnsupportedStyleError) Unwrap() error {
	return ErrUnsupportedStyle
}

// ConfigurationError reports a template whose fields disagree with its style.
type ConfigurationError struct {
	Template string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
