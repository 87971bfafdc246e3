package parser

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidYamlFormat = errors.New("invalid yaml format")

	ErrUnknownField  = errors.New("unknown field")
	ErrRequiredField = errors.New("required field")
	ErrInvalidType   = errors.New("invalid type")
	ErrDuplicateName = errors.New("duplicate name")
)

// location renders where in the scene a field lives.
func location(section, player string) string {
	switch {
	case player == "":
		return section
	case section == "player":
		return fmt.Sprintf("player %q", player)
	default:
		return fmt.Sprintf("%s in player %q", section, player)
	}
}

type requiredFieldError struct {
	section string
	player  string
	field   string
	line    int
}

func (e *requiredFieldError) Error() string {
	return fmt.Sprintf("missing required %s field %q (line %d)", location(e.section, e.player), e.field, e.line)
}

func (e *requiredFieldError) Unwrap() error {
	return ErrRequiredField
}

type unknownFieldError struct {
	section string
	player  string
	field   string
	line    int
}

func (e *unknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q (line %d)", location(e.section, e.player), e.field, e.line)
}

func (e *unknownFieldError) Unwrap() error {
	return ErrUnknownField
}

type fieldTypeError struct {
	section   string
	player    string
	field     string
	validType string
	line      int
	reason    error
}

func (e *fieldTypeError) Error() string {
	msg := fmt.Sprintf("invalid type for %s field %q (line %d): expected %s", location(e.section, e.player), e.field, e.line, e.validType)
	if e.reason != nil {
		msg += ": " + e.reason.Error()
	}
	return msg
}

func (e *fieldTypeError) Unwrap() error {
	return ErrInvalidType
}

type duplicateNameError struct {
	name string
	line int
}

func (e *duplicateNameError) Error() string {
	return fmt.Sprintf("duplicate player name %q (line %d), player names must be unique", e.name, e.line)
}

func (e *duplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

type formatError struct {
	what string
	line int
}

func (e *formatError) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", ErrInvalidYamlFormat, e.what, e.line)
}

func (e *formatError) Unwrap() error {
	return ErrInvalidYamlFormat
}
