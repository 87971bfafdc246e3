// Package parser turns scene YAML into schema values, reporting the offending
// line for every structural problem.
package parser

import (
	"io"

	"playermove/internal/loader/schema"
)

type Parser interface {
	Parse(r io.Reader) (schema.Scene, error)
}

func NewParser() Parser {
	return NewYamlParser()
}
