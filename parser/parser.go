package parser

import "fmt"

// RawDocument is one (identifier, text) pair extracted from a source file,
// before annotation.
type RawDocument struct {
	ExternalID string
	Text       string
}

// Selectors are the three XPath expressions that locate documents and their
// fields inside a source file. Text and Identifier are evaluated relative
// to each node matched by Document.
type Selectors struct {
	Document   string
	Text       string
	Identifier string
}

// DefaultSelectors match BioC collections, the format PubMed corpora are
// distributed in.
func DefaultSelectors() Selectors {
	return Selectors{
		Document:   ".//document",
		Text:       ".//passage/text/text()",
		Identifier: ".//id/text()",
	}
}

// Source yields raw documents one at a time:
//
//	for source.Next() {
//		doc := source.Document()
//		...
//	}
//	if err := source.Err(); err != nil { ... }
//
// Sources are read-only and deterministic for a given file and selector
// configuration.
type Source interface {
	Next() bool
	Document() RawDocument
	Err() error
}

// ParseError is a failure to read or interpret a source file: an unreadable
// path, malformed XML, a selector that matches nothing, or a document
// element missing a required field.
type ParseError struct {
	Path     string
	Selector string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("parse %v: selector %q: %v", e.Path, e.Selector, e.Err)
	}

	return fmt.Sprintf("parse %v: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
