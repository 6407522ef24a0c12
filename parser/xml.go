package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/jaytaylor/html2text"
)

// XMLSource reads documents from an XML file using XPath selectors. The
// file is parsed up front; field extraction and text normalization happen
// per document during iteration.
type XMLSource struct {
	path      string
	selectors Selectors

	nodes   []*xmlquery.Node
	pos     int
	current RawDocument
	seen    map[string]bool
	err     error
}

// NewXMLSource opens and parses the file. It fails with a ParseError if the
// file can't be read or the document selector matches no elements.
func NewXMLSource(path string, selectors Selectors) (*XMLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	root, err := xmlquery.Parse(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	nodes, err := xmlquery.QueryAll(root, selectors.Document)
	if err != nil {
		return nil, &ParseError{Path: path, Selector: selectors.Document, Err: err}
	}
	if len(nodes) == 0 {
		return nil, &ParseError{Path: path, Selector: selectors.Document, Err: errors.New("matched no document elements")}
	}

	return &XMLSource{
		path:      path,
		selectors: selectors,
		nodes:     nodes,
		seen:      map[string]bool{},
	}, nil
}

// Next advances to the next document element. It returns false at the end
// of the file or on the first extraction failure; Err distinguishes the
// two.
func (s *XMLSource) Next() bool {
	if s.err != nil || s.pos >= len(s.nodes) {
		return false
	}

	node := s.nodes[s.pos]
	s.pos++

	id, err := s.extractOne(node, s.selectors.Identifier)
	if err != nil {
		s.err = err
		return false
	}
	if s.seen[id] {
		s.err = &ParseError{Path: s.path, Selector: s.selectors.Identifier, Err: fmt.Errorf("duplicate document identifier %q", id)}
		return false
	}
	s.seen[id] = true

	text, err := s.extractText(node, s.selectors.Text)
	if err != nil {
		s.err = err
		return false
	}

	s.current = RawDocument{ExternalID: id, Text: text}
	return true
}

func (s *XMLSource) Document() RawDocument {
	return s.current
}

func (s *XMLSource) Err() error {
	return s.err
}

func (s *XMLSource) extractOne(node *xmlquery.Node, selector string) (string, error) {
	matched, err := xmlquery.Query(node, selector)
	if err != nil {
		return "", &ParseError{Path: s.path, Selector: selector, Err: err}
	}
	if matched == nil {
		return "", &ParseError{Path: s.path, Selector: selector, Err: errors.New("matched nothing")}
	}

	value := strings.TrimSpace(matched.InnerText())
	if value == "" {
		return "", &ParseError{Path: s.path, Selector: selector, Err: errors.New("matched an empty value")}
	}

	return value, nil
}

// extractText joins all matches, one per passage, into the document text.
// Passage text can carry embedded markup, which is normalized to plain text
// before annotation.
func (s *XMLSource) extractText(node *xmlquery.Node, selector string) (string, error) {
	matched, err := xmlquery.QueryAll(node, selector)
	if err != nil {
		return "", &ParseError{Path: s.path, Selector: selector, Err: err}
	}

	parts := make([]string, 0, len(matched))
	for _, m := range matched {
		part := strings.TrimSpace(m.InnerText())
		if part == "" {
			continue
		}

		plain, err := html2text.FromString(part)
		if err != nil {
			return "", &ParseError{Path: s.path, Selector: selector, Err: err}
		}
		if plain = strings.TrimSpace(plain); plain != "" {
			parts = append(parts, plain)
		}
	}
	if len(parts) == 0 {
		return "", &ParseError{Path: s.path, Selector: selector, Err: errors.New("matched no text")}
	}

	return strings.Join(parts, "\n"), nil
}
