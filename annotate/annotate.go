package annotate

import (
	"context"
	"fmt"
)

// Sentence is the annotator's output for one sentence: the raw text plus
// parallel per-token annotation arrays. Words, Pos, Lemmas and Deps must
// all have one entry per token.
type Sentence struct {
	Text   string   `json:"text"`
	Words  []string `json:"words"`
	Pos    []string `json:"pos"`
	Lemmas []string `json:"lemmas"`
	Deps   []string `json:"deps"`
}

// Aligned reports whether the annotation arrays are parallel to the token
// sequence.
func (s Sentence) Aligned() bool {
	n := len(s.Words)
	return len(s.Pos) == n && len(s.Lemmas) == n && len(s.Deps) == n
}

// Engine splits document text into sentences and annotates each token.
// Implementations must be deterministic for identical text and engine
// configuration.
type Engine interface {
	Annotate(ctx context.Context, text string) ([]Sentence, error)
}

// Error is an annotation failure for a single document. The ingester skips
// the document and keeps the rest of the run going.
type Error struct {
	ExternalID string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("annotate document %v: %v", e.ExternalID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
