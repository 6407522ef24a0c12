package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Sentence is one tokenized, annotated unit of text belonging to a document.
// Words, Pos, Lemmas and Deps are parallel arrays: index i of each describes
// the i-th token of the sentence.
type Sentence struct {
	gorm.Model

	DocumentID uint `gorm:"index;not null"`
	Position   int  `gorm:"not null"`
	Text       string

	Words  []string `gorm:"serializer:json"`
	Pos    []string `gorm:"serializer:json"`
	Lemmas []string `gorm:"serializer:json"`
	Deps   []string `gorm:"serializer:json"`
}

// NewSentence builds a sentence, rejecting annotation arrays that are not
// aligned with the token sequence.
func NewSentence(position int, text string, words, pos, lemmas, deps []string) (Sentence, error) {
	n := len(words)
	if len(pos) != n || len(lemmas) != n || len(deps) != n {
		return Sentence{}, fmt.Errorf("sentence %v: annotation arrays have mismatched lengths", position)
	}

	return Sentence{
		Position: position,
		Text:     text,
		Words:    words,
		Pos:      pos,
		Lemmas:   lemmas,
		Deps:     deps,
	}, nil
}

func (s Sentence) TokenCount() int {
	return len(s.Words)
}
