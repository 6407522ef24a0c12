package annotate

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Placeholder tags for annotation layers SimpleEngine does not produce.
const (
	placeholderPos = "X"
	placeholderDep = "dep"
)

var sentenceBoundary = regexp.MustCompile(`[^.!?]+[.!?]*`)

// SimpleEngine is a self-contained annotation backend: it segments on
// sentence-final punctuation, tokenizes letter/number runs and stems tokens
// into lemmas. POS and dependency labels are placeholders. It exists so
// tests and offline runs don't need an annotation server; real ingestion
// should use HTTPEngine.
type SimpleEngine struct{}

func NewSimpleEngine() SimpleEngine {
	return SimpleEngine{}
}

func (SimpleEngine) Annotate(_ context.Context, text string) ([]Sentence, error) {
	sentences := make([]Sentence, 0)
	for _, raw := range sentenceBoundary.FindAllString(text, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		words := strings.FieldsFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(words) == 0 {
			continue
		}

		sentence := Sentence{
			Text:   raw,
			Words:  words,
			Pos:    make([]string, len(words)),
			Lemmas: make([]string, len(words)),
			Deps:   make([]string, len(words)),
		}
		for i, word := range words {
			sentence.Pos[i] = placeholderPos
			sentence.Lemmas[i] = english.Stem(word, false)
			sentence.Deps[i] = placeholderDep
		}

		sentences = append(sentences, sentence)
	}

	return sentences, nil
}
