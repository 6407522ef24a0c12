package annotate

import (
	"context"
	"regexp"
	"strings"

	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

var japaneseBoundary = regexp.MustCompile(`[^。！？]+[。！？]*`)

// KagomeEngine annotates Japanese sources with the kagome morphological
// analyzer: surface forms, POS from the first feature, lemmas from the base
// form. Kagome does no dependency parsing, so dependency labels are
// placeholders.
type KagomeEngine struct {
	kagome *tokenizer.Tokenizer
}

func NewKagomeEngine() (*KagomeEngine, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}

	return &KagomeEngine{kagome: t}, nil
}

func (e *KagomeEngine) Annotate(_ context.Context, text string) ([]Sentence, error) {
	sentences := make([]Sentence, 0)
	for _, raw := range japaneseBoundary.FindAllString(text, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		sentence := Sentence{Text: raw}
		for _, token := range e.kagome.Analyze(raw, tokenizer.Search) {
			features := token.Features()
			if len(features) > 1 && features[1] == "空白" {
				continue
			}

			pos := placeholderPos
			if len(features) > 0 {
				pos = features[0]
			}
			lemma := token.Surface
			if len(features) >= 7 && features[6] != "*" {
				lemma = features[6]
			}

			sentence.Words = append(sentence.Words, token.Surface)
			sentence.Pos = append(sentence.Pos, pos)
			sentence.Lemmas = append(sentence.Lemmas, lemma)
			sentence.Deps = append(sentence.Deps, placeholderDep)
		}
		if len(sentence.Words) == 0 {
			continue
		}

		sentences = append(sentences, sentence)
	}

	return sentences, nil
}
