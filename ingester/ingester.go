package ingester

import (
	"context"

	"corpora/annotate"
	"corpora/models"
	"corpora/parser"

	"go.uber.org/zap"
)

// Stats summarizes one corpus build.
type Stats struct {
	Documents int
	Sentences int
	Tokens    int
	Skipped   int
}

// Builder assembles a corpus from a document source and an annotation
// engine. It registers documents in memory only; committing the corpus is
// the caller's job via a core.Session.
type Builder struct {
	source parser.Source
	engine annotate.Engine
	logger *zap.SugaredLogger
}

func NewBuilder(source parser.Source, engine annotate.Engine, logger *zap.SugaredLogger) *Builder {
	return &Builder{
		source: source,
		engine: engine,
		logger: logger,
	}
}

// Build annotates every document the source yields and collects them into a
// corpus with the given name. A document whose annotation fails is logged
// and skipped; a source failure aborts the build. A source that yields no
// documents produces an empty corpus without error.
func (b *Builder) Build(ctx context.Context, name string) (*models.Corpus, Stats, error) {
	corpus := models.NewCorpus(name)
	var stats Stats

	for b.source.Next() {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		raw := b.source.Document()

		annotated, err := b.engine.Annotate(ctx, raw.Text)
		if err != nil {
			stats.Skipped++
			b.logger.Warnf("Skipping document: %v", &annotate.Error{ExternalID: raw.ExternalID, Err: err})
			continue
		}

		sentences := make([]models.Sentence, 0, len(annotated))
		aligned := true
		for i, s := range annotated {
			sentence, err := models.NewSentence(i, s.Text, s.Words, s.Pos, s.Lemmas, s.Deps)
			if err != nil {
				// An engine that returns misaligned arrays is treated like
				// any other annotation failure.
				stats.Skipped++
				b.logger.Warnf("Skipping document: %v", &annotate.Error{ExternalID: raw.ExternalID, Err: err})
				aligned = false
				break
			}
			sentences = append(sentences, sentence)
		}
		if !aligned {
			continue
		}

		doc := models.NewDocument(raw.ExternalID, raw.Text, sentences)
		if err := corpus.AddDocument(doc); err != nil {
			return nil, stats, err
		}

		stats.Documents++
		stats.Sentences += doc.SentenceCount()
		stats.Tokens += doc.TokenCount()
	}
	if err := b.source.Err(); err != nil {
		return nil, stats, err
	}

	return corpus, stats, nil
}
