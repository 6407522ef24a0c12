package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Documents are the ingested text units, e.g. PubMed abstracts. ExternalID
// is the identifier carried by the source file and is unique within a
// corpus. UUID identifies the document row independently of the storage
// backend, so exports and external annotation runs can refer to a document
// without knowing its database ID.
type Document struct {
	gorm.Model

	CorpusID   uint      `gorm:"index:idx_documents_corpus_external,unique"`
	UUID       uuid.UUID `gorm:"index;not null"`
	ExternalID string    `gorm:"index:idx_documents_corpus_external,unique;not null"`
	Text       string
	Sentences  []Sentence `gorm:"constraint:OnDelete:CASCADE"`
}

// NewDocument returns an unsaved document with a fresh UUID and the given
// sentences attached.
func NewDocument(externalID, text string, sentences []Sentence) Document {
	return Document{
		UUID:       uuid.New(),
		ExternalID: externalID,
		Text:       text,
		Sentences:  sentences,
	}
}

func (d Document) SentenceCount() int {
	return len(d.Sentences)
}

func (d Document) TokenCount() int {
	total := 0
	for _, s := range d.Sentences {
		total += s.TokenCount()
	}

	return total
}
