package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Corpus is a named collection of documents produced by one ingestion run.
// The name is unique in storage; committing a corpus under an existing name
// fails rather than silently duplicating it.
type Corpus struct {
	gorm.Model

	Name      string     `gorm:"uniqueIndex;not null"`
	Documents []Document `gorm:"constraint:OnDelete:CASCADE"`

	// Row IDs of persisted documents removed since the last commit. The
	// session deletes these rows when the corpus is re-committed.
	removedIDs []uint
}

func NewCorpus(name string) *Corpus {
	return &Corpus{Name: name}
}

// AddDocument appends a document to the corpus. Duplicate external
// identifiers within one corpus are rejected.
func (c *Corpus) AddDocument(doc Document) error {
	for _, d := range c.Documents {
		if d.ExternalID == doc.ExternalID {
			return fmt.Errorf("corpus %q already contains document %q", c.Name, doc.ExternalID)
		}
	}

	c.Documents = append(c.Documents, doc)
	return nil
}

// RemoveDocument drops the document with the given external identifier from
// the corpus. If the document was already persisted, its row ID is
// remembered so the next commit deletes it.
func (c *Corpus) RemoveDocument(externalID string) error {
	for i, d := range c.Documents {
		if d.ExternalID == externalID {
			if d.ID != 0 {
				c.removedIDs = append(c.removedIDs, d.ID)
			}
			c.Documents = append(c.Documents[:i], c.Documents[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("corpus %q has no document %q", c.Name, externalID)
}

// RemovedDocumentIDs returns the row IDs pending deletion on the next
// commit.
func (c *Corpus) RemovedDocumentIDs() []uint {
	return c.removedIDs
}

// ClearRemoved forgets pending deletions. The session calls this after a
// successful commit.
func (c *Corpus) ClearRemoved() {
	c.removedIDs = nil
}

func (c *Corpus) DocumentCount() int {
	return len(c.Documents)
}

func (c *Corpus) SentenceCount() int {
	total := 0
	for _, d := range c.Documents {
		total += d.SentenceCount()
	}

	return total
}

func (c *Corpus) TokenCount() int {
	total := 0
	for _, d := range c.Documents {
		total += d.TokenCount()
	}

	return total
}
