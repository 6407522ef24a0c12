package core

import (
	"errors"

	"corpora/models"

	"gorm.io/gorm"
)

// Session stages corpora and writes them to storage transactionally. A
// corpus moves from unsaved to staged with Add and to persisted with
// Commit; removing documents from a persisted corpus and re-committing it
// updates its membership in place.
//
// A session is meant for one logical thread of control; it does no locking
// of its own.
type Session struct {
	db     *gorm.DB
	staged []*models.Corpus
}

func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// Add stages a corpus for the next commit.
func (s *Session) Add(corpus *models.Corpus) {
	s.staged = append(s.staged, corpus)
}

// Commit writes all staged corpora in a single transaction. Either every
// staged corpus is persisted or none is; the staged set is kept on failure
// so the caller can retry. A unique-name violation surfaces as a
// StorageError.
func (s *Session) Commit() error {
	if len(s.staged) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, corpus := range s.staged {
			if err := commitCorpus(tx, corpus); err != nil {
				return &StorageError{Corpus: corpus.Name, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) {
			return storageErr
		}
		return &StorageError{Err: err}
	}

	for _, corpus := range s.staged {
		corpus.ClearRemoved()
	}
	s.staged = nil

	return nil
}

func commitCorpus(tx *gorm.DB, corpus *models.Corpus) error {
	if ids := corpus.RemovedDocumentIDs(); len(ids) > 0 {
		if err := tx.Where("document_id IN ?", ids).Delete(&models.Sentence{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Document{}, ids).Error; err != nil {
			return err
		}
	}

	if corpus.ID == 0 {
		return tx.Create(corpus).Error
	}

	return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(corpus).Error
}

// QueryByName loads a committed corpus with its documents and sentences.
// Documents come back in insertion order and each document's sentences in
// Position order; physical row order is never relied on.
func (s *Session) QueryByName(name string) (*models.Corpus, error) {
	var corpus models.Corpus
	err := s.db.
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Documents.Sentences", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("name = ?", name).First(&corpus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, &StorageError{Corpus: name, Err: err}
	}

	return &corpus, nil
}

// List returns all committed corpora with document metadata loaded, enough
// for name+count summaries. Document text and sentences are not loaded; use
// QueryByName for a full corpus.
func (s *Session) List() ([]models.Corpus, error) {
	var corpora []models.Corpus
	err := s.db.
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "corpus_id", "uuid", "external_id").Order("id")
		}).
		Order("name").Find(&corpora).Error
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	return corpora, nil
}
