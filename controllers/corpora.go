package controllers

import (
	"errors"

	"corpora/api"
	"corpora/core"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CorporaController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

type corpusSummary struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

type documentSummary struct {
	ExternalID string `json:"external_id"`
	UUID       string `json:"uuid"`
	Sentences  int    `json:"sentences"`
	Tokens     int    `json:"tokens"`
}

type corpusDetail struct {
	Name      string            `json:"name"`
	Documents []documentSummary `json:"documents"`
	Sentences int               `json:"sentences"`
	Tokens    int               `json:"tokens"`
}

// GetCorpora lists all committed corpora with their document counts.
func (ctl CorporaController) GetCorpora(c *gin.Context) {
	session := core.NewSession(ctl.DB)

	corpora, err := session.List()
	if err != nil {
		ctl.Logger.Errorf("Failed to list corpora: %v", err)
		api.ResultInternalError(c)
		return
	}

	summaries := make([]corpusSummary, 0, len(corpora))
	for _, corpus := range corpora {
		summaries = append(summaries, corpusSummary{
			Name:      corpus.Name,
			Documents: corpus.DocumentCount(),
		})
	}

	api.ResultData(c, summaries)
}

// GetCorpus returns one corpus with per-document stats.
func (ctl CorporaController) GetCorpus(c *gin.Context) {
	session := core.NewSession(ctl.DB)

	corpus, err := session.QueryByName(c.Param("name"))
	if err != nil {
		var notFound *core.NotFoundError
		if errors.As(err, &notFound) {
			api.ResultNotFound(c, notFound.Error())
			return
		}

		ctl.Logger.Errorf("Failed to query corpus: %v", err)
		api.ResultInternalError(c)
		return
	}

	detail := corpusDetail{
		Name:      corpus.Name,
		Documents: make([]documentSummary, 0, corpus.DocumentCount()),
		Sentences: corpus.SentenceCount(),
		Tokens:    corpus.TokenCount(),
	}
	for _, doc := range corpus.Documents {
		detail.Documents = append(detail.Documents, documentSummary{
			ExternalID: doc.ExternalID,
			UUID:       doc.UUID.String(),
			Sentences:  doc.SentenceCount(),
			Tokens:     doc.TokenCount(),
		})
	}

	api.ResultData(c, detail)
}

// DeleteDocument removes one document from a committed corpus and
// re-commits the corpus with its new membership.
func (ctl CorporaController) DeleteDocument(c *gin.Context) {
	session := core.NewSession(ctl.DB)

	corpus, err := session.QueryByName(c.Param("name"))
	if err != nil {
		var notFound *core.NotFoundError
		if errors.As(err, &notFound) {
			api.ResultNotFound(c, notFound.Error())
			return
		}

		ctl.Logger.Errorf("Failed to query corpus: %v", err)
		api.ResultInternalError(c)
		return
	}

	if err := corpus.RemoveDocument(c.Param("externalID")); err != nil {
		api.ResultNotFound(c, err.Error())
		return
	}

	session.Add(corpus)
	if err := session.Commit(); err != nil {
		ctl.Logger.Errorf("Failed to commit corpus %v: %v", corpus.Name, err)
		api.ResultInternalError(c)
		return
	}

	api.ResultData(c, corpusSummary{
		Name:      corpus.Name,
		Documents: corpus.DocumentCount(),
	})
}
