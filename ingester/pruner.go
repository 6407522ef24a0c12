package ingester

import (
	"math"
	"math/rand"

	"corpora/models"
)

// Prune removes a random selection of documents from an assembled corpus,
// exactly floor(fraction*N) of them, so a pruned corpus has a predictable
// size for a given document count. CI runs use this with a fraction around
// 0.9 to keep test corpora small; production ingestion never prunes.
//
// Returns the number of documents removed.
func Prune(corpus *models.Corpus, fraction float64, rng *rand.Rand) int {
	if fraction <= 0 || corpus.DocumentCount() == 0 {
		return 0
	}
	if fraction > 1 {
		fraction = 1
	}

	// Nudge past float artifacts like 0.29*100 = 28.999... before flooring.
	n := int(math.Floor(fraction*float64(corpus.DocumentCount()) + 1e-9))
	perm := rng.Perm(corpus.DocumentCount())

	// Collect external IDs first: removal reorders the document slice.
	ids := make([]string, 0, n)
	for _, i := range perm[:n] {
		ids = append(ids, corpus.Documents[i].ExternalID)
	}
	for _, id := range ids {
		_ = corpus.RemoveDocument(id)
	}

	return n
}
