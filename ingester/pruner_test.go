package ingester

import (
	"fmt"
	"math/rand"
	"testing"

	"corpora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(t *testing.T, docs int) *models.Corpus {
	t.Helper()
	corpus := models.NewCorpus("Test")
	for i := 0; i < docs; i++ {
		doc := models.NewDocument(fmt.Sprintf("doc-%03d", i), "text", nil)
		require.NoError(t, corpus.AddDocument(doc))
	}
	return corpus
}

func TestPruneRemovesFraction(t *testing.T) {
	corpus := testCorpus(t, 10)

	removed := Prune(corpus, 0.9, rand.New(rand.NewSource(1)))

	assert.Equal(t, 9, removed)
	assert.Equal(t, 1, corpus.DocumentCount())
}

func TestPruneFloorsExactly(t *testing.T) {
	// 0.29*100 is 28.999... in float64; the count must still floor to 29.
	corpus := testCorpus(t, 100)

	removed := Prune(corpus, 0.29, rand.New(rand.NewSource(1)))

	assert.Equal(t, 29, removed)
	assert.Equal(t, 71, corpus.DocumentCount())
}

func TestPruneZeroFraction(t *testing.T) {
	corpus := testCorpus(t, 10)

	removed := Prune(corpus, 0, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, removed)
	assert.Equal(t, 10, corpus.DocumentCount())
}

func TestPruneFractionAboveOne(t *testing.T) {
	corpus := testCorpus(t, 5)

	removed := Prune(corpus, 1.5, rand.New(rand.NewSource(1)))

	assert.Equal(t, 5, removed)
	assert.Equal(t, 0, corpus.DocumentCount())
}

func TestPruneEmptyCorpus(t *testing.T) {
	corpus := models.NewCorpus("Empty")

	removed := Prune(corpus, 0.9, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, removed)
}

func TestPruneKeepsSurvivorsIntact(t *testing.T) {
	corpus := testCorpus(t, 20)
	before := make(map[string]bool)
	for _, doc := range corpus.Documents {
		before[doc.ExternalID] = true
	}

	Prune(corpus, 0.5, rand.New(rand.NewSource(7)))

	assert.Equal(t, 10, corpus.DocumentCount())
	seen := make(map[string]bool)
	for _, doc := range corpus.Documents {
		assert.True(t, before[doc.ExternalID])
		assert.False(t, seen[doc.ExternalID])
		seen[doc.ExternalID] = true
	}
}
