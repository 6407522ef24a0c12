package main

import (
	"testing"

	"corpora/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSources(t *testing.T) {
	splits, err := parseSources("Train=data/train.xml,Dev=data/dev.xml, Test=data/test.xml")
	require.NoError(t, err)

	assert.Equal(t, []split{
		{Name: "Train", Path: "data/train.xml"},
		{Name: "Dev", Path: "data/dev.xml"},
		{Name: "Test", Path: "data/test.xml"},
	}, splits)
}

func TestParseSourcesEmpty(t *testing.T) {
	_, err := parseSources("")
	require.Error(t, err)
}

func TestParseSourcesBadPair(t *testing.T) {
	_, err := parseSources("Train")
	require.Error(t, err)

	_, err = parseSources("=data/train.xml")
	require.Error(t, err)
}

func TestSelectorsFromEnv(t *testing.T) {
	t.Setenv("DOC_SELECTOR", "")
	t.Setenv("TEXT_SELECTOR", "")
	t.Setenv("ID_SELECTOR", "")
	assert.Equal(t, parser.DefaultSelectors(), selectorsFromEnv())

	t.Setenv("TEXT_SELECTOR", ".//abstract/text()")
	selectors := selectorsFromEnv()
	assert.Equal(t, ".//document", selectors.Document)
	assert.Equal(t, ".//abstract/text()", selectors.Text)
}

func TestPruneFraction(t *testing.T) {
	t.Setenv("PRUNE_FRACTION", "")
	assert.Equal(t, 0.0, pruneFraction())

	t.Setenv("PRUNE_FRACTION", "0.9")
	assert.Equal(t, 0.9, pruneFraction())

	t.Setenv("PRUNE_FRACTION", "lots")
	assert.Equal(t, 0.0, pruneFraction())
}
