package annotate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEngineAnnotate(t *testing.T) {
	var received annotateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		response := annotateResponse{
			Sentences: []Sentence{
				{
					Text:   "Dogs bark.",
					Words:  []string{"Dogs", "bark", "."},
					Pos:    []string{"NNS", "VBP", "."},
					Lemmas: []string{"dog", "bark", "."},
					Deps:   []string{"nsubj", "ROOT", "punct"},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	engine := NewHTTPEngine(server.URL, 5*time.Second)
	sentences, err := engine.Annotate(context.Background(), "Dogs bark.")

	require.NoError(t, err)
	assert.Equal(t, "Dogs bark.", received.Text)
	require.Len(t, sentences, 1)
	assert.Equal(t, []string{"Dogs", "bark", "."}, sentences[0].Words)
	assert.Equal(t, []string{"NNS", "VBP", "."}, sentences[0].Pos)
	assert.True(t, sentences[0].Aligned())
}

func TestHTTPEngineServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	// Keep the retry loop short; the server fails deterministically.
	engine := NewHTTPEngine(server.URL, 2*time.Second)

	_, err := engine.Annotate(context.Background(), "text")
	require.Error(t, err)
}

func TestHTTPEngineMisalignedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := annotateResponse{
			Sentences: []Sentence{
				{
					Text:   "Dogs bark.",
					Words:  []string{"Dogs", "bark"},
					Pos:    []string{"NNS"},
					Lemmas: []string{"dog", "bark"},
					Deps:   []string{"nsubj", "ROOT"},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	engine := NewHTTPEngine(server.URL, 5*time.Second)
	_, err := engine.Annotate(context.Background(), "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not aligned")
}

func TestHTTPEngineBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	engine := NewHTTPEngine(server.URL, 5*time.Second)
	_, err := engine.Annotate(context.Background(), "text")
	require.Error(t, err)
}
