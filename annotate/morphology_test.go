package annotate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKagomeEngineAnnotate(t *testing.T) {
	engine, err := NewKagomeEngine()
	if err != nil {
		t.Fatalf("error: fail to initialize kagome engine: %v", err)
	}

	sentences, err := engine.Annotate(context.Background(), "今日は天気が良い。白馬へ滑りにいきたい。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %v", len(sentences))
	}
	if sentences[0].Text != "今日は天気が良い。" {
		t.Errorf("unexpected first sentence: %v", sentences[0].Text)
	}
	for i, s := range sentences {
		if !s.Aligned() {
			t.Errorf("sentence %v: annotation arrays are not aligned", i)
		}
		if len(s.Words) == 0 {
			t.Errorf("sentence %v: no tokens", i)
		}
		for j, pos := range s.Pos {
			if pos == "" {
				t.Errorf("sentence %v token %v: empty POS tag", i, j)
			}
		}
	}
}

func TestKagomeEngineDeterministic(t *testing.T) {
	engine, err := NewKagomeEngine()
	if err != nil {
		t.Fatalf("error: fail to initialize kagome engine: %v", err)
	}

	text := "琵琶湖バレイは滋賀県にある。"
	first, err := engine.Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Diff: (-first +second)\n%s", diff)
	}
}
