package aggregate_test

import (
	"reflect"
	"testing"

	"card-consumption-assistant/pkg/aggregate"
)

type doc map[string]any

func (d doc) GetMetadata() map[string]any { return d }

func TestMetadata_Empty(t *testing.T) {
	res := aggregate.Metadata([]doc{}, "category")
	if !res.Empty() {
		t.Fatalf("expected empty result, got %v", res.Values)
	}
	if res.Value() != nil {
		t.Errorf("expected nil value, got %v", res.Value())
	}
}

func TestMetadata_SinglePassthrough(t *testing.T) {
	docs := []doc{{"category": "category: spending-summary", "score": 0.95, "SQL1": "select 1", "tags": []any{"a", "b"}}}

	t.Run("One key is unwrapped", func(t *testing.T) {
		res := aggregate.Metadata(docs, "category")
		if res.Value() != "category: spending-summary" {
			t.Errorf("unexpected value: %v", res.Value())
		}
	})

	t.Run("Several keys keep order", func(t *testing.T) {
		res := aggregate.Metadata(docs, "SQL1", "score", "tags")
		want := []any{"select 1", 0.95, []any{"a", "b"}}
		if !reflect.DeepEqual(res.Value(), want) {
			t.Errorf("got %v, want %v", res.Value(), want)
		}
	})

	t.Run("Missing key is nil", func(t *testing.T) {
		res := aggregate.Metadata(docs, "SQL3")
		if len(res.Values) != 1 || res.Values[0] != nil {
			t.Errorf("expected [nil], got %v", res.Values)
		}
	})
}

func TestMetadata_NumericMax(t *testing.T) {
	docs := []doc{
		{"score": 0.81},
		{"score": 2},
		{"score": float32(1.5)},
		{"score": 2.5},
		{"score": int64(1)},
	}

	res := aggregate.Metadata(docs, "score")
	if res.Value() != 2.5 {
		t.Errorf("expected 2.5, got %v", res.Value())
	}

	f, ok := aggregate.ToFloat(res.Value())
	if !ok || f != 2.5 {
		t.Errorf("expected numeric 2.5, got %v", f)
	}
}

func TestMetadata_CategoricalMode(t *testing.T) {
	t.Run("Strict plurality", func(t *testing.T) {
		docs := []doc{
			{"category": "b"},
			{"category": "a"},
			{"category": "b"},
			{"category": "c"},
		}
		if got := aggregate.Metadata(docs, "category").Value(); got != "b" {
			t.Errorf("expected b, got %v", got)
		}
	})

	t.Run("Tie goes to first encountered", func(t *testing.T) {
		docs := []doc{
			{"category": "x"},
			{"category": "y"},
			{"category": "y"},
			{"category": "x"},
		}
		if got := aggregate.Metadata(docs, "category").Value(); got != "x" {
			t.Errorf("expected x, got %v", got)
		}
	})

	t.Run("Mixed numeric and text is categorical", func(t *testing.T) {
		docs := []doc{
			{"category": "7"},
			{"category": 9},
			{"category": "7"},
		}
		if got := aggregate.Metadata(docs, "category").Value(); got != "7" {
			t.Errorf("expected \"7\", got %v", got)
		}
	})
}

func TestMetadata_ListModeKeepsElementsApart(t *testing.T) {
	docs := []doc{
		{"tags": []any{"a b"}},
		{"tags": []any{"a", "b"}},
		{"tags": []any{"a", "b"}},
	}

	res := aggregate.Metadata(docs, "tags")
	want := []any{"a", "b"}
	if !reflect.DeepEqual(res.Value(), want) {
		t.Errorf("got %#v, want %#v", res.Value(), want)
	}
}

func TestMetadata_MultiKeyColumns(t *testing.T) {
	docs := []doc{
		{"category": "a", "score": 0.7, "SQL1": "q1"},
		{"category": "b", "score": 0.9, "SQL1": "q2"},
		{"category": "b", "score": 0.8},
	}

	res := aggregate.Metadata(docs, "category", "score", "SQL1", "SQL2")
	want := []any{"b", 0.9, "q1", nil}
	if !reflect.DeepEqual(res.Values, want) {
		t.Fatalf("got %v, want %v", res.Values, want)
	}

	if v, ok := res.Get("score"); !ok || v != 0.9 {
		t.Errorf("Get(score) = %v, %v", v, ok)
	}
	if _, ok := res.Get("unknown"); ok {
		t.Error("expected unknown key to be absent")
	}
}
