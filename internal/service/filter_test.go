package service_test

import (
	"reflect"
	"testing"

	"github.com/projectdesk/projectdesk/internal/service"
)

func TestFilterCustom_DropsUnknownKeys(t *testing.T) {
	got := service.FilterCustom(
		[]string{"budget"},
		map[string]any{"budget": "500", "notes": "x"},
	)
	want := map[string]any{"budget": "500"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterCustom = %v; want %v", got, want)
	}
}

func TestFilterCustom_EmptyAllowlist(t *testing.T) {
	got := service.FilterCustom(nil, map[string]any{"a": 1, "b": 2, "c": 3})
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestFilterCustom_ValuesUnchanged(t *testing.T) {
	// No coercion: whatever the client sent survives as-is, including
	// values that mismatch the declared field type.
	in := map[string]any{
		"budget": "not a number",
		"tags":   []any{"a", "b"},
	}
	got := service.FilterCustom([]string{"budget", "tags"}, in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("FilterCustom = %v; want %v", got, in)
	}
}

func TestFilterCustom_ResultIsSubsetOfAllowlist(t *testing.T) {
	allowed := []string{"a", "c"}
	got := service.FilterCustom(allowed, map[string]any{
		"a": 1, "b": 2, "c": 3, "d": 4,
	})

	allowedSet := map[string]bool{}
	for _, k := range allowed {
		allowedSet[k] = true
	}
	for k := range got {
		if !allowedSet[k] {
			t.Errorf("key %q survived the filter but is not allowed", k)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
}

func TestFilterCustom_NilSubmitted(t *testing.T) {
	got := service.FilterCustom([]string{"a"}, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %v", got)
	}
}
