package usecase

import (
	"reflect"
	"testing"
)

func TestRenderQueries(t *testing.T) {
	slots := map[string]*string{
		"&string":      strPtr("餐飲"),
		"&string1":     strPtr("StoreX"),
		"&string2":     nil,
		"&start_date":  strPtr("2024/08/01"),
		"modify_query": strPtr("&string1 should stay"),
	}

	tests := []struct {
		name      string
		templates []any
		want      []string
	}{
		{
			name:      "longest placeholder wins",
			templates: []any{"store IN ('&string1','&string2') AND category='&string'"},
			want:      []string{"store IN ('StoreX','') AND category='餐飲'"},
		},
		{
			name:      "customer id and missing end date",
			templates: []any{"cust='&CustomerID' AND dt BETWEEN '&start_date' AND '&end_date'"},
			want:      []string{"cust='C9' AND dt BETWEEN '2024/08/01' AND ''"},
		},
		{
			name:      "nil and blank templates are skipped",
			templates: []any{nil, "  ", "SELECT 1"},
			want:      []string{"SELECT 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderQueries(tt.templates, slots, "C9")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryID(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"category: spending-summary", "spending-summary"},
		{"category:13", "13"},
		{" 7 ", "7"},
		{13, "13"},
		{nil, ""},
		{"category: ", ""},
	}

	for _, tt := range tests {
		if got := categoryID(tt.in); got != tt.want {
			t.Errorf("categoryID(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
