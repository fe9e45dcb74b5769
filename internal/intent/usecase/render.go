package usecase

import (
	"fmt"
	"sort"
	"strings"

	"card-consumption-assistant/internal/intent"
)

// renderQueries substitutes the extracted slots and the customer id into the
// SQL templates. Longer placeholders win over their prefixes, so "&string1"
// is never read as "&string" followed by "1". Missing slots become empty.
func renderQueries(templates []any, slots map[string]*string, customerID string) []string {
	values := make(map[string]string, len(slots)+1)
	for k, v := range slots {
		if !strings.HasPrefix(k, "&") {
			continue
		}
		if v != nil {
			values[k] = *v
		} else {
			values[k] = ""
		}
	}
	for _, k := range []string{intent.KeyStartDate, intent.KeyEndDate, intent.KeyStore1, intent.KeyStore2, intent.KeyCategory} {
		if _, ok := values[k]; !ok {
			values[k] = ""
		}
	}
	values[intent.KeyCustomerID] = customerID

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, values[k])
	}
	r := strings.NewReplacer(pairs...)

	queries := make([]string, 0, len(templates))
	for _, t := range templates {
		if t == nil {
			continue
		}
		s, ok := t.(string)
		if !ok {
			s = fmt.Sprint(t)
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		queries = append(queries, r.Replace(s))
	}
	return queries
}

// categoryID reads a template id from "category: 13" or a bare "13".
func categoryID(v any) string {
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if _, after, found := strings.Cut(s, ":"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(s)
}
