package renderer

import (
	"encoding/json"
	"testing"
)

func decodeDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document de test invalide: %v", err)
	}
	return doc
}

func TestDig(t *testing.T) {
	doc := decodeDoc(t, `{"a": {"b": [{"c": "trouvé"}, {"c": "second"}]}}`)

	tests := []struct {
		name string
		keys []any
		want any
	}{
		{name: "chemin valide", keys: []any{"a", "b", 0, "c"}, want: "trouvé"},
		{name: "index valide", keys: []any{"a", "b", 1, "c"}, want: "second"},
		{name: "clé absente", keys: []any{"a", "x"}, want: nil},
		{name: "index hors bornes", keys: []any{"a", "b", 5}, want: nil},
		{name: "index négatif", keys: []any{"a", "b", -1}, want: nil},
		{name: "clé sur un tableau", keys: []any{"a", "b", "c"}, want: nil},
		{name: "index sur un objet", keys: []any{"a", 0}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dig(doc, tt.keys...); got != tt.want {
				t.Errorf("Dig(%v) = %v, attendu %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestDigString(t *testing.T) {
	doc := decodeDoc(t, `{"s": "  espaces  ", "n": 42}`)
	if got := DigString(doc, "s"); got != "espaces" {
		t.Errorf("DigString(s) = %q", got)
	}
	if got := DigString(doc, "n"); got != "" {
		t.Errorf("DigString sur non-string = %q, attendu vide", got)
	}
	if got := DigString(doc, "absent"); got != "" {
		t.Errorf("DigString sur absent = %q, attendu vide", got)
	}
}

func TestFindContentListGrid(t *testing.T) {
	doc := decodeDoc(t, `{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [
			{"tabRenderer": {"title": "Home"}},
			{"tabRenderer": {"content": {"richGridRenderer": {"contents": [
				{"richItemRenderer": {}}, {"richItemRenderer": {}}
			]}}}}
		]}}
	}`)

	list, ok := FindContentList(doc)
	if !ok || len(list) != 2 {
		t.Fatalf("FindContentList = (%d éléments, %v), attendu 2 éléments", len(list), ok)
	}
}

func TestFindContentListSectionFallback(t *testing.T) {
	// grille absente : on retombe sur la liste de sections du même onglet
	doc := decodeDoc(t, `{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [
			{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
				{"itemSectionRenderer": {}}
			]}}}}
		]}}
	}`)

	list, ok := FindContentList(doc)
	if !ok || len(list) != 1 {
		t.Fatalf("FindContentList = (%d éléments, %v), attendu 1 élément", len(list), ok)
	}
}

func TestFindContentListAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "document vide", raw: `{}`},
		{name: "tabs absent", raw: `{"contents": {"twoColumnBrowseResultsRenderer": {}}}`},
		{name: "onglets sans contenu", raw: `{"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {}}]}}}`},
		{name: "grille vide", raw: `{"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"richGridRenderer": {"contents": []}}}}]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if list, ok := FindContentList(decodeDoc(t, tt.raw)); ok {
				t.Errorf("FindContentList = (%d éléments, true), attendu false", len(list))
			}
		})
	}
}

func TestFindSearchedContentListExpandableTab(t *testing.T) {
	doc := decodeDoc(t, `{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [
			{"tabRenderer": {"title": "Videos"}},
			{"expandableTabRenderer": {"content": {"sectionListRenderer": {"contents": [
				{"itemSectionRenderer": {}}
			]}}}}
		]}}
	}`)

	list, ok := FindSearchedContentList(doc)
	if !ok || len(list) != 1 {
		t.Fatalf("FindSearchedContentList = (%d éléments, %v), attendu 1 élément", len(list), ok)
	}
}

func TestFindSearchedContentListContinuation(t *testing.T) {
	doc := decodeDoc(t, `{
		"onResponseReceivedActions": [
			{"appendContinuationItemsAction": {"continuationItems": [
				{"richItemRenderer": {}}, {"continuationItemRenderer": {}}
			]}}
		]
	}`)

	list, ok := FindSearchedContentList(doc)
	if !ok || len(list) != 2 {
		t.Fatalf("FindSearchedContentList = (%d éléments, %v), attendu 2 éléments", len(list), ok)
	}
}

func TestFindSearchedContentListAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "document vide", raw: `{}`},
		{name: "contents sans onglet expandable", raw: `{"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {}}]}}}`},
		{name: "actions vides", raw: `{"onResponseReceivedActions": []}`},
		{name: "action sans items", raw: `{"onResponseReceivedActions": [{"appendContinuationItemsAction": {}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if list, ok := FindSearchedContentList(decodeDoc(t, tt.raw)); ok {
				t.Errorf("FindSearchedContentList = (%d éléments, true), attendu false", len(list))
			}
		})
	}
}
