package renderer

import (
	"encoding/json"
	"testing"
)

func decodeList(t *testing.T, raw string) []any {
	t.Helper()
	var list []any
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("liste de test invalide: %v", err)
	}
	return list
}

func TestParseContentsRichItems(t *testing.T) {
	contents := decodeList(t, `[
		{"richItemRenderer": {"content": {"videoRenderer": {
			"videoId": "abc123",
			"title": {"runs": [{"text": "Titre"}, {"text": "en deux runs"}]},
			"viewCountText": {"simpleText": "1.2M views"},
			"lengthText": {"simpleText": "1:03:22"},
			"descriptionSnippet": {"runs": [{"text": "une description"}]}
		}}}},
		{"richItemRenderer": {"content": {"reelItemRenderer": {
			"videoId": "reel99",
			"headline": {"simpleText": "Un short"}
		}}}},
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "TOKEN-1"}}}}
	]`)

	records, token := ParseContents(contents)
	if token != "TOKEN-1" {
		t.Errorf("token = %q, attendu TOKEN-1", token)
	}
	// le continuationItemRenderer ne produit jamais d'enregistrement
	if len(records) != 2 {
		t.Fatalf("attendu 2 enregistrements, obtenu %d", len(records))
	}

	rec := records[0]
	if rec.VideoID != "abc123" {
		t.Errorf("VideoID = %q", rec.VideoID)
	}
	if rec.Title != "Titre en deux runs" {
		t.Errorf("Title = %q, runs mal joints", rec.Title)
	}
	if rec.ViewCount == nil || *rec.ViewCount != 1_200_000 {
		t.Errorf("ViewCount = %v, attendu 1.2M", rec.ViewCount)
	}
	if rec.DurationSeconds == nil || *rec.DurationSeconds != 3802 {
		t.Errorf("DurationSeconds = %v, attendu 3802", rec.DurationSeconds)
	}
	if rec.Description == nil || *rec.Description != "une description" {
		t.Errorf("Description = %v", rec.Description)
	}

	short := records[1]
	if short.VideoID != "reel99" || short.Title != "Un short" {
		t.Errorf("short inattendu: %+v", short)
	}
	// champs optionnels absents -> nil, jamais de valeur sentinelle
	if short.ViewCount != nil || short.DurationSeconds != nil || short.Description != nil {
		t.Errorf("champs optionnels non nil sur le short: %+v", short)
	}
}

func TestParseContentsItemSection(t *testing.T) {
	contents := decodeList(t, `[
		{"itemSectionRenderer": {"contents": [{"videoRenderer": {
			"videoId": "vid1",
			"title": {"simpleText": "Depuis une section"},
			"viewCountText": {"simpleText": "954 views"}
		}}]}}
	]`)

	records, token := ParseContents(contents)
	if token != "" {
		t.Errorf("token = %q, attendu vide", token)
	}
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].VideoID != "vid1" || records[0].Title != "Depuis une section" {
		t.Errorf("enregistrement inattendu: %+v", records[0])
	}
	if records[0].ViewCount == nil || *records[0].ViewCount != 954 {
		t.Errorf("ViewCount = %v, attendu 954", records[0].ViewCount)
	}
}

func TestParseContentsSkipsUnknownAndInvalid(t *testing.T) {
	contents := decodeList(t, `[
		{"lockupViewModel": {"quelqueChose": true}},
		{"richItemRenderer": {"content": {"adSlotRenderer": {}}}},
		{"richItemRenderer": {"content": {"videoRenderer": {"title": {"simpleText": "sans videoId"}}}}},
		{"richItemRenderer": {"content": {"videoRenderer": {"videoId": "ok1"}}}}
	]`)

	records, token := ParseContents(contents)
	if token != "" {
		t.Errorf("token = %q, attendu vide", token)
	}
	// renderer inconnu, rich item non vidéo et videoId manquant : tous ignorés
	// sans invalider le voisin valide
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].VideoID != "ok1" {
		t.Errorf("VideoID = %q, attendu ok1", records[0].VideoID)
	}
}

func TestParseContentsOptionalFieldsDegrade(t *testing.T) {
	// compteur et durée non parsables : champs nil, enregistrement conservé
	contents := decodeList(t, `[
		{"richItemRenderer": {"content": {"videoRenderer": {
			"videoId": "vid2",
			"viewCountText": {"simpleText": "beaucoup de vues"},
			"lengthText": {"simpleText": "bientôt"}
		}}}}
	]`)

	records, _ := ParseContents(contents)
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].ViewCount != nil {
		t.Errorf("ViewCount = %v, attendu nil", records[0].ViewCount)
	}
	if records[0].DurationSeconds != nil {
		t.Errorf("DurationSeconds = %v, attendu nil", records[0].DurationSeconds)
	}
}

func TestParseContentsEmpty(t *testing.T) {
	records, token := ParseContents(nil)
	if len(records) != 0 || token != "" {
		t.Errorf("ParseContents(nil) = (%d, %q)", len(records), token)
	}
}
