package channel

import (
	"encoding/json"
	"testing"
)

func TestExtractChannelURI(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "forme channel", url: "https://www.youtube.com/channel/UCabc123", want: "/channel/UCabc123"},
		{name: "forme c", url: "https://www.youtube.com/c/MaChaine", want: "/c/MaChaine"},
		{name: "forme user", url: "https://www.youtube.com/user/quelquun", want: "/user/quelquun"},
		{name: "forme handle", url: "https://www.youtube.com/@un.handle-1", want: "/@un.handle-1"},
		{name: "avec chemin résiduel", url: "https://www.youtube.com/channel/UCabc123/videos", want: "/channel/UCabc123"},
		{name: "espaces autour", url: "  https://www.youtube.com/@handle  ", want: "/@handle"},
		{name: "pas une chaîne", url: "https://example.com/autre", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractChannelURI(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractChannelURI(%q) = %q, erreur attendue", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractChannelURI(%q): %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractChannelURI(%q) = %q, attendu %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	ch, err := New("https://www.youtube.com/@handle")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ch.URL != "https://www.youtube.com/@handle" {
		t.Errorf("URL = %q", ch.URL)
	}
	if ch.VideosURL != "https://www.youtube.com/@handle/videos" {
		t.Errorf("VideosURL = %q", ch.VideosURL)
	}
	if ch.ShortsURL != "https://www.youtube.com/@handle/shorts" {
		t.Errorf("ShortsURL = %q", ch.ShortsURL)
	}
	if ch.FeaturedChannelsURL != "https://www.youtube.com/@handle/channels" {
		t.Errorf("FeaturedChannelsURL = %q", ch.FeaturedChannelsURL)
	}
	if ch.AboutURL != "https://www.youtube.com/@handle/about" {
		t.Errorf("AboutURL = %q", ch.AboutURL)
	}
}

func metaDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document de test invalide: %v", err)
	}
	return doc
}

func TestMetadataFromInitialData(t *testing.T) {
	doc := metaDoc(t, `{
		"metadata": {"channelMetadataRenderer": {
			"title": "Ma Chaîne",
			"externalId": "UCabc123",
			"description": "Une description."
		}},
		"header": {"c4TabbedHeaderRenderer": {"subscriberCountText": {"simpleText": "1.2M subscribers"}}}
	}`)

	if got := NameFromInitialData(doc); got != "Ma Chaîne" {
		t.Errorf("NameFromInitialData = %q", got)
	}
	if got := IDFromInitialData(doc); got != "UCabc123" {
		t.Errorf("IDFromInitialData = %q", got)
	}
	if got := DescriptionFromInitialData(doc); got != "Une description." {
		t.Errorf("DescriptionFromInitialData = %q", got)
	}
	subs := SubscriberCount(doc)
	if subs == nil || *subs != 1_200_000 {
		t.Errorf("SubscriberCount = %v, attendu 1.2M", subs)
	}
}

func TestSubscriberCountAbsent(t *testing.T) {
	if subs := SubscriberCount(metaDoc(t, `{}`)); subs != nil {
		t.Errorf("SubscriberCount = %v, attendu nil", subs)
	}
	malformed := metaDoc(t, `{"header": {"c4TabbedHeaderRenderer": {"subscriberCountText": {"simpleText": "beaucoup"}}}}`)
	if subs := SubscriberCount(malformed); subs != nil {
		t.Errorf("SubscriberCount sur texte non parsable = %v, attendu nil", subs)
	}
}
