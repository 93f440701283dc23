package page

import (
	"errors"
	"testing"
)

func TestInitialData(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>Chaîne</title></head><body>
		<script>var autreChose = 1;</script>
		<script>var ytInitialData = {"metadata": {"channelMetadataRenderer": {"title": "Ma Chaîne"}}};</script>
	</body></html>`

	doc, err := InitialData(html)
	if err != nil {
		t.Fatalf("InitialData: %v", err)
	}
	meta, ok := doc["metadata"].(map[string]any)
	if !ok {
		t.Fatal("clé metadata absente du document décodé")
	}
	if _, ok := meta["channelMetadataRenderer"]; !ok {
		t.Error("channelMetadataRenderer absent")
	}
}

func TestInitialDataAbsent(t *testing.T) {
	html := `<html><body><script>var rien = {};</script></body></html>`
	if _, err := InitialData(html); !errors.Is(err, ErrInitialDataNotFound) {
		t.Errorf("err = %v, ErrInitialDataNotFound attendu", err)
	}
}

func TestInitialDataInvalidJSON(t *testing.T) {
	// blob présent mais non décodable : erreur de décodage, pas un vide
	html := `<script>var ytInitialData = {"clé": pas_du_json};</script>`
	_, err := InitialData(html)
	if err == nil {
		t.Fatal("JSON invalide accepté")
	}
	if errors.Is(err, ErrInitialDataNotFound) {
		t.Error("un blob mal formé ne doit pas être confondu avec une absence")
	}
}

func TestInitialDataFallbackWithoutScripts(t *testing.T) {
	// payload qui n'est pas du HTML bien formé : le repli regex doit suffire
	raw := `garbage avant var ytInitialData = {"ok": true}; garbage après`
	doc, err := InitialData(raw)
	if err != nil {
		t.Fatalf("InitialData: %v", err)
	}
	if v, _ := doc["ok"].(bool); !v {
		t.Errorf("document décodé inattendu: %v", doc)
	}
}

func TestPlayerResponse(t *testing.T) {
	html := `<html><body>
		<script>var ytInitialPlayerResponse = {"videoDetails": {"title": "Une vidéo", "videoId": "abc123"}};</script>
	</body></html>`

	doc, err := PlayerResponse(html)
	if err != nil {
		t.Fatalf("PlayerResponse: %v", err)
	}
	details, ok := doc["videoDetails"].(map[string]any)
	if !ok {
		t.Fatal("videoDetails absent")
	}
	if details["title"] != "Une vidéo" {
		t.Errorf("title = %v", details["title"])
	}
}

func TestYtCfg(t *testing.T) {
	html := `<html><body>
		<script>ytcfg.set({"INNERTUBE_API_KEY": "clé-test", "INNERTUBE_CONTEXT_CLIENT_VERSION": "2.20250801.01.00"});</script>
	</body></html>`

	doc, err := YtCfg(html)
	if err != nil {
		t.Fatalf("YtCfg: %v", err)
	}
	if doc["INNERTUBE_API_KEY"] != "clé-test" {
		t.Errorf("INNERTUBE_API_KEY = %v", doc["INNERTUBE_API_KEY"])
	}
}
