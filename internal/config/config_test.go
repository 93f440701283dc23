package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ytscribe.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// le fichier a été matérialisé depuis l'asset embarqué
	if _, err := os.Stat(path); err != nil {
		t.Errorf("fichier de config non créé: %v", err)
	}

	if cfg.Captions.Format != "srt" {
		t.Errorf("Captions.Format = %q, attendu srt", cfg.Captions.Format)
	}
	if len(cfg.Captions.Languages) == 0 {
		t.Error("Captions.Languages vide")
	}
	if cfg.Channel.MaxPages != 10 {
		t.Errorf("Channel.MaxPages = %d, attendu 10", cfg.Channel.MaxPages)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d, attendu %d", cfg.ConfigVersion, CurrentConfigVersion)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ytscribe.yaml")

	raw := `
output_dir: "sorties"
captions:
  languages: ["fr", "a.fr"]
  format: "JSON3"
channel:
  max_pages: 3
config_version: 1
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("écriture config de test: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputDir != "sorties" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	// le format est normalisé en minuscules
	if cfg.Captions.Format != "json3" {
		t.Errorf("Captions.Format = %q, attendu json3", cfg.Captions.Format)
	}
	if len(cfg.Captions.Languages) != 2 || cfg.Captions.Languages[0] != "fr" {
		t.Errorf("Captions.Languages = %v", cfg.Captions.Languages)
	}
	if cfg.Channel.MaxPages != 3 {
		t.Errorf("Channel.MaxPages = %d", cfg.Channel.MaxPages)
	}
	// champ absent -> valeur par défaut conservée
	if !cfg.SaveInSubdir {
		t.Error("SaveInSubdir = false, défaut attendu true")
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Captions.Format = "inconnu"
	cfg.Captions.Languages = []string{"  ", "", "en "}
	cfg.Channel.MaxPages = -5

	cfg.normalizeConfig()

	if cfg.Captions.Format != "srt" {
		t.Errorf("format inconnu non replié sur srt: %q", cfg.Captions.Format)
	}
	if len(cfg.Captions.Languages) != 1 || cfg.Captions.Languages[0] != "en" {
		t.Errorf("langues non nettoyées: %v", cfg.Captions.Languages)
	}
	if cfg.Channel.MaxPages != 0 {
		t.Errorf("MaxPages négatif non clampé: %d", cfg.Channel.MaxPages)
	}
}
