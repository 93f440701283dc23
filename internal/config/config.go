package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/ytscribe/internal/assets"
	"github.com/patrickprogramme/ytscribe/internal/fsutil"
	"github.com/patrickprogramme/ytscribe/pkg/model"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Sous-titres
	Captions struct {
		Languages []string `yaml:"languages"`
		Format    string   `yaml:"format"`
		SaveRaw   bool     `yaml:"save_raw"`
	} `yaml:"captions"`

	// Chaînes
	Channel struct {
		MaxPages int `yaml:"max_pages"`
	} `yaml:"channel"`

	// Client browse
	InnerTube struct {
		APIKey        string `yaml:"api_key"`
		ClientVersion string `yaml:"client_version"`
		HL            string `yaml:"hl"`
		GL            string `yaml:"gl"`
	} `yaml:"innertube"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = true

	// Sous-titres
	c.Captions.Languages = []string{"en", "a.en"}
	c.Captions.Format = string(model.FormatSRT)
	c.Captions.SaveRaw = false

	// Chaînes
	c.Channel.MaxPages = 10

	// Client browse
	c.InnerTube.APIKey = ""
	c.InnerTube.ClientVersion = "2.20250801.01.00"
	c.InnerTube.HL = "en"
	c.InnerTube.GL = "US"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "ytscribe.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Trim and normalize strings
	c.Captions.Format = strings.TrimSpace(strings.ToLower(c.Captions.Format))
	if c.Captions.Format == "" {
		c.Captions.Format = string(model.FormatSRT)
	}
	if _, err := model.ParseFormat(c.Captions.Format); err != nil {
		c.Captions.Format = string(model.FormatSRT)
	}

	// langues : trim, retirer les entrées vides, garder l'ordre
	langs := make([]string, 0, len(c.Captions.Languages))
	for _, l := range c.Captions.Languages {
		l = strings.TrimSpace(l)
		if l != "" {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		langs = []string{"en", "a.en"}
	}
	c.Captions.Languages = langs

	if c.Channel.MaxPages < 0 {
		c.Channel.MaxPages = 0
	}

	c.InnerTube.APIKey = strings.TrimSpace(c.InnerTube.APIKey)
	c.InnerTube.ClientVersion = strings.TrimSpace(c.InnerTube.ClientVersion)
	c.InnerTube.HL = strings.TrimSpace(c.InnerTube.HL)
	c.InnerTube.GL = strings.TrimSpace(c.InnerTube.GL)
}
