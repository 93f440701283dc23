// Package app orchestre le flux principal : intake d'URL, extraction des
// payloads de la page, téléchargement/recompilation des sous-titres ou
// pagination des contenus d'une chaîne, puis sauvegarde sur disque.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/ytscribe/internal/channel"
	"github.com/patrickprogramme/ytscribe/internal/config"
	"github.com/patrickprogramme/ytscribe/internal/page"
	"github.com/patrickprogramme/ytscribe/internal/ui"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

const (
	defaultFetchTimeout = 15 * time.Second
	maxPayloadBytes     = int64(10_000_000)
)

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	URL        string
	Query      string // recherche dans la chaîne (implique une URL de chaîne)
	Format     string // surcharge captions.format
	Lang       string // surcharge captions.languages (prioritaire)
	Pages      int    // surcharge channel.max_pages
	OutDir     string // surcharge output_dir
	SaveRaw    bool   // surcharge captions.save_raw
}

// App orchestre les différentes dépendances (UI, Browser, FS...)
type App struct {
	cfg     *config.Config
	ui      ui.Interface
	flags   *CLIFlags
	browser channel.Browser
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, browser channel.Browser) *App {
	return &App{
		cfg:     cfg,
		ui:      uiClient,
		flags:   flags,
		browser: browser,
	}
}

// Run exécute le flux principal : résolution de l'URL (flag > clipboard >
// prompt), application des surcharges CLI, puis aiguillage vidéo / chaîne.
func (a *App) Run(ctx context.Context) error {
	// Récupération de l'URL : priorité flag > clipboard > prompt
	url := a.flags.URL
	if url == "" {
		u, err := a.ui.GetSourceURL(ctx)
		if err != nil {
			return fmt.Errorf("get url: %w", err)
		}
		url = u
	}

	// surcharges CLI -> config
	a.applyFlagOverrides()

	// vérification statique du dossier de sortie
	warnings, err := a.cfg.ValidateOutputDir()
	if err != nil {
		return fmt.Errorf("dossier de sortie: %w", err)
	}
	for _, w := range warnings {
		a.ui.PrintError(ctx, "warning: "+w)
	}

	switch {
	case page.IsWatchURL(url):
		return a.runCaptions(ctx, url)
	case page.IsYouTubeURL(url):
		return a.runChannel(ctx, url)
	default:
		return fmt.Errorf("url non reconnue: %q", url)
	}
}

func (a *App) applyFlagOverrides() {
	if a.flags.OutDir != "" {
		a.cfg.OutputDir = a.flags.OutDir
	}
	if a.flags.Format != "" {
		if _, err := model.ParseFormat(strings.ToLower(a.flags.Format)); err == nil {
			a.cfg.Captions.Format = strings.ToLower(a.flags.Format)
		}
	}
	if a.flags.Lang != "" {
		// la langue passée en flag devient la préférence prioritaire
		a.cfg.Captions.Languages = append([]string{a.flags.Lang}, a.cfg.Captions.Languages...)
	}
	if a.flags.Pages > 0 {
		a.cfg.Channel.MaxPages = a.flags.Pages
	}
	if a.flags.SaveRaw {
		a.cfg.Captions.SaveRaw = true
	}
}
