package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/patrickprogramme/ytscribe/internal/app"
	"github.com/patrickprogramme/ytscribe/internal/assets"
	"github.com/patrickprogramme/ytscribe/internal/bootstrap"
	"github.com/patrickprogramme/ytscribe/internal/config"
	"github.com/patrickprogramme/ytscribe/internal/innertube"
	"github.com/patrickprogramme/ytscribe/internal/ui"
)

func main() {
	flags := parseFlags()

	// variables d'environnement locales (.env optionnel)
	_ = godotenv.Load()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "ytscribe.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "ytscribe.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// charger la config depuis flags.ConfigPath
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// la clé d'API d'environnement surcharge celle de la config
	apiKey := cfg.InnerTube.APIKey
	if v := os.Getenv("YTSCRIBE_API_KEY"); v != "" {
		apiKey = v
	}
	browser := innertube.New(apiKey).
		WithLocale(cfg.InnerTube.HL, cfg.InnerTube.GL).
		WithClientVersion(cfg.InnerTube.ClientVersion)

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, browser)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "ytscribe.yaml", "path to config file")
	flag.StringVar(&f.URL, "url", "", "URL YouTube, vidéo ou chaîne (optionnel)")
	flag.StringVar(&f.Query, "query", "", "texte de recherche dans la chaîne")
	flag.StringVar(&f.Format, "format", "", "format de sortie des sous-titres: srt, xml ou json3")
	flag.StringVar(&f.Lang, "lang", "", "code langue préféré pour les sous-titres (ex: en, a.en)")
	flag.IntVar(&f.Pages, "pages", 0, "nombre maximum de pages à paginer (0 = config)")
	flag.StringVar(&f.OutDir, "out", "", "dossier de sortie (surcharge la config)")
	flag.BoolVar(&f.SaveRaw, "raw", false, "conserver aussi le payload brut tel que servi")
	flag.Parse()
	return f
}
