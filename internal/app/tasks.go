package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/ytscribe/internal/captions"
	"github.com/patrickprogramme/ytscribe/internal/channel"
	"github.com/patrickprogramme/ytscribe/internal/clipboard"
	"github.com/patrickprogramme/ytscribe/internal/fetch"
	"github.com/patrickprogramme/ytscribe/internal/fsutil"
	"github.com/patrickprogramme/ytscribe/internal/page"
	"github.com/patrickprogramme/ytscribe/internal/renderer"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// apiKeySetter est satisfait par les browsers capables d'adopter une clé
// d'API découverte à la volée (internal/innertube).
type apiKeySetter interface {
	SetAPIKey(key string)
}

// runCaptions traite une URL de lecture : extraction de la réponse player,
// choix de la piste, téléchargement, recompilation éventuelle en SRT, puis
// sauvegarde.
func (a *App) runCaptions(ctx context.Context, url string) error {
	videoID, err := page.VideoID(url)
	if err != nil {
		return err
	}

	html, err := fetch.FetchHTML(ctx, page.WatchURL(videoID), defaultFetchTimeout, maxPayloadBytes)
	if err != nil {
		return fmt.Errorf("fetch watch page: %w", err)
	}

	player, err := page.PlayerResponse(html)
	if err != nil {
		return fmt.Errorf("player response: %w", err)
	}

	title := renderer.DigString(player, "videoDetails", "title")
	if title == "" {
		title = videoID
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Vidéo : %s", title))

	tracks := captions.TracksFromPlayerResponse(player)
	track, ok := captions.PickTrack(tracks, a.cfg.Captions.Languages)
	if !ok {
		// pas de sous-titres : fin propre, pas une erreur fatale
		a.ui.PrintInfo(ctx, "Aucune piste de sous-titres disponible pour cette vidéo.")
		return nil
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Piste choisie : %s (%s)", track.Name, track.Code))

	format, err := model.ParseFormat(a.cfg.Captions.Format)
	if err != nil {
		return err
	}

	dl, err := captions.Download(ctx, title, track, format, defaultFetchTimeout, maxPayloadBytes)
	if err != nil {
		return err
	}

	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(title))
	}

	// payload brut tel que servi, si demandé
	if a.cfg.Captions.SaveRaw {
		rawPath, err := fsutil.SaveFileUnique(outDir, dl.Filename(dl.Format), dl.Data, true)
		if err != nil {
			return fmt.Errorf("save raw captions: %w", err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Payload brut écrit dans :\n%s", rawPath))
	}

	var data []byte
	if format == model.FormatSRT {
		srt, err := dl.SRT()
		if err != nil {
			if errors.Is(err, captions.ErrNoCaptions) {
				a.ui.PrintInfo(ctx, "Le payload ne contient aucun sous-titre exploitable.")
				return nil
			}
			return fmt.Errorf("compile srt: %w", err)
		}
		data = []byte(srt)
	} else {
		data = dl.Data
	}

	outPath, err := fsutil.SaveFileUnique(outDir, dl.Filename(format), data, true)
	if err != nil {
		return fmt.Errorf("save captions: %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Sous-titres écrits dans :\n%s", outPath))

	// copie du chemin dans le presse-papier (best-effort)
	if err := clipboard.WriteAll(outPath); err == nil {
		a.ui.PrintInfo(ctx, "Chemin copié dans le presse-papier.")
	}
	return nil
}

// runChannel traite une URL de chaîne : extraction de ytInitialData sur la
// page /videos, première page de contenus, puis pagination via le RPC browse
// (recherche si un texte a été fourni).
func (a *App) runChannel(ctx context.Context, url string) error {
	ch, err := channel.New(url)
	if err != nil {
		return err
	}

	html, err := fetch.FetchHTML(ctx, ch.VideosURL, defaultFetchTimeout, maxPayloadBytes)
	if err != nil {
		return fmt.Errorf("fetch channel page: %w", err)
	}

	// absence des données initiales = échec dur, la page ne porte rien
	initial, err := page.InitialData(html)
	if err != nil {
		return fmt.Errorf("initial data: %w", err)
	}

	// la page porte souvent la clé d'API du RPC browse dans son ytcfg ;
	// on la récupère si le client sait la recevoir
	if cfg, err := page.YtCfg(html); err == nil {
		if key := renderer.DigString(cfg, "INNERTUBE_API_KEY"); key != "" {
			if setter, ok := a.browser.(apiKeySetter); ok {
				setter.SetAPIKey(key)
			}
		}
	}

	name := channel.NameFromInitialData(initial)
	browseID := channel.IDFromInitialData(initial)
	if browseID == "" {
		return fmt.Errorf("identifiant de chaîne introuvable dans la page %s", ch.VideosURL)
	}
	a.printChannelSummary(ctx, name, browseID, initial)

	var records []model.ContentRecord
	var pager *channel.Pager

	if a.flags.Query != "" {
		// recherche : tout passe par le RPC browse, y compris la première page
		pager = channel.NewPager(a.browser, browseID, a.flags.Query, channel.ListSearch)
	} else {
		// liste des vidéos : la première page vient du HTML, la suite du RPC
		var token string
		if contents, ok := renderer.FindContentList(initial); ok {
			var first []model.ContentRecord
			first, token = renderer.ParseContents(contents)
			records = append(records, first...)
		}
		pager = channel.ResumePager(a.browser, browseID, channel.ListVideos, token)
	}

	pagesDone := 0
	if len(records) > 0 {
		pagesDone = 1
	}
	for pager.HasMore() {
		if a.cfg.Channel.MaxPages > 0 && pagesDone >= a.cfg.Channel.MaxPages {
			break
		}
		batch, err := pager.Next(ctx)
		if err != nil {
			return err
		}
		records = append(records, batch...)
		pagesDone++
	}

	if len(records) == 0 {
		a.ui.PrintInfo(ctx, "Aucun contenu trouvé.")
		return nil
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("%d contenus collectés en %d page(s).", len(records), pagesDone))

	return a.saveRecords(ctx, name, records)
}

// printChannelSummary affiche nom, identifiant et compteur d'abonnés si connus.
func (a *App) printChannelSummary(ctx context.Context, name, browseID string, initial map[string]any) {
	if name == "" {
		name = browseID
	}
	line := fmt.Sprintf("Chaîne : %s (%s)", name, browseID)
	if subs := channel.SubscriberCount(initial); subs != nil {
		line += fmt.Sprintf(", %.0f abonnés", *subs)
	}
	a.ui.PrintInfo(ctx, line)
	if desc := channel.DescriptionFromInitialData(initial); desc != "" {
		a.ui.PrintInfo(ctx, desc)
	}
}

// saveRecords sérialise les enregistrements en JSON indenté et les écrit
// atomiquement dans le dossier de sortie.
func (a *App) saveRecords(ctx context.Context, name string, records []model.ContentRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	title := strings.TrimSpace(name)
	if title == "" {
		title = "Channel"
	}
	tag := "videos"
	if a.flags.Query != "" {
		// le texte de recherche finit dans le nom de fichier : on le nettoie
		tag = "search " + fsutil.SanitizeFilename(a.flags.Query)
	}
	fileName := fsutil.TaggedFilename(title, tag, ".json")

	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(title))
	}

	outPath, err := fsutil.SaveFileUnique(outDir, fileName, data, true)
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Enregistrements écrits dans :\n%s", outPath))
	return nil
}
