package captions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/ytscribe/internal/fetch"
	"github.com/patrickprogramme/ytscribe/internal/fsutil"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// CaptionDownload contient la piste + contexte utile (titre) + payload.
type CaptionDownload struct {
	Title  string
	Track  model.CaptionTrack
	Format model.Format // format effectivement téléchargé (xml ou json3)
	Data   []byte       // nil tant que non téléchargé
}

// Download télécharge le payload de la piste pour le format demandé.
// Le SRT étant recompilé localement, demander du SRT télécharge le XML.
func Download(ctx context.Context, title string, track model.CaptionTrack, format model.Format, timeout time.Duration, maxBytes int64) (CaptionDownload, error) {
	wire := format
	if format == model.FormatSRT {
		wire = model.FormatXML
	}

	data, err := fetch.FetchBytesWithTimeout(ctx, track.URLForFormat(wire), timeout, maxBytes)
	if err != nil {
		return CaptionDownload{}, fmt.Errorf("download captions: %w", err)
	}

	return CaptionDownload{
		Title:  title,
		Track:  track,
		Format: wire,
		Data:   data,
	}, nil
}

// Cues parse le payload téléchargé selon son format (dialectes XML en
// cascade, ou json3) et retourne la séquence de cues normalisée.
func (d CaptionDownload) Cues() ([]Cue, error) {
	if len(d.Data) == 0 {
		return nil, fmt.Errorf("Cues: pas de données dans CaptionDownload")
	}
	if d.Format == model.FormatJSON3 {
		raw, err := ParseJSON3(d.Data)
		if err != nil {
			return nil, err
		}
		return raw.Cues(), nil
	}
	return ParseTimedText(d.Data)
}

// SRT recompile le payload en document SubRip.
func (d CaptionDownload) SRT() (string, error) {
	cues, err := d.Cues()
	if err != nil {
		return "", err
	}
	return CompileSRT(cues), nil
}

// Filename compose le nom de fichier pour ce téléchargement : titre
// sanitizé, code langue entre parenthèses, extension du format demandé.
// Exemple : "The simplest tech stack (en).srt".
func (d CaptionDownload) Filename(format model.Format) string {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "captions"
	}

	lang := strings.TrimSpace(d.Track.Code)
	if lang == "" {
		lang = "und"
	}

	return fsutil.TaggedFilename(title, lang, format.Extension())
}
