package captions

import (
	"github.com/patrickprogramme/ytscribe/internal/renderer"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// TracksFromPlayerResponse extrait les pistes de sous-titres déclarées dans
// la réponse player d'une vidéo. Le nom affichable vient de name.simpleText
// ou, à défaut, du texte du premier run (certaines vidéos n'ont que des runs).
// Les entrées sans baseUrl sont ignorées.
func TracksFromPlayerResponse(doc map[string]any) []model.CaptionTrack {
	raw, _ := renderer.Dig(doc, "captions", "playerCaptionsTracklistRenderer", "captionTracks").([]any)

	tracks := make([]model.CaptionTrack, 0, len(raw))
	for _, entry := range raw {
		url := renderer.DigString(entry, "baseUrl")
		if url == "" {
			continue
		}

		name := renderer.DigString(entry, "name", "simpleText")
		if name == "" {
			if runs, ok := renderer.Dig(entry, "name", "runs").([]any); ok {
				for _, run := range runs {
					if s := renderer.DigString(run, "text"); s != "" {
						name = s
						break
					}
				}
			}
		}

		// vssId plutôt que languageCode : il distingue les pistes
		// auto-générées ("a.en") des pistes manuelles (".en")
		code := renderer.DigString(entry, "vssId")
		if code == "" {
			code = renderer.DigString(entry, "languageCode")
		}

		tracks = append(tracks, model.CaptionTrack{
			URL:  url,
			Name: name,
			Code: model.NormalizeLangCode(code),
		})
	}
	return tracks
}

// PickTrack retourne la première piste dont le code correspond à l'une des
// langues demandées (dans l'ordre de préférence), sinon la première piste
// disponible. false si aucune piste.
func PickTrack(tracks []model.CaptionTrack, langs []string) (model.CaptionTrack, bool) {
	if len(tracks) == 0 {
		return model.CaptionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.Code == lang {
				return t, true
			}
		}
	}
	return tracks[0], true
}
