package renderer

import (
	"strings"

	"github.com/patrickprogramme/ytscribe/internal/numtext"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// ParseContents normalise une liste de nœuds renderer en enregistrements
// canoniques et extrait, le cas échéant, le jeton de continuation porté par
// un nœud "continuationItemRenderer" (jamais émis comme enregistrement).
//
// Classification, dans cet ordre de priorité :
//   - richItemRenderer enveloppant un videoRenderer ou un reelItemRenderer ;
//   - itemSectionRenderer enveloppant un videoRenderer ;
//   - continuationItemRenderer portant le jeton de page suivante.
//
// Les formes de nœud non reconnues sont ignorées silencieusement : un type
// de renderer inconnu ne doit jamais faire échouer le lot. Un videoId
// manquant abandonne l'enregistrement concerné, pas ses voisins.
func ParseContents(contents []any) ([]model.ContentRecord, string) {
	records := make([]model.ContentRecord, 0, len(contents))
	var token string

	for _, node := range contents {
		switch {
		case Dig(node, "richItemRenderer") != nil:
			item := Dig(node, "richItemRenderer", "content")
			vr, ok := Dig(item, "videoRenderer").(map[string]any)
			if !ok {
				vr, ok = Dig(item, "reelItemRenderer").(map[string]any)
			}
			if !ok {
				continue // forme de rich item inconnue
			}
			if rec, ok := recordFromRenderer(vr); ok {
				records = append(records, rec)
			}

		case Dig(node, "itemSectionRenderer") != nil:
			vr, ok := Dig(node, "itemSectionRenderer", "contents", 0, "videoRenderer").(map[string]any)
			if !ok {
				continue
			}
			if rec, ok := recordFromRenderer(vr); ok {
				records = append(records, rec)
			}

		case Dig(node, "continuationItemRenderer") != nil:
			if t := DigString(node, "continuationItemRenderer", "continuationEndpoint", "continuationCommand", "token"); t != "" {
				token = t
			}

		default:
			// renderer inconnu : on passe au nœud suivant
		}
	}

	return records, token
}

// recordFromRenderer construit un enregistrement canonique depuis un nœud
// videoRenderer / reelItemRenderer. videoId est obligatoire : son absence
// fait abandonner cet enregistrement (false). Les autres champs sont extraits
// en best-effort, chacun indépendamment des autres.
func recordFromRenderer(vr map[string]any) (model.ContentRecord, bool) {
	id := cleanText(vr["videoId"])
	if id == "" {
		return model.ContentRecord{}, false
	}

	rec := model.ContentRecord{
		VideoID:         id,
		Title:           resolveTitle(vr),
		Description:     optDescription(vr),
		ViewCount:       optViewCount(vr),
		DurationSeconds: optDuration(vr),
	}
	return rec, true
}

// resolveTitle résout le titre depuis une run-list (runs joints par un espace)
// ou, à défaut, depuis un champ texte simple (title.simpleText, puis
// headline.simpleText pour les shorts).
func resolveTitle(vr map[string]any) string {
	if runs, ok := Dig(vr, "title", "runs").([]any); ok {
		if s := joinRuns(runs); s != "" {
			return s
		}
	}
	if s := DigString(vr, "title", "simpleText"); s != "" {
		return s
	}
	return DigString(vr, "headline", "simpleText")
}

// joinRuns joint le texte de chaque run avec un espace simple.
func joinRuns(runs []any) string {
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		if s := DigString(run, "text"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// optViewCount extrait le compteur de vues depuis le texte localisé
// "N views". nil si absent ou non parsable, jamais d'erreur propagée.
func optViewCount(vr map[string]any) *float64 {
	text := DigString(vr, "viewCountText", "simpleText")
	if text == "" {
		text = DigString(vr, "viewCountText", "runs", 0, "text")
	}
	if text == "" {
		return nil
	}

	// "1,234,567 views" -> "1234567" ; "1.2M views" -> "1.2M"
	first := strings.Fields(text)
	if len(first) == 0 {
		return nil
	}
	n, err := numtext.ParseSuffixedCount(strings.ReplaceAll(first[0], ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// optDuration extrait la durée depuis le texte "HH:MM:SS" / "MM:SS".
func optDuration(vr map[string]any) *model.Seconds {
	text := DigString(vr, "lengthText", "simpleText")
	if text == "" {
		text = DigString(vr, "lengthText", "runs", 0, "text")
	}
	if text == "" {
		return nil
	}
	d, err := numtext.ParseClockDuration(text)
	if err != nil {
		return nil
	}
	return &d
}

// optDescription extrait l'extrait de description (runs joints par un espace).
func optDescription(vr map[string]any) *string {
	runs, ok := Dig(vr, "descriptionSnippet", "runs").([]any)
	if !ok {
		return nil
	}
	s := joinRuns(runs)
	if s == "" {
		return nil
	}
	return &s
}
