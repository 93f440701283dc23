package model

import "fmt"

// ContentRecord est l'enregistrement canonique produit pour chaque élément
// d'une liste de contenus (vidéos, shorts, résultats de recherche).
//
// Seul VideoID est obligatoire. Les champs optionnels utilisent des pointeurs :
// nil signifie "inconnu", jamais une valeur sentinelle. L'échec d'extraction
// d'un champ optionnel ne doit jamais invalider l'enregistrement.
type ContentRecord struct {
	VideoID         string   `json:"video_id"`
	Title           string   `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ViewCount       *float64 `json:"view_count,omitempty"`
	DurationSeconds *Seconds `json:"duration_seconds,omitempty"`
}

// WatchURL retourne l'URL de lecture de la vidéo.
func (r ContentRecord) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + r.VideoID
}

func (r ContentRecord) String() string {
	views := "?"
	if r.ViewCount != nil {
		views = fmt.Sprintf("%.0f", *r.ViewCount)
	}
	dur := "?"
	if r.DurationSeconds != nil {
		dur = r.DurationSeconds.TimestampHHMMSS()
	}
	return fmt.Sprintf("ContentRecord[%s, %q, views=%s, dur=%s]", r.VideoID, r.Title, views, dur)
}
