package model

import (
	"fmt"
	"net/url"
	"strings"
)

// valeurs du paramètre de requête "fmt" sélectionnant la livraison XML ou JSON
const (
	wireParamXML   = "srv3"
	wireParamJSON3 = "json3"
)

// CaptionTrack identifie une piste de sous-titres découverte dans les
// métadonnées d'une vidéo. Immuable après construction.
//
//   - URL : gabarit pointant vers la livraison des captions ; le paramètre
//     de requête "fmt" permet de basculer entre XML et JSON.
//   - Name : nom affichable, résolu depuis simpleText ou le premier run.
//   - Code : code langue normalisé ("a.en" -> "en").
type CaptionTrack struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NormalizeLangCode normalise un vssId en code langue :
// on retire le marqueur de génération automatique ("a.") et le point
// initial des pistes manuelles (".en" -> "en").
func NormalizeLangCode(vssID string) string {
	code := strings.TrimSpace(vssID)
	code = strings.TrimPrefix(code, "a.")
	code = strings.TrimPrefix(code, ".")
	return code
}

// URLForFormat retourne l'URL de la piste pour le format demandé en
// positionnant le paramètre "fmt" (srv3 pour le XML, json3 pour le JSON).
// Si l'URL est invalide ou le format inconnu, l'URL d'origine est retournée
// telle quelle : le serveur tranchera.
func (t CaptionTrack) URLForFormat(f Format) string {
	var wire string
	switch f {
	case FormatJSON3:
		wire = wireParamJSON3
	case FormatXML, FormatSRT:
		// le SRT est recompilé localement depuis la livraison XML
		wire = wireParamXML
	default:
		return t.URL
	}

	u, err := url.Parse(t.URL)
	if err != nil {
		return t.URL
	}
	q := u.Query()
	q.Set("fmt", wire)
	u.RawQuery = q.Encode()
	return u.String()
}

func (t CaptionTrack) String() string {
	return fmt.Sprintf("CaptionTrack(code=%s, name=%q)", t.Code, t.Name)
}
