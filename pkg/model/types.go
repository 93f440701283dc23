package model

import "fmt"

// Seconds est un alias explicite pour représenter une durée en secondes.
type Seconds int64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

func (s Seconds) Milliseconds() int64 {
	return int64(s) * 1000
}

// constantes pour les formats de sous-titres gérés
type Format string

const (
	FormatSRT   Format = "srt"
	FormatXML   Format = "xml"
	FormatJSON3 Format = "json3"
)

// ParseFormat : du format en chaine à la constante de type Format,
// retourne une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "srt":
		return FormatSRT, nil
	case "xml":
		return FormatXML, nil
	case "json3", "json":
		return FormatJSON3, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// IsRaw indique si le format correspond au payload brut tel que servi
// par la plateforme (aucune recompilation nécessaire avant sauvegarde).
func (f Format) IsRaw() bool {
	return f == FormatXML || f == FormatJSON3
}

// Extension retourne l'extension de fichier associée (json3 est servi en .json).
func (f Format) Extension() string {
	if f == FormatJSON3 {
		return ".json"
	}
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
