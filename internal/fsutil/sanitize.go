package fsutil

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Les titres de vidéos et de chaînes servent de base aux noms de fichiers
// générés ; on borne la base pour laisser la place au suffixe " (tag).ext"
// ajouté par TaggedFilename.
const maxBaseLen = 180

// forbiddenRunes : caractères refusés par au moins un des systèmes de
// fichiers visés (Windows compris), \x00-\x1F couvrant les caractères de
// contrôle qui traînent parfois dans les titres.
var forbiddenRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// spaceRuns détecte les suites d'espaces laissées par les remplacements.
var spaceRuns = regexp.MustCompile(`\s+`)

// SanitizeFilename transforme un titre de vidéo ou de chaîne en base de nom
// de fichier sûre :
//   - ":" devient "-" (fréquent dans les titres, interdit sous Windows)
//   - les autres caractères interdits deviennent des espaces
//   - espaces normalisés, points terminaux supprimés
//   - longueur bornée, première lettre en majuscule
//
// Un titre vide, ou qui ne contient que des caractères interdits,
// donne "untitled".
func SanitizeFilename(title string) string {
	if title == "" {
		return "untitled"
	}

	title = strings.ReplaceAll(title, ":", "-")

	clean := forbiddenRunes.ReplaceAllString(title, " ")
	clean = strings.TrimSpace(clean)
	clean = spaceRuns.ReplaceAllString(clean, " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if len(clean) > maxBaseLen {
		clean = clean[:maxBaseLen]
	}
	return CapitalizeFirst(clean)
}

// TaggedFilename compose le nom de fichier complet "Base (tag).ext" à partir
// d'un titre brut : code langue pour les sous-titres ("Titre (en).srt"),
// type de liste pour les enregistrements ("Chaîne (videos).json").
// Un tag vide est omis. ext doit inclure le point.
func TaggedFilename(title, tag, ext string) string {
	base := SanitizeFilename(title)
	if tag != "" {
		base = fmt.Sprintf("%s (%s)", base, tag)
	}
	return base + ext
}

// CapitalizeFirst met en majuscule le premier caractère (rune) de s.
// Ne touche pas au reste de la chaîne. Vide -> retourne "".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
