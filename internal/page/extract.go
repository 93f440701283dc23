// Package page extrait les blobs JSON embarqués dans les pages HTML de la
// plateforme : ytInitialData, ytInitialPlayerResponse et ytcfg. La
// localisation se fait par balise <script> (goquery) puis expression
// régulière sur l'affectation, suivie d'un décodage JSON strict.
package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrInitialDataNotFound : l'affectation attendue est absente du HTML.
// Échec dur : la page ne porte pas les données, ce n'est pas un "pas de
// résultats".
var ErrInitialDataNotFound = errors.New("variable globale attendue introuvable dans le HTML")

var (
	reInitialData    = regexp.MustCompile(`(?s)var ytInitialData\s*=\s*(\{.*?\});`)
	rePlayerResponse = regexp.MustCompile(`(?s)var ytInitialPlayerResponse\s*=\s*(\{.*?\});`)
	reYtCfg          = regexp.MustCompile(`(?s)ytcfg\.set\((\{.*?\})\);`)
)

// InitialData extrait le JSON affecté à "var ytInitialData" dans le HTML
// d'une page de chaîne. Absence = ErrInitialDataNotFound.
func InitialData(html string) (map[string]any, error) {
	return extractAssignment(html, "ytInitialData", reInitialData)
}

// PlayerResponse extrait le JSON affecté à "var ytInitialPlayerResponse"
// dans le HTML d'une page de lecture.
func PlayerResponse(html string) (map[string]any, error) {
	return extractAssignment(html, "ytInitialPlayerResponse", rePlayerResponse)
}

// YtCfg extrait le JSON passé à "ytcfg.set(...)".
func YtCfg(html string) (map[string]any, error) {
	return extractAssignment(html, "ytcfg.set(", reYtCfg)
}

// extractAssignment localise le <script> contenant marker puis capture le
// blob via re. Le blob est décodé strictement : un JSON invalide est une
// erreur, pas un résultat vide.
func extractAssignment(html, marker string, re *regexp.Regexp) (map[string]any, error) {
	blob := findInScripts(html, marker, re)
	if blob == "" {
		// fallback : regex directe sur le document entier, utile quand le
		// payload n'est pas du HTML bien formé
		if m := re.FindStringSubmatch(html); len(m) > 1 {
			blob = m[1]
		}
	}
	if blob == "" {
		return nil, fmt.Errorf("%s: %w", marker, ErrInitialDataNotFound)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return nil, fmt.Errorf("décodage du blob %s: %w", marker, err)
	}
	return doc, nil
}

// findInScripts parcourt les balises <script> du document et retourne la
// première capture de re dans un script contenant marker.
func findInScripts(html, marker string, re *regexp.Regexp) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var blob string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, marker) {
			return true
		}
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			blob = m[1]
			return false
		}
		return true
	})
	return blob
}
