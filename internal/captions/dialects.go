package captions

import (
	"errors"
	"fmt"
	"html"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoCaptions : aucun des dialectes connus n'a produit de cue.
// Résultat "pas de sous-titres", à traiter comme une absence et non un crash.
var ErrNoCaptions = errors.New("aucun sous-titre exploitable dans le payload")

var reMultiSpace = regexp.MustCompile(` {2,}`)

// collapseText décode les entités HTML et normalise le texte d'un cue :
// newlines remplacés par des espaces, séquences d'espaces réduites à un seul.
func collapseText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return html.UnescapeString(s)
}

// ParseTimedText parse un payload de captions XML en essayant chaque dialecte
// connu, dans cet ordre fixe :
//
//  1. dialecte "element-per-cue" : un élément par cue sous la racine,
//     attribut start (secondes, requis) + dur (optionnel) ;
//  2. dialecte "paragraphe/segments" : éléments <p> (t/d en millisecondes,
//     d optionnel), texte = concaténation des segments imbriqués ;
//  3. dialecte "paragraphe sous <body>" : <p> directs sous <body>,
//     t et d requis, texte direct de l'élément.
//
// Une erreur structurelle dans un dialecte déclenche l'essai du suivant.
// Si tous échouent ou ne produisent aucun cue, retourne ErrNoCaptions
// (l'échec est loggé pour diagnostic, jamais propagé en panique).
func ParseTimedText(data []byte) ([]Cue, error) {
	root, err := parseXMLTree(data)
	if err != nil {
		log.Printf("captions: payload xml illisible: %v", err)
		return nil, ErrNoCaptions
	}

	cues, err := parseDialectA(root)
	if err == nil && len(cues) > 0 {
		return renumber(cues), nil
	}
	if err != nil {
		log.Printf("captions: première passe échouée: %v", err)
	}

	cues, err = parseDialectB(root)
	if err == nil && len(cues) > 0 {
		return renumber(cues), nil
	}

	cues, err = parseDialectC(root)
	if err == nil && len(cues) > 0 {
		return renumber(cues), nil
	}
	if err != nil {
		log.Printf("captions: dernière passe échouée: %v", err)
	}

	return nil, ErrNoCaptions
}

// parseDialectA : chaque enfant direct de la racine est un cue.
// start (secondes décimales) est requis : son absence fait échouer le
// dialecte entier, pas seulement le cue courant.
func parseDialectA(root *element) ([]Cue, error) {
	cues := make([]Cue, 0, len(root.children))
	for _, child := range root.children {
		rawStart, ok := child.attr("start")
		if !ok {
			return nil, fmt.Errorf("attribut start manquant sur <%s>", child.tag)
		}
		start, err := strconv.ParseFloat(rawStart, 64)
		if err != nil {
			return nil, fmt.Errorf("attribut start invalide: %w", err)
		}

		// dur est optionnel, défaut 0
		var dur float64
		if rawDur, ok := child.attr("dur"); ok {
			if dur, err = strconv.ParseFloat(rawDur, 64); err != nil {
				return nil, fmt.Errorf("attribut dur invalide: %w", err)
			}
		}

		cues = append(cues, Cue{
			StartMs: int64(math.Round(start * 1000)),
			EndMs:   int64(math.Round((start + dur) * 1000)),
			Text:    collapseText(child.directText()),
		})
	}
	return cues, nil
}

// parseDialectB : tous les <p> du document, t (ms) requis, d (ms) optionnel.
// Le texte est la concaténation des segments imbriqués ; les cues dont le
// texte concaténé est vide sont abandonnés sans erreur.
func parseDialectB(root *element) ([]Cue, error) {
	var cues []Cue
	for _, p := range root.iter("p") {
		start, err := requiredIntAttr(p, "t")
		if err != nil {
			return nil, err
		}
		dur := optionalIntAttr(p, "d")

		var sb strings.Builder
		for _, seg := range p.children {
			sb.WriteString(html.UnescapeString(seg.directText()))
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}

		cues = append(cues, Cue{
			StartMs: start,
			EndMs:   start + dur,
			Text:    text,
		})
	}
	return cues, nil
}

// parseDialectC : les enfants directs de <body>, t et d requis (ms),
// texte direct de l'élément.
func parseDialectC(root *element) ([]Cue, error) {
	body := root.find("body")
	if body == nil {
		return nil, nil
	}

	cues := make([]Cue, 0, len(body.children))
	for _, p := range body.children {
		start, err := requiredIntAttr(p, "t")
		if err != nil {
			return nil, err
		}
		dur, err := requiredIntAttr(p, "d")
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.ReplaceAll(html.UnescapeString(p.directText()), "\n", " "))
		cues = append(cues, Cue{
			StartMs: start,
			EndMs:   start + dur,
			Text:    text,
		})
	}
	return cues, nil
}

func requiredIntAttr(e *element, name string) (int64, error) {
	raw, ok := e.attr(name)
	if !ok {
		return 0, fmt.Errorf("attribut %s manquant sur <%s>", name, e.tag)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("attribut %s invalide: %w", name, err)
	}
	return v, nil
}

func optionalIntAttr(e *element, name string) int64 {
	raw, ok := e.attr(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
