// Package renderer localise et normalise les listes de contenus à l'intérieur
// des grands arbres JSON "renderer" de la plateforme, dont l'imbrication
// exacte varie selon la page, l'onglet et la version du client qui a produit
// la réponse.
//
// Toutes les fonctions sont des lectures pures du document : aucune mutation,
// aucun fetch, aucun retry.
package renderer

import (
	"fmt"
	"strings"
)

// Dig descend dans un arbre JSON décodé (map[string]any / []any) en suivant
// les clés (string) et index (int) donnés. Retourne nil dès qu'un pas ne
// correspond pas à la structure.
func Dig(v any, keys ...any) any {
	cur := v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			cur = a[key]
		}
	}
	return cur
}

// DigString : Dig + conversion en chaîne propre ("" si absent ou non-string).
func DigString(v any, keys ...any) string {
	s, ok := Dig(v, keys...).(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// cleanText force n'importe quelle valeur en chaîne nettoyée.
func cleanText(v any) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "<nil>" {
		return ""
	}
	return s
}

// FindContentList localise la liste de contenus d'un onglet de chaîne
// (vidéos, shorts). Le document doit porter
// contents.twoColumnBrowseResultsRenderer.tabs ; les onglets sont parcourus
// dans l'ordre du document et, pour chacun, on préfère la liste "grille"
// (richGridRenderer) puis, si elle est absente ou vide, la liste "sections"
// (sectionListRenderer). Retourne (nil, false) si aucun onglet ne porte de
// liste peuplée.
func FindContentList(doc map[string]any) ([]any, bool) {
	tabs, ok := Dig(doc, "contents", "twoColumnBrowseResultsRenderer", "tabs").([]any)
	if !ok {
		return nil, false
	}

	for _, tab := range tabs {
		content := Dig(tab, "tabRenderer", "content")
		if content == nil {
			continue
		}
		if grid, ok := Dig(content, "richGridRenderer", "contents").([]any); ok && len(grid) > 0 {
			return grid, true
		}
		if sections, ok := Dig(content, "sectionListRenderer", "contents").([]any); ok && len(sections) > 0 {
			return sections, true
		}
	}
	return nil, false
}

// FindSearchedContentList localise la liste de résultats d'une recherche de
// chaîne, ou les éléments de continuation d'une réponse "browse" paginée.
//
//   - document avec contents : premier onglet "expandable", contenu de sa
//     liste de sections ;
//   - document avec onResponseReceivedActions : continuationItems de la
//     première action d'append ;
//   - sinon (nil, false).
func FindSearchedContentList(doc map[string]any) ([]any, bool) {
	if _, ok := doc["contents"]; ok {
		tabs, _ := Dig(doc, "contents", "twoColumnBrowseResultsRenderer", "tabs").([]any)
		for _, tab := range tabs {
			if Dig(tab, "expandableTabRenderer") == nil {
				continue
			}
			contents, ok := Dig(tab, "expandableTabRenderer", "content", "sectionListRenderer", "contents").([]any)
			return contents, ok
		}
		return nil, false
	}

	if actions, ok := doc["onResponseReceivedActions"].([]any); ok && len(actions) > 0 {
		items, ok := Dig(actions, 0, "appendContinuationItemsAction", "continuationItems").([]any)
		return items, ok
	}

	return nil, false
}
