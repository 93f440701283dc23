package channel

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/ytscribe/internal/renderer"
	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// Browser est l'abstraction du RPC "browse" authentifié. Elle facilite le
// test en autorisant une implémentation factice ; l'implémentation réelle
// vit dans internal/innertube. Le protocole interne (headers, auth) ne
// regarde pas ce package.
type Browser interface {
	// Browse interroge la plateforme pour un identifiant de chaîne, un texte
	// de recherche optionnel et un jeton de continuation optionnel, et
	// retourne le document de réponse décodé.
	Browse(ctx context.Context, browseID, query, continuation string) (map[string]any, error)
}

// ListKind sélectionne la stratégie de navigation appliquée aux réponses.
type ListKind int

const (
	// ListVideos : liste de contenus d'un onglet (grille ou sections).
	ListVideos ListKind = iota
	// ListSearch : résultats de recherche / continuations.
	ListSearch
)

// Pager paginise une liste de contenus en enchaînant les appels browse,
// en faisant suivre le jeton de continuation d'une page à l'autre.
//
// Machine à deux états {HAS_MORE, DONE}, sans retour arrière : le jeton
// retourné absent termine la pagination. Un Pager n'est pas sûr pour un
// usage concurrent : le flux de jetons est strictement linéaire.
type Pager struct {
	browser  Browser
	browseID string
	query    string
	kind     ListKind

	token string
	done  bool
}

// NewPager construit un Pager dont la première page est demandée sans jeton.
func NewPager(b Browser, browseID, query string, kind ListKind) *Pager {
	return &Pager{browser: b, browseID: browseID, query: query, kind: kind}
}

// ResumePager construit un Pager repartant d'un jeton déjà découvert
// (typiquement extrait de la première page HTML). Un jeton vide signifie
// qu'il n'y a pas de page suivante.
func ResumePager(b Browser, browseID string, kind ListKind, token string) *Pager {
	return &Pager{
		browser:  b,
		browseID: browseID,
		kind:     kind,
		token:    token,
		done:     token == "",
	}
}

// HasMore indique si une page peut encore être demandée.
func (p *Pager) HasMore() bool {
	return !p.done
}

// Next exécute un pas de pagination : fetch de la page courante (avec le
// jeton courant s'il existe), navigation selon le kind, normalisation, puis
// mémorisation du jeton retourné. Un lot sans jeton termine la pagination.
//
// L'absence de liste dans la réponse n'est pas une erreur : on retourne un
// lot vide et la pagination se termine proprement.
func (p *Pager) Next(ctx context.Context) ([]model.ContentRecord, error) {
	if p.done {
		return nil, nil
	}

	doc, err := p.browser.Browse(ctx, p.browseID, p.query, p.token)
	if err != nil {
		return nil, fmt.Errorf("pager: browse: %w", err)
	}

	var contents []any
	var ok bool
	switch p.kind {
	case ListSearch:
		contents, ok = renderer.FindSearchedContentList(doc)
	default:
		// première page : liste d'onglet ; pages suivantes : la réponse de
		// continuation porte les éléments sous onResponseReceivedActions
		contents, ok = renderer.FindContentList(doc)
		if !ok {
			contents, ok = renderer.FindSearchedContentList(doc)
		}
	}
	if !ok || len(contents) == 0 {
		p.token = ""
		p.done = true
		return nil, nil
	}

	records, token := renderer.ParseContents(contents)
	p.token = token
	if token == "" {
		p.done = true
	}
	return records, nil
}
