// Package innertube implémente le client du RPC "browse" de la plateforme.
// Il satisfait channel.Browser ; le reste du code ne dépend que de cette
// interface et traite la réponse comme un document opaque à naviguer.
package innertube

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickprogramme/ytscribe/internal/fetch"
)

const (
	defaultEndpoint      = "https://www.youtube.com/youtubei/v1/browse"
	defaultClientName    = "WEB"
	defaultClientVersion = "2.20250801.01.00"
	defaultTimeout       = 15 * time.Second
)

// Client encapsule les appels browse. Construit une fois, réutilisable ;
// aucun état partagé entre appels.
type Client struct {
	apiKey        string
	endpoint      string
	clientName    string
	clientVersion string
	hl, gl        string
	timeout       time.Duration
}

// New crée un client avec des valeurs par défaut raisonnables.
// apiKey peut être vide : l'endpoint accepte aussi les appels sans clé.
func New(apiKey string) *Client {
	return &Client{
		apiKey:        apiKey,
		endpoint:      defaultEndpoint,
		clientName:    defaultClientName,
		clientVersion: defaultClientVersion,
		hl:            "en",
		gl:            "US",
		timeout:       defaultTimeout,
	}
}

// SetAPIKey fixe la clé d'API, typiquement découverte dans le ytcfg d'une
// page déjà récupérée.
func (c *Client) SetAPIKey(key string) {
	if key != "" {
		c.apiKey = key
	}
}

// WithLocale surcharge la langue/région envoyées dans le contexte client.
func (c *Client) WithLocale(hl, gl string) *Client {
	if hl != "" {
		c.hl = hl
	}
	if gl != "" {
		c.gl = gl
	}
	return c
}

// WithClientVersion surcharge la version de client annoncée (la plateforme
// fait varier la forme des réponses selon cette version).
func (c *Client) WithClientVersion(v string) *Client {
	if v != "" {
		c.clientVersion = v
	}
	return c
}

// Browse exécute une requête browse pour browseID, avec un texte de
// recherche et un jeton de continuation optionnels, et retourne la réponse
// JSON décodée en document générique.
func (c *Client) Browse(ctx context.Context, browseID, query, continuation string) (map[string]any, error) {
	body := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"hl":            c.hl,
				"gl":            c.gl,
				"clientName":    c.clientName,
				"clientVersion": c.clientVersion,
			},
		},
		"browseId": browseID,
	}
	if query != "" {
		body["query"] = query
	}
	if continuation != "" {
		body["continuation"] = continuation
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("browse: marshal body: %w", err)
	}

	url := c.endpoint
	if c.apiKey != "" {
		url = fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	}

	var decoded map[string]any
	if err := fetch.PostJSONInto(ctx, url, payload, c.timeout, 0, &decoded); err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}
	return decoded, nil
}
