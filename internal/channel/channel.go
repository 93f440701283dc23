// Package channel modélise une chaîne de la plateforme : reconnaissance de
// son URL, gabarits des pages sœurs (/videos, /shorts, ...), accès aux
// métadonnées portées par ytInitialData, et pagination des listes de
// contenus via le RPC "browse".
package channel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/ytscribe/internal/numtext"
	"github.com/patrickprogramme/ytscribe/internal/renderer"
)

// formes d'URI de chaîne reconnues : /channel/<id>, /c/<nom>, /user/<nom>,
// /@handle, avec ou sans chemin résiduel
var reChannelURI = regexp.MustCompile(`(?:/(channel|c|user)/([%\w\-.]+))|(/@[\w\-.]+)`)

// Channel regroupe les URLs d'une chaîne. Construit une fois par chaîne ;
// les pages sœurs sont de simples gabarits, aucune n'est récupérée ici.
type Channel struct {
	URI string // ex. "/channel/UCxxxx" ou "/@handle"
	URL string // URL canonique de la chaîne

	VideosURL           string
	ShortsURL           string
	PlaylistsURL        string
	CommunityURL        string
	FeaturedChannelsURL string
	AboutURL            string
}

// New construit un Channel depuis une URL de chaîne.
// Retourne une erreur si l'URL ne porte aucune forme d'URI reconnue.
func New(rawURL string) (*Channel, error) {
	uri, err := ExtractChannelURI(rawURL)
	if err != nil {
		return nil, err
	}

	base := "https://www.youtube.com" + uri
	return &Channel{
		URI:                 uri,
		URL:                 base,
		VideosURL:           base + "/videos",
		ShortsURL:           base + "/shorts",
		PlaylistsURL:        base + "/playlists",
		CommunityURL:        base + "/community",
		FeaturedChannelsURL: base + "/channels",
		AboutURL:            base + "/about",
	}, nil
}

// ExtractChannelURI isole l'URI de chaîne d'une URL complète.
func ExtractChannelURI(rawURL string) (string, error) {
	m := reChannelURI.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", fmt.Errorf("url de chaîne non reconnue: %q", rawURL)
	}
	if m[3] != "" {
		return m[3], nil // forme /@handle
	}
	return "/" + m[1] + "/" + m[2], nil
}

// NameFromInitialData retourne le nom de la chaîne porté par ytInitialData.
func NameFromInitialData(doc map[string]any) string {
	return renderer.DigString(doc, "metadata", "channelMetadataRenderer", "title")
}

// IDFromInitialData retourne l'identifiant interne de la chaîne (browseId),
// pas l'URL de vanité.
func IDFromInitialData(doc map[string]any) string {
	return renderer.DigString(doc, "metadata", "channelMetadataRenderer", "externalId")
}

// DescriptionFromInitialData retourne la description de la chaîne.
func DescriptionFromInitialData(doc map[string]any) string {
	return renderer.DigString(doc, "metadata", "channelMetadataRenderer", "description")
}

// SubscriberCount extrait le compteur d'abonnés depuis le header de la page
// ("1.2M subscribers"). nil si absent ou non parsable : champ best-effort.
func SubscriberCount(doc map[string]any) *float64 {
	text := renderer.DigString(doc, "header", "c4TabbedHeaderRenderer", "subscriberCountText", "simpleText")
	if text == "" {
		return nil
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	n, err := numtext.ParseSuffixedCount(fields[0])
	if err != nil {
		return nil
	}
	return &n
}
