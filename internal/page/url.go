package page

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var reYouTubeURL = regexp.MustCompile(`(?i)https?://(www\.|m\.)?(youtube\.com/|youtu\.be/)`)

// IsYouTubeURL indique si s ressemble à une URL de la plateforme.
func IsYouTubeURL(s string) bool {
	return reYouTubeURL.MatchString(strings.TrimSpace(s))
}

// IsWatchURL indique si l'URL pointe vers une page de lecture (vidéo ou
// short) plutôt que vers une chaîne.
func IsWatchURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.Contains(s, "/watch?") ||
		strings.Contains(s, "youtu.be/") ||
		strings.Contains(s, "/shorts/") ||
		strings.Contains(s, "/embed/")
}

// VideoID extrait l'identifiant vidéo d'une URL de lecture, sous toutes ses
// formes connues : watch?v=, youtu.be/, /embed/, /shorts/.
func VideoID(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("video id: url invalide: %w", err)
	}

	var id string
	switch {
	case strings.Contains(parsed.Host, "youtu.be"):
		id = strings.TrimPrefix(parsed.Path, "/")
	case strings.Contains(parsed.Path, "/embed/"):
		id = strings.TrimPrefix(parsed.Path, "/embed/")
	case strings.Contains(parsed.Path, "/shorts/"):
		id = strings.TrimPrefix(parsed.Path, "/shorts/")
	default:
		id = parsed.Query().Get("v")
	}

	// nettoyage des suffixes de chemin / query restants
	id = strings.Split(id, "/")[0]
	id = strings.Split(id, "?")[0]

	if id == "" {
		return "", fmt.Errorf("video id introuvable dans %q", rawURL)
	}
	return id, nil
}

// WatchURL reconstruit l'URL canonique de lecture pour un identifiant vidéo.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
