package ui

import "context"

type Interface interface {
	// GetSourceURL doit renvoyer une URL valide (vidéo ou chaîne).
	// Implémentation terminale : priorité clipboard -> prompt
	GetSourceURL(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
