// Package clipboard isole l'accès au presse-papier système. Deux usages
// dans l'application : détecter une URL de vidéo ou de chaîne déjà copiée
// (intake), et publier le chemin du fichier généré (sortie).
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ReadAll retourne le texte courant du presse-papier. L'appelant décide si
// ce texte ressemble à une URL exploitable ; une erreur signifie simplement
// qu'on retombera sur le prompt interactif.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteAll publie text dans le presse-papier, typiquement le chemin du
// fichier qui vient d'être écrit. Une chaîne vide est refusée : écraser le
// presse-papier de l'utilisateur avec rien n'apporte rien.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}
