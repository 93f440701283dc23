// Package numtext convertit les textes numériques "humains" de la plateforme
// (compteurs abrégés "1.2M", durées "1:03:22") en valeurs numériques.
//
// Toutes les fonctions sont pures. Les échecs sont signalés par *FormatError :
// l'appelant doit dégrader le champ concerné en "inconnu" plutôt que de
// propager l'erreur au lot entier.
package numtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/ytscribe/pkg/model"
)

// FormatError : texte numérique malformé. Erreur locale au champ.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format numérique invalide %q: %s", e.Input, e.Reason)
}

// facteurs multiplicateurs des suffixes de magnitude
var suffixes = map[byte]float64{
	'K': 1e3,
	'M': 1e6,
	'B': 1e9,
	'T': 1e12,
}

// ParseSuffixedCount convertit un compteur abrégé en nombre.
// "1.2M" -> 1_200_000 ; "954" -> 954. Sans suffixe, le texte entier est
// interprété comme un décimal. Préfixe non décimal -> *FormatError.
func ParseSuffixedCount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &FormatError{Input: text, Reason: "chaîne vide"}
	}

	last := s[len(s)-1]
	if factor, ok := suffixes[last]; ok {
		prefix := s[:len(s)-1]
		n, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, &FormatError{Input: text, Reason: "préfixe numérique invalide"}
		}
		return n * factor, nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Input: text, Reason: "décimal invalide"}
	}
	return n, nil
}

// ParseClockDuration convertit une durée "MM:SS" ou "HH:MM:SS" en secondes.
// Tout autre nombre de composants -> *FormatError.
func ParseClockDuration(text string) (model.Seconds, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")

	var h, m, sec string
	switch len(parts) {
	case 2:
		m, sec = parts[0], parts[1]
	case 3:
		h, m, sec = parts[0], parts[1], parts[2]
	default:
		return 0, &FormatError{Input: text, Reason: "attendu MM:SS ou HH:MM:SS"}
	}

	var hours int64
	if h != "" {
		v, err := strconv.ParseInt(h, 10, 64)
		if err != nil {
			return 0, &FormatError{Input: text, Reason: "heures invalides"}
		}
		hours = v
	}
	minutes, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, &FormatError{Input: text, Reason: "minutes invalides"}
	}
	seconds, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return 0, &FormatError{Input: text, Reason: "secondes invalides"}
	}

	return model.Seconds(hours*3600 + minutes*60 + seconds), nil
}
