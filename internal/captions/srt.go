package captions

import (
	"fmt"
	"math"
	"strings"
)

// SRTTimestamp rend un instant en millisecondes au format SubRip
// "HH:MM:SS,mmm" (zéro-paddé, virgule avant les millisecondes).
func SRTTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	m := (ms % 3600000) / 60000
	s := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, millis)
}

// SRTTimeFromSeconds convertit une durée décimale en timestamp SubRip,
// exact à la milliseconde : SRTTimeFromSeconds(3.89) -> "00:00:03,890".
func SRTTimeFromSeconds(d float64) string {
	return SRTTimestamp(int64(math.Round(d * 1000)))
}

// CompileSRT recompile une séquence de cues en document SubRip :
// numéro de séquence, ligne "début --> fin", texte, ligne vide de séparation.
// Fonction pure : l'écriture sur disque est l'affaire de l'appelant.
func CompileSRT(cues []Cue) string {
	var b strings.Builder
	for i, c := range cues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n",
			c.Seq,
			SRTTimestamp(c.StartMs),
			SRTTimestamp(c.EndMs),
			c.Text,
		)
	}
	return strings.TrimSpace(b.String())
}
