// Package captions transforme les payloads de sous-titres horodatés de la
// plateforme (XML en plusieurs dialectes, ou json3) en une séquence de cues
// normalisée, puis recompile cette séquence au format SubRip (.srt).
package captions

// Cue représente une unité de sous-titre horodatée.
// Invariants : EndMs >= StartMs ; Seq contigus à partir de 1 dans une passe.
type Cue struct {
	Seq     int    // numéro de séquence, 1-based, assigné à l'ordre de parse
	StartMs int64  // début en millisecondes
	EndMs   int64  // fin = début + durée (durée absente -> 0)
	Text    string // texte décodé (entités HTML) et normalisé
}

// renumber réassigne les numéros de séquence (1..N) et garantit EndMs >= StartMs.
func renumber(cues []Cue) []Cue {
	for i := range cues {
		cues[i].Seq = i + 1
		if cues[i].EndMs < cues[i].StartMs {
			cues[i].EndMs = cues[i].StartMs
		}
	}
	return cues
}
