package captions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// wireMagic attendu dans toute réponse json3 valide.
const wireMagic = "pb3"

// ErrWireMagic : le marqueur wireMagic est absent ou inattendu.
// C'est un échec de décodage dur, pas un simple "pas de sous-titres".
var ErrWireMagic = errors.New("marqueur wireMagic des captions absent ou inattendu")

// rawJSON3 représente la structure brute d'une livraison json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// les autres champs (wpWinPosId, wWinId, ...) sont volontairement ignorés
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// isNewlineOnly indique si l'event ne contient que des retours à la ligne.
func (e rawEvent) isNewlineOnly() bool {
	if len(e.Segs) == 0 {
		return false
	}
	for _, s := range e.Segs {
		t := strings.TrimSpace(s.Utf8)
		if t == "" || t == "\n" || t == "\\n" {
			continue
		}
		return false
	}
	return true
}

// ParseJSON3 décode un payload json3. Le champ wireMagic doit valoir "pb3" :
// son absence ou toute autre valeur est un échec dur (ErrWireMagic).
//
// On ne passe pas par DisallowUnknownFields : le payload contient de nombreux
// champs non mappés qu'on veut ignorer proprement.
func ParseJSON3(b []byte) (rawJSON3, error) {
	var raw rawJSON3
	if len(b) == 0 {
		return raw, fmt.Errorf("ParseJSON3: payload vide")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("ParseJSON3: decode: %w", err)
	}
	if raw.WireMagic != wireMagic {
		return raw, fmt.Errorf("ParseJSON3: wireMagic=%q: %w", raw.WireMagic, ErrWireMagic)
	}
	return raw, nil
}

// Cues convertit les events json3 en séquence de cues renumérotée.
// Les events sans texte utile (vides ou newline-only) sont abandonnés.
func (r rawJSON3) Cues() []Cue {
	var cues []Cue
	for _, ev := range r.Events {
		if len(ev.Segs) == 0 || ev.isNewlineOnly() {
			continue
		}

		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.Utf8)
		}
		text := strings.TrimSpace(collapseText(sb.String()))
		if text == "" {
			continue
		}

		var start, dur int64
		if ev.TStartMs != nil {
			start = *ev.TStartMs
		}
		if ev.DDurationMs != nil {
			dur = *ev.DDurationMs
		}
		cues = append(cues, Cue{
			StartMs: start,
			EndMs:   start + dur,
			Text:    text,
		})
	}
	return renumber(cues)
}
