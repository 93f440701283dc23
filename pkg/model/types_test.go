package model

import "testing"

func TestTimestampHHMMSS(t *testing.T) {
	tests := []struct {
		name string
		s    Seconds
		want string
	}{
		{name: "zéro", s: 0, want: "00:00:00"},
		{name: "minute et seconde", s: 65, want: "00:01:05"},
		{name: "heures", s: 3661, want: "01:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.TimestampHHMMSS(); got != tt.want {
				t.Errorf("TimestampHHMMSS(%d) = %q, attendu %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "srt", input: "srt", want: FormatSRT},
		{name: "xml", input: "xml", want: FormatXML},
		{name: "json3", input: "json3", want: FormatJSON3},
		{name: "alias json", input: "json", want: FormatJSON3},
		{name: "inconnu", input: "vtt", wantErr: true},
		{name: "vide", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) = %v, erreur attendue", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, attendu %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatSRT.Extension(); got != ".srt" {
		t.Errorf("FormatSRT.Extension() = %q", got)
	}
	if got := FormatXML.Extension(); got != ".xml" {
		t.Errorf("FormatXML.Extension() = %q", got)
	}
	// json3 est servi en .json
	if got := FormatJSON3.Extension(); got != ".json" {
		t.Errorf("FormatJSON3.Extension() = %q", got)
	}
}

func TestFormatIsRaw(t *testing.T) {
	if FormatSRT.IsRaw() {
		t.Error("FormatSRT.IsRaw() = true, le SRT est recompilé localement")
	}
	if !FormatXML.IsRaw() || !FormatJSON3.IsRaw() {
		t.Error("les formats de livraison bruts doivent être IsRaw")
	}
}
