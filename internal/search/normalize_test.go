package search

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Ténis", want: "tenis"},
		{in: "tenis", want: "tenis"},
		{in: "NÃO", want: "nao"},
		{in: "Vestido Longo", want: "vestido longo"},
		{in: "ÉÀÇÜ", want: "eacu"},
		{in: "", want: ""},
		{in: "  mala  ", want: "  mala  "}, // whitespace untouched
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Ténis Açúcar", "MALA DE COURO", "não", "über Schön", "déjà-vu!"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_DiacriticEquivalence(t *testing.T) {
	if Normalize("ténis") != Normalize("tenis") {
		t.Fatalf("ténis and tenis must normalize equal")
	}
	if Normalize("não") != Normalize("nao") {
		t.Fatalf("não and nao must normalize equal")
	}
}
