package lang

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"pt-br":  "pt-BR",
		"PT-BR":  "pt-BR",
		"en":     "en",
		"ES":     "es",
		"pt_BR":  "",
		" en  ":  "en",
		"es-419": "",
		"":       "",
		"x":      "",
	}
	for input, want := range cases {
		got, err := Normalize(input)
		if want == "" {
			if err == nil {
				t.Fatalf("Normalize(%q): expected error, got %q", input, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %q, expected %q", input, got, want)
		}
	}
}

func TestTranslate_Fallbacks(t *testing.T) {
	if got := Translate("pt-BR", "splash.open"); got != "Abrir convite" {
		t.Fatalf("expected pt-BR string, got %q", got)
	}
	if got := Translate("en", "splash.open"); got != "Open invitation" {
		t.Fatalf("expected en string, got %q", got)
	}

	// Unknown region falls back to the base language.
	if got := Translate("es-AR", "splash.open"); got != "Abrir invitación" {
		t.Fatalf("expected base-language fallback, got %q", got)
	}

	// Unknown language falls back to the default.
	if got := Translate("fr", "splash.open"); got != "Abrir convite" {
		t.Fatalf("expected default-language fallback, got %q", got)
	}

	// Unknown key returns the key so missing entries stay visible.
	if got := Translate("pt-BR", "missing.key"); got != "missing.key" {
		t.Fatalf("expected the key back, got %q", got)
	}
}
