package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"maria@example.com",
		"joao.silva+rsvp@convites.com.br",
		" ana@example.org ",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "maria", "maria@", "@example.com", "maria@example", "a b@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+55 11 91234-5678",
		"(11) 91234-5678",
		"11912345678",
		"+1 212 555 0123",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Fatalf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "12", "abc", "+55 11 9", "123456789012345678901"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Fatalf("expected %q to be invalid", phone)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`<script>alert(1)</script>Maria`); got != "Maria" {
		t.Fatalf("expected tags stripped, got %q", got)
	}
	if got := SanitizeString("João & Ana"); got != "João &amp; Ana" {
		t.Fatalf("unexpected escaping: %q", got)
	}
}

func TestSanitizeHTML_KeepsFormatting(t *testing.T) {
	Init()

	got := SanitizeHTML(`<p>Bem-vindos</p><script>alert(1)</script>`)
	if got != "<p>Bem-vindos</p>" {
		t.Fatalf("expected script removed and paragraph kept, got %q", got)
	}
}
