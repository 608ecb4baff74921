// Package lang normalizes language codes and resolves the localized UI
// strings used by public-mode forms and validation messages.
package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Default is the fallback language code. The product's primary market is
// Brazil, so pt-BR is the default rather than English.
const Default = "pt-BR"

var errEmptyCode = errors.New("language code cannot be empty")

// Normalize validates the provided language code and returns it in a
// canonicalised form (lowercase language, uppercase region). Supported
// formats follow the common `ll` or `ll-RR` pattern.
func Normalize(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", errEmptyCode
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid language code %q", code)
	}

	language := strings.ToLower(parts[0])
	if len(language) < 2 || len(language) > 8 {
		return "", fmt.Errorf("invalid language code %q", code)
	}
	for _, r := range language {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("invalid language code %q", code)
		}
	}

	if len(parts) == 1 {
		return language, nil
	}

	region := parts[1]
	if len(region) < 2 || len(region) > 3 {
		return "", fmt.Errorf("invalid language region in %q", code)
	}
	for _, r := range region {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("invalid language region in %q", code)
		}
	}

	return language + "-" + strings.ToUpper(region), nil
}

var messages = map[string]map[string]string{
	"pt-BR": {
		"splash.open":      "Abrir convite",
		"rsvp.submit":      "Confirmar presença",
		"guestbook.submit": "Enviar recado",
		"field.name":       "Nome",
		"field.email":      "E-mail",
		"field.phone":      "Telefone",
		"field.guests":     "Acompanhantes",
		"field.message":    "Mensagem",
		"error.name":       "Informe seu nome",
		"error.email":      "E-mail inválido",
		"error.phone":      "Telefone inválido",
		"error.message":    "Escreva uma mensagem",
	},
	"en": {
		"splash.open":      "Open invitation",
		"rsvp.submit":      "Confirm attendance",
		"guestbook.submit": "Send message",
		"field.name":       "Name",
		"field.email":      "Email",
		"field.phone":      "Phone",
		"field.guests":     "Guests",
		"field.message":    "Message",
		"error.name":       "Please enter your name",
		"error.email":      "Invalid email address",
		"error.phone":      "Invalid phone number",
		"error.message":    "Please write a message",
	},
	"es": {
		"splash.open":      "Abrir invitación",
		"rsvp.submit":      "Confirmar asistencia",
		"guestbook.submit": "Enviar mensaje",
		"field.name":       "Nombre",
		"field.email":      "Correo electrónico",
		"field.phone":      "Teléfono",
		"field.guests":     "Acompañantes",
		"field.message":    "Mensaje",
		"error.name":       "Ingrese su nombre",
		"error.email":      "Correo electrónico no válido",
		"error.phone":      "Teléfono no válido",
		"error.message":    "Escriba un mensaje",
	},
}

// Translate resolves a localized string for the given language and key,
// falling back to the base language and then to the default language. The
// key itself is returned when no translation exists, so missing entries stay
// visible instead of blank.
func Translate(code, key string) string {
	if normalized, err := Normalize(code); err == nil {
		code = normalized
	} else {
		code = Default
	}

	if msg, ok := messages[code][key]; ok {
		return msg
	}
	if base := strings.SplitN(code, "-", 2)[0]; base != code {
		if msg, ok := messages[base][key]; ok {
			return msg
		}
	}
	if msg, ok := messages[Default][key]; ok {
		return msg
	}
	return key
}
