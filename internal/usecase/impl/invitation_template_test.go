package impl

import (
	"testing"
	"time"

	"cumple/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderBody_ReplacesAllPlaceholders(t *testing.T) {
	body := renderBody("Hola {guest_name}, ven a {event_title} el {date} en {venue}: {link}", invitationTemplateData{
		GuestName:  "Ana",
		EventTitle: "Cumple de Cova",
		Date:       "14 de junio de 2026",
		Venue:      "Sala Principal\nCalle Mayor 1",
		Link:       "https://example.com/verify?token=abc",
	})

	assert.Equal(t, "Hola Ana, ven a Cumple de Cova el 14 de junio de 2026 en Sala Principal\nCalle Mayor 1: https://example.com/verify?token=abc", body)
}

func TestRenderBody_RepeatedPlaceholders(t *testing.T) {
	body := renderBody("{guest_name} y otra vez {guest_name}", invitationTemplateData{GuestName: "Ana"})

	assert.Equal(t, "Ana y otra vez Ana", body)
}

func TestFinalizeSubject_SubstitutesToken(t *testing.T) {
	subject := finalizeSubject("Invitación: {event_title}", "Cumple de Cova")

	assert.Equal(t, "Invitación: Cumple de Cova", subject)
}

func TestFinalizeSubject_AppendsTitleWhenTokenMissing(t *testing.T) {
	subject := finalizeSubject("Estás invitado a ", "Cumple de Cova")

	assert.Equal(t, "Estás invitado a Cumple de Cova", subject)
}

func TestFormatEventDate_Spanish(t *testing.T) {
	date := time.Date(2026, time.June, 14, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, "14 de junio de 2026", formatEventDate(date, entity.LanguageES))
}

func TestFormatEventDate_English(t *testing.T) {
	date := time.Date(2026, time.June, 14, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, "June 14, 2026", formatEventDate(date, entity.LanguageEN))
}

func TestDefaultTemplates_CarryPlaceholders(t *testing.T) {
	for _, lang := range []entity.Language{entity.LanguageES, entity.LanguageEN} {
		assert.Contains(t, defaultSubject(lang), "{event_title}")
		body := defaultBody(lang)
		for _, token := range []string{"{guest_name}", "{event_title}", "{date}", "{venue}", "{link}"} {
			assert.Contains(t, body, token)
		}
	}
}

func TestFormatVenue_JoinsNameAndAddress(t *testing.T) {
	event := &entity.Event{VenueName: "Sala Principal", AddressOfficial: "Calle Mayor 1, Madrid"}

	assert.Equal(t, "Sala Principal\nCalle Mayor 1, Madrid", formatVenue(event))
}
