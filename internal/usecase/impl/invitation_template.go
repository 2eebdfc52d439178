package impl

import (
	"fmt"
	"strings"
	"time"

	"cumple/internal/domain/entity"
)

// Built-in invitation templates, used when an event carries no override for
// the guest's language. The placeholder tokens are replaced verbatim.
const (
	defaultSubjectES = "Invitación: {event_title}"
	defaultBodyES    = `Hola {guest_name},

Estás invitado/a a {event_title}.

Fecha: {date}
Lugar: {venue}

Por favor confirma tu asistencia haciendo clic en el siguiente enlace:
{link}

¡Esperamos verte!
Cova y Jaime`

	defaultSubjectEN = "Invitation: {event_title}"
	defaultBodyEN    = `Hi {guest_name},

You're invited to {event_title}.

Date: {date}
Venue: {venue}

Please confirm your attendance by clicking the link below:
{link}

We hope to see you there!
Cova y Jaime`
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// invitationTemplateData carries the values substituted into a template.
type invitationTemplateData struct {
	GuestName  string
	EventTitle string
	Date       string
	Venue      string
	Link       string
}

// defaultSubject returns the built-in subject template for a language.
func defaultSubject(lang entity.Language) string {
	if lang == entity.LanguageEN {
		return defaultSubjectEN
	}

	return defaultSubjectES
}

// defaultBody returns the built-in body template for a language.
func defaultBody(lang entity.Language) string {
	if lang == entity.LanguageEN {
		return defaultBodyEN
	}

	return defaultBodyES
}

// renderBody replaces every placeholder occurrence in the body template.
func renderBody(template string, data invitationTemplateData) string {
	replacer := strings.NewReplacer(
		"{guest_name}", data.GuestName,
		"{event_title}", data.EventTitle,
		"{date}", data.Date,
		"{venue}", data.Venue,
		"{link}", data.Link,
	)

	return replacer.Replace(template)
}

// finalizeSubject resolves the subject line: templates containing the
// {event_title} token get it substituted; templates without the token get
// the title appended, so a bare prefix like "Invitación: " still reads as a
// complete subject.
func finalizeSubject(template, eventTitle string) string {
	if strings.Contains(template, "{event_title}") {
		return strings.ReplaceAll(template, "{event_title}", eventTitle)
	}

	return template + eventTitle
}

// formatEventDate renders the event date as prose in the guest's language.
func formatEventDate(t time.Time, lang entity.Language) string {
	if lang == entity.LanguageEN {
		return t.Format("January 2, 2006")
	}

	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// formatVenue joins the venue name and its official address the way the
// body templates expect {venue} to read.
func formatVenue(event *entity.Event) string {
	return event.VenueName + "\n" + event.AddressOfficial
}
