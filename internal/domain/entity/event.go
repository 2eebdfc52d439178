package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the root aggregate: guests, registry items and expenses all
// reference it. Venue addresses are stored as opaque text in three variants
// because Google and Apple Maps resolve the same venue differently.
type Event struct {
	ID                uuid.UUID
	OrganizerID       uuid.UUID
	Title             string
	Celebrant         Celebrant
	EventDate         time.Time
	VenueName         string
	AddressOfficial   string
	AddressGoogleMaps string
	AddressAppleMaps  string
	Description       string
	IsActive          bool
	// Per-language overrides for the invitation email. Empty fields fall
	// back to the configured or built-in defaults.
	EmailSubjectES string
	EmailBodyES    string
	EmailSubjectEN string
	EmailBodyEN    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubjectTemplate returns the event's subject override for lang, or "".
func (e *Event) SubjectTemplate(lang Language) string {
	if lang == LanguageEN {
		return e.EmailSubjectEN
	}

	return e.EmailSubjectES
}

// BodyTemplate returns the event's body override for lang, or "".
func (e *Event) BodyTemplate(lang Language) string {
	if lang == LanguageEN {
		return e.EmailBodyEN
	}

	return e.EmailBodyES
}

// Celebrant is the person whose birthday the event honors.
type Celebrant string

const (
	CelebrantCova  Celebrant = "Cova"
	CelebrantJaime Celebrant = "Jaime"
)

// String returns the string representation of the Celebrant.
func (c Celebrant) String() string {
	return string(c)
}

// IsValid checks if the Celebrant is a valid value.
func (c Celebrant) IsValid() bool {
	switch c {
	case CelebrantCova, CelebrantJaime:
		return true
	default:
		return false
	}
}

// Language selects the invitation template. Unknown values normalize to
// Spanish, the household default.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// NormalizeLanguage maps an arbitrary language string onto a supported
// Language, defaulting to Spanish.
func NormalizeLanguage(s string) Language {
	switch Language(s) {
	case LanguageEN:
		return LanguageEN
	default:
		return LanguageES
	}
}
