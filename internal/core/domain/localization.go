package domain

import (
	"encoding/json"
	"fmt"
)

// Locales the publishing workflow maintains release notes for.
const (
	LocaleGerman  = "de-DE"
	LocaleEnglish = "en-US"
)

// VersionLocalization is the release-note text for one AppStoreVersion
// in one locale. At most one localization per (version, locale) exists.
type VersionLocalization struct {
	// ID is the identifier assigned by App Store Connect.
	ID string `json:"id"`
	// Locale is a BCP 47 tag such as "de-DE" or "en-US".
	Locale string `json:"locale"`
	// WhatsNew is the free-form release-note text. May contain newlines.
	WhatsNew string `json:"whats_new"`
}

// ReleaseNotes is the per-language release-note text supplied by the
// user for one publishing run.
type ReleaseNotes struct {
	German  string `json:"german"`
	English string `json:"english"`
}

// ByLocale returns the notes keyed by the locales the workflow writes.
func (n ReleaseNotes) ByLocale() map[string]string {
	return map[string]string{
		LocaleGerman:  n.German,
		LocaleEnglish: n.English,
	}
}

// IsEmpty reports whether no text was supplied for any language.
func (n ReleaseNotes) IsEmpty() bool {
	return n.German == "" && n.English == ""
}

// ParseReleaseNotesJSON parses the combined hint form. The JSON object
// must contain string values for both "german" and "english"; a missing
// key is a usage error, not a silent default.
func ParseReleaseNotesJSON(raw string) (ReleaseNotes, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return ReleaseNotes{}, fmt.Errorf("%w: hint is not valid JSON: %v", ErrInvalidInput, err)
	}

	var notes ReleaseNotes
	for key, dst := range map[string]*string{
		"german":  &notes.German,
		"english": &notes.English,
	} {
		val, ok := fields[key]
		if !ok {
			return ReleaseNotes{}, fmt.Errorf("%w: hint JSON is missing key %q", ErrInvalidInput, key)
		}
		if err := json.Unmarshal(val, dst); err != nil {
			return ReleaseNotes{}, fmt.Errorf("%w: hint key %q must be a string", ErrInvalidInput, key)
		}
	}
	return notes, nil
}
