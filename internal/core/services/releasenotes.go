package services

import (
	"context"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// Ensure ReleaseNotesService implements the interface.
var _ driving.ReleaseNotesService = (*ReleaseNotesService)(nil)

// ReleaseNotesService maintains per-locale "what's new" text on a
// version. The remote API has no localization upsert, so the service
// lists first and then updates in place or creates.
type ReleaseNotesService struct {
	client driven.ConnectClient
}

// NewReleaseNotesService creates a new release-notes service.
func NewReleaseNotesService(client driven.ConnectClient) *ReleaseNotesService {
	return &ReleaseNotesService{client: client}
}

// Upsert writes the release-note text for one locale. Repeated calls
// with the same text converge to the same remote state; a different
// text overwrites the prior one. Exactly one localization per locale
// exists afterwards.
func (s *ReleaseNotesService) Upsert(ctx context.Context, versionID, locale, text string) error {
	if locale == "" {
		return fmt.Errorf("%w: empty locale", domain.ErrInvalidInput)
	}

	existing, err := s.client.ListLocalizations(ctx, versionID)
	if err != nil {
		return fmt.Errorf("list localizations: %w", err)
	}

	for _, loc := range existing {
		if loc.Locale != locale {
			continue
		}
		if _, err := s.client.UpdateLocalization(ctx, loc.ID, text); err != nil {
			return fmt.Errorf("update %s notes: %w", locale, err)
		}
		logger.Debug("updated %s release notes on version %s", locale, versionID)
		return nil
	}

	if _, err := s.client.CreateLocalization(ctx, versionID, locale, text); err != nil {
		return fmt.Errorf("create %s notes: %w", locale, err)
	}
	logger.Debug("created %s release notes on version %s", locale, versionID)
	return nil
}

// UpsertAll writes the fixed locale set for a publishing run, one
// locale at a time.
func (s *ReleaseNotesService) UpsertAll(ctx context.Context, versionID string, notes domain.ReleaseNotes) error {
	if notes.IsEmpty() {
		return fmt.Errorf("%w: no release notes supplied", domain.ErrInvalidInput)
	}
	for _, locale := range []string{domain.LocaleGerman, domain.LocaleEnglish} {
		if err := s.Upsert(ctx, versionID, locale, notes.ByLocale()[locale]); err != nil {
			return err
		}
	}
	return nil
}

// List returns the version's localizations.
func (s *ReleaseNotesService) List(ctx context.Context, versionID string) ([]domain.VersionLocalization, error) {
	return s.client.ListLocalizations(ctx, versionID)
}
