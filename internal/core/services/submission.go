package services

import (
	"context"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService attaches versions to per-platform review
// submissions, reusing an open container when one exists.
type SubmissionService struct {
	client driven.ConnectClient
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(client driven.ConnectClient) *SubmissionService {
	return &SubmissionService{client: client}
}

// Submit attaches the version to the platform's open review submission,
// creating the container first when none is open. A missing-build
// rejection surfaces as domain.ErrBuildMissing so the caller can point
// the user at select-build.
func (s *SubmissionService) Submit(ctx context.Context, appID string, platform domain.Platform, versionID string) error {
	submission, err := s.openSubmission(ctx, appID, platform)
	if err != nil {
		return err
	}

	if err := s.client.CreateSubmissionItem(ctx, submission.ID, versionID); err != nil {
		return fmt.Errorf("attach version %s to submission %s: %w", versionID, submission.ID, err)
	}
	logger.Debug("version %s attached to submission %s", versionID, submission.ID)
	return nil
}

// openSubmission returns the platform's reusable submission, creating
// one when no open container exists.
func (s *SubmissionService) openSubmission(
	ctx context.Context,
	appID string,
	platform domain.Platform,
) (*domain.ReviewSubmission, error) {
	submissions, err := s.client.ListSubmissions(ctx, appID, platform)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	for _, sub := range submissions {
		if sub.State.IsOpen() {
			logger.Debug("reusing open submission %s (%s)", sub.ID, sub.State)
			return &sub, nil
		}
	}

	created, err := s.client.CreateSubmission(ctx, appID, platform)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	logger.Debug("created submission %s for %s", created.ID, platform.DisplayName())
	return created, nil
}
