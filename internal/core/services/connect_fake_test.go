package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
)

// Ensure the fake satisfies the port.
var _ driven.ConnectClient = (*fakeConnect)(nil)

// fakeConnect is a stand-in App Store Connect that reproduces the
// remote conflict semantics the reconciler depends on: creating a
// duplicate version string fails with ErrVersionExists, and creating
// any version while another is active fails with ErrVersionNotPermitted.
type fakeConnect struct {
	mu sync.Mutex

	apps          []domain.App
	versions      map[string][]domain.AppStoreVersion
	localizations map[string][]domain.VersionLocalization
	builds        map[string][]domain.Build
	submissions   map[string][]domain.ReviewSubmission
	items         map[string][]string

	// forced errors, returned instead of normal behaviour when set
	errCreateVersion error
	errListVersions  error
	errListBuilds    error

	createVersionCalls int
	listAppsCalls      int
}

func newFakeConnect() *fakeConnect {
	return &fakeConnect{
		versions:      make(map[string][]domain.AppStoreVersion),
		localizations: make(map[string][]domain.VersionLocalization),
		builds:        make(map[string][]domain.Build),
		submissions:   make(map[string][]domain.ReviewSubmission),
		items:         make(map[string][]string),
	}
}

func (f *fakeConnect) ListApps(_ context.Context, filter driven.AppFilter) ([]domain.App, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listAppsCalls++

	if filter.BundleID == "" {
		return f.apps, nil
	}
	var out []domain.App
	for _, app := range f.apps {
		if app.BundleID == filter.BundleID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeConnect) ListVersions(_ context.Context, appID string, filter driven.VersionFilter) ([]domain.AppStoreVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errListVersions != nil {
		return nil, f.errListVersions
	}
	var out []domain.AppStoreVersion
	for _, v := range f.versions[appID] {
		if filter.Platform != "" && v.Platform != filter.Platform {
			continue
		}
		if filter.VersionString != "" && v.VersionString != filter.VersionString {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeConnect) CreateVersion(_ context.Context, appID string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createVersionCalls++

	if f.errCreateVersion != nil {
		return nil, f.errCreateVersion
	}
	for _, v := range f.versions[appID] {
		if v.Platform != platform {
			continue
		}
		if v.VersionString == versionString {
			return nil, fmt.Errorf("409: %w", domain.ErrVersionExists)
		}
		if v.State.IsActive() {
			return nil, fmt.Errorf("409: %w", domain.ErrVersionNotPermitted)
		}
	}

	created := domain.AppStoreVersion{
		ID:            uuid.New().String(),
		Platform:      platform,
		VersionString: versionString,
		State:         domain.VersionStatePrepareForSubmission,
	}
	f.versions[appID] = append(f.versions[appID], created)
	return &created, nil
}

func (f *fakeConnect) UpdateVersionString(_ context.Context, versionID, versionString string) (*domain.AppStoreVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for appID, versions := range f.versions {
		for i := range versions {
			if versions[i].ID == versionID {
				f.versions[appID][i].VersionString = versionString
				v := f.versions[appID][i]
				return &v, nil
			}
		}
	}
	return nil, fmt.Errorf("404: %w", domain.ErrVersionNotFound)
}

func (f *fakeConnect) ListLocalizations(_ context.Context, versionID string) ([]domain.VersionLocalization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.localizations[versionID], nil
}

func (f *fakeConnect) CreateLocalization(_ context.Context, versionID, locale, whatsNew string) (*domain.VersionLocalization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	loc := domain.VersionLocalization{
		ID:       uuid.New().String(),
		Locale:   locale,
		WhatsNew: whatsNew,
	}
	f.localizations[versionID] = append(f.localizations[versionID], loc)
	return &loc, nil
}

func (f *fakeConnect) UpdateLocalization(_ context.Context, localizationID, whatsNew string) (*domain.VersionLocalization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for versionID, locs := range f.localizations {
		for i := range locs {
			if locs[i].ID == localizationID {
				f.localizations[versionID][i].WhatsNew = whatsNew
				loc := f.localizations[versionID][i]
				return &loc, nil
			}
		}
	}
	return nil, fmt.Errorf("localization %s not found", localizationID)
}

func (f *fakeConnect) ListBuilds(_ context.Context, appID string, _ domain.Platform, limit int) ([]domain.Build, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errListBuilds != nil {
		return nil, f.errListBuilds
	}
	builds := f.builds[appID]
	if limit > 0 && len(builds) > limit {
		builds = builds[:limit]
	}
	return builds, nil
}

func (f *fakeConnect) AssignBuild(_ context.Context, versionID, buildID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for appID, versions := range f.versions {
		for i := range versions {
			if versions[i].ID == versionID {
				f.versions[appID][i].BuildID = buildID
				return nil
			}
		}
	}
	return fmt.Errorf("404: %w", domain.ErrVersionNotFound)
}

func (f *fakeConnect) ListSubmissions(_ context.Context, appID string, platform domain.Platform) ([]domain.ReviewSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.ReviewSubmission
	for _, sub := range f.submissions[appID] {
		if sub.Platform == platform {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeConnect) CreateSubmission(_ context.Context, appID string, platform domain.Platform) (*domain.ReviewSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := domain.ReviewSubmission{
		ID:       uuid.New().String(),
		Platform: platform,
		State:    domain.SubmissionStateReadyForReview,
	}
	f.submissions[appID] = append(f.submissions[appID], sub)
	return &sub, nil
}

func (f *fakeConnect) CreateSubmissionItem(_ context.Context, submissionID, versionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, versions := range f.versions {
		for i := range versions {
			if versions[i].ID == versionID {
				if versions[i].BuildID == "" {
					return fmt.Errorf("409: %w", domain.ErrBuildMissing)
				}
				f.items[submissionID] = append(f.items[submissionID], versionID)
				return nil
			}
		}
	}
	return fmt.Errorf("404: %w", domain.ErrVersionNotFound)
}

// seedVersion inserts a version directly, bypassing create semantics.
func (f *fakeConnect) seedVersion(appID string, v domain.AppStoreVersion) domain.AppStoreVersion {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	f.versions[appID] = append(f.versions[appID], v)
	return v
}
