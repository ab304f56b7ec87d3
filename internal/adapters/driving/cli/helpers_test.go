package cli

import (
	"context"
	"time"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
)

// Function-field mocks for the driving ports. Each field has a
// happy-path default wired by setupTestServices; individual tests
// override the field they care about.

type mockResolver struct {
	resolveFn func(context.Context, string) (string, error)
	listFn    func(context.Context) ([]domain.App, error)
}

func (m *mockResolver) Resolve(ctx context.Context, idOrBundleID string) (string, error) {
	return m.resolveFn(ctx, idOrBundleID)
}

func (m *mockResolver) ListApps(ctx context.Context) ([]domain.App, error) {
	return m.listFn(ctx)
}

type mockVersions struct {
	reconcileFn    func(context.Context, string, domain.Platform, string) (string, error)
	findFn         func(context.Context, string, domain.Platform, string) (*domain.AppStoreVersion, error)
	findEditableFn func(context.Context, string, domain.Platform) (*domain.AppStoreVersion, error)
	listFn         func(context.Context, string) ([]domain.AppStoreVersion, error)
}

func (m *mockVersions) Reconcile(ctx context.Context, appID string, platform domain.Platform, versionString string) (string, error) {
	return m.reconcileFn(ctx, appID, platform, versionString)
}

func (m *mockVersions) Find(ctx context.Context, appID string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error) {
	return m.findFn(ctx, appID, platform, versionString)
}

func (m *mockVersions) FindEditable(ctx context.Context, appID string, platform domain.Platform) (*domain.AppStoreVersion, error) {
	return m.findEditableFn(ctx, appID, platform)
}

func (m *mockVersions) List(ctx context.Context, appID string) ([]domain.AppStoreVersion, error) {
	return m.listFn(ctx, appID)
}

type mockReleaseNotes struct {
	upsertFn    func(context.Context, string, string, string) error
	upsertAllFn func(context.Context, string, domain.ReleaseNotes) error
	listFn      func(context.Context, string) ([]domain.VersionLocalization, error)
}

func (m *mockReleaseNotes) Upsert(ctx context.Context, versionID, locale, text string) error {
	return m.upsertFn(ctx, versionID, locale, text)
}

func (m *mockReleaseNotes) UpsertAll(ctx context.Context, versionID string, notes domain.ReleaseNotes) error {
	return m.upsertAllFn(ctx, versionID, notes)
}

func (m *mockReleaseNotes) List(ctx context.Context, versionID string) ([]domain.VersionLocalization, error) {
	return m.listFn(ctx, versionID)
}

type mockBuilds struct {
	newestFn func(context.Context, string, domain.Platform) (*domain.Build, error)
	assignFn func(context.Context, string, string) error
}

func (m *mockBuilds) NewestBuild(ctx context.Context, appID string, platform domain.Platform) (*domain.Build, error) {
	return m.newestFn(ctx, appID, platform)
}

func (m *mockBuilds) Assign(ctx context.Context, versionID, buildID string) error {
	return m.assignFn(ctx, versionID, buildID)
}

type mockSubmissions struct {
	submitFn func(context.Context, string, domain.Platform, string) error
}

func (m *mockSubmissions) Submit(ctx context.Context, appID string, platform domain.Platform, versionID string) error {
	return m.submitFn(ctx, appID, platform, versionID)
}

type mockCredentials struct {
	saveFn  func(context.Context, domain.Credentials) error
	loadFn  func(context.Context) (*domain.Credentials, error)
	clearFn func(context.Context) ([]string, error)
}

func (m *mockCredentials) Save(ctx context.Context, creds domain.Credentials) error {
	return m.saveFn(ctx, creds)
}

func (m *mockCredentials) Load(ctx context.Context) (*domain.Credentials, error) {
	return m.loadFn(ctx)
}

func (m *mockCredentials) Clear(ctx context.Context) ([]string, error) {
	return m.clearFn(ctx)
}

// setupTestServices installs happy-path mocks for every driving port
// and returns a cleanup that restores the previous services plus all
// flag state, so tests never leak into each other.
func setupTestServices() func() {
	oldResolver := appResolver
	oldVersions := versionService
	oldNotes := releaseNotesService
	oldBuilds := buildService
	oldSubmissions := submissionService
	oldCredentials := credentialsService
	oldConfig := configStore

	appResolver = &mockResolver{
		resolveFn: func(_ context.Context, idOrBundleID string) (string, error) {
			if domain.IsBundleID(idOrBundleID) {
				return "1234567890", nil
			}
			return idOrBundleID, nil
		},
		listFn: func(context.Context) ([]domain.App, error) {
			return []domain.App{
				{ID: "1234567890", BundleID: "com.example.myapp", Name: "My App"},
			}, nil
		},
	}
	versionService = &mockVersions{
		reconcileFn: func(_ context.Context, _ string, _ domain.Platform, _ string) (string, error) {
			return "version-1", nil
		},
		findFn: func(_ context.Context, _ string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error) {
			return &domain.AppStoreVersion{
				ID:            "version-1",
				Platform:      platform,
				VersionString: versionString,
				State:         domain.VersionStatePrepareForSubmission,
			}, nil
		},
		findEditableFn: func(_ context.Context, _ string, platform domain.Platform) (*domain.AppStoreVersion, error) {
			return &domain.AppStoreVersion{
				ID:            "version-1",
				Platform:      platform,
				VersionString: "2.1.0",
				State:         domain.VersionStatePrepareForSubmission,
			}, nil
		},
		listFn: func(context.Context, string) ([]domain.AppStoreVersion, error) {
			return []domain.AppStoreVersion{
				{ID: "version-1", Platform: domain.PlatformIOS, VersionString: "2.1.0", State: domain.VersionStatePrepareForSubmission},
			}, nil
		},
	}
	releaseNotesService = &mockReleaseNotes{
		upsertFn:    func(context.Context, string, string, string) error { return nil },
		upsertAllFn: func(context.Context, string, domain.ReleaseNotes) error { return nil },
		listFn: func(context.Context, string) ([]domain.VersionLocalization, error) {
			return []domain.VersionLocalization{
				{ID: "loc-de", Locale: domain.LocaleGerman, WhatsNew: "Fehlerbehebungen"},
				{ID: "loc-en", Locale: domain.LocaleEnglish, WhatsNew: "Bug fixes"},
			}, nil
		},
	}
	buildService = &mockBuilds{
		newestFn: func(context.Context, string, domain.Platform) (*domain.Build, error) {
			return &domain.Build{ID: "build-1", Version: "42", UploadedDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}, nil
		},
		assignFn: func(context.Context, string, string) error { return nil },
	}
	submissionService = &mockSubmissions{
		submitFn: func(context.Context, string, domain.Platform, string) error { return nil },
	}
	credentialsService = &mockCredentials{
		saveFn: func(context.Context, domain.Credentials) error { return nil },
		loadFn: func(context.Context) (*domain.Credentials, error) {
			return &domain.Credentials{IssuerID: "issuer-1", KeyID: "KEY123", PrivateKey: "material"}, nil
		},
		clearFn: func(context.Context) ([]string, error) {
			return []string{domain.AccountIssuerID, domain.AccountKeyID, domain.AccountPrivateKey}, nil
		},
	}
	configStore = nil

	return func() {
		appResolver = oldResolver
		versionService = oldVersions
		releaseNotesService = oldNotes
		buildService = oldBuilds
		submissionService = oldSubmissions
		credentialsService = oldCredentials
		configStore = oldConfig

		versionHintGerman = ""
		versionHintEnglish = ""
		versionHintJSON = ""
		versionPlatform = ""
		selectBuildPlatform = ""
		submitPlatform = ""
		initIssuerID = ""
		initKeyID = ""
		initKeyPath = ""
		initIndividual = false
	}
}
