package connect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.appstoreconnect.apple.com/v1"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the port.
var _ driven.ConnectClient = (*Client)(nil)

// Client is the production implementation of driven.ConnectClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenSource
	limiter    *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used for test servers.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates an App Store Connect client. Credentials are
// loaded lazily from the source on the first request.
func NewClient(creds driven.CredentialsSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     newTokenSource(creds),
		limiter:    NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executes one authenticated request and decodes the response into
// out (when out is non-nil). Remote error payloads become APIErrors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.limiter.UpdateFromResponse(resp)

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse converts a remote error payload into an APIError,
// keeping the detail verbatim.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Errors) == 0 {
		apiErr.Detail = string(raw)
		return apiErr
	}

	first := payload.Errors[0]
	apiErr.Code = first.Code
	apiErr.Title = first.Title
	apiErr.Detail = first.Detail
	return apiErr
}

// ListApps returns catalog apps, optionally filtered by bundle ID.
func (c *Client) ListApps(ctx context.Context, filter driven.AppFilter) ([]domain.App, error) {
	query := url.Values{}
	if filter.BundleID != "" {
		query.Set("filter[bundleId]", filter.BundleID)
	}

	var resp appListResponse
	if err := c.do(ctx, http.MethodGet, "/apps", query, nil, &resp); err != nil {
		return nil, err
	}

	apps := make([]domain.App, 0, len(resp.Data))
	for _, r := range resp.Data {
		apps = append(apps, r.toDomain())
	}
	return apps, nil
}

// ListVersions returns the app's versions, optionally filtered.
func (c *Client) ListVersions(ctx context.Context, appID string, filter driven.VersionFilter) ([]domain.AppStoreVersion, error) {
	query := url.Values{}
	if filter.Platform != "" {
		query.Set("filter[platform]", filter.Platform.String())
	}
	if filter.VersionString != "" {
		query.Set("filter[versionString]", filter.VersionString)
	}

	var resp versionListResponse
	if err := c.do(ctx, http.MethodGet, "/apps/"+appID+"/appStoreVersions", query, nil, &resp); err != nil {
		return nil, err
	}

	versions := make([]domain.AppStoreVersion, 0, len(resp.Data))
	for _, r := range resp.Data {
		versions = append(versions, r.toDomain())
	}
	return versions, nil
}

// CreateVersion creates a new version. Conflict responses are
// classified into the domain sentinels the reconciler handles.
func (c *Client) CreateVersion(ctx context.Context, appID string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error) {
	body := versionCreateRequest{
		Data: versionCreateData{
			Type: typeAppStoreVersions,
			Attributes: versionAttributes{
				Platform:      platform.String(),
				VersionString: versionString,
			},
			Relationships: versionCreateRelationships{
				App: relationship{Data: resourceIdentifier{Type: typeApps, ID: appID}},
			},
		},
	}

	var resp versionDocument
	if err := c.do(ctx, http.MethodPost, "/appStoreVersions", nil, body, &resp); err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return nil, classifyVersionConflict(apiErr)
		}
		return nil, err
	}

	version := resp.Data.toDomain()
	return &version, nil
}

// UpdateVersionString rewrites an existing version's string.
func (c *Client) UpdateVersionString(ctx context.Context, versionID, versionString string) (*domain.AppStoreVersion, error) {
	body := versionUpdateRequest{
		Data: versionUpdateData{
			Type:       typeAppStoreVersions,
			ID:         versionID,
			Attributes: versionAttributes{VersionString: versionString},
		},
	}

	var resp versionDocument
	if err := c.do(ctx, http.MethodPatch, "/appStoreVersions/"+versionID, nil, body, &resp); err != nil {
		return nil, err
	}

	version := resp.Data.toDomain()
	return &version, nil
}

// ListLocalizations returns the version's release-note localizations.
func (c *Client) ListLocalizations(ctx context.Context, versionID string) ([]domain.VersionLocalization, error) {
	var resp localizationListResponse
	path := "/appStoreVersions/" + versionID + "/appStoreVersionLocalizations"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}

	locs := make([]domain.VersionLocalization, 0, len(resp.Data))
	for _, r := range resp.Data {
		locs = append(locs, r.toDomain())
	}
	return locs, nil
}

// CreateLocalization creates release-note text for a locale.
func (c *Client) CreateLocalization(ctx context.Context, versionID, locale, whatsNew string) (*domain.VersionLocalization, error) {
	body := localizationCreateRequest{
		Data: localizationCreateData{
			Type: typeVersionLocals,
			Attributes: localizationAttributes{
				Locale:   locale,
				WhatsNew: whatsNew,
			},
			Relationships: localizationCreateRelationships{
				AppStoreVersion: relationship{
					Data: resourceIdentifier{Type: typeAppStoreVersions, ID: versionID},
				},
			},
		},
	}

	var resp localizationDocument
	if err := c.do(ctx, http.MethodPost, "/appStoreVersionLocalizations", nil, body, &resp); err != nil {
		return nil, err
	}

	loc := resp.Data.toDomain()
	return &loc, nil
}

// UpdateLocalization replaces the text of an existing localization.
func (c *Client) UpdateLocalization(ctx context.Context, localizationID, whatsNew string) (*domain.VersionLocalization, error) {
	body := localizationUpdateRequest{
		Data: localizationUpdateData{
			Type:       typeVersionLocals,
			ID:         localizationID,
			Attributes: localizationAttributes{WhatsNew: whatsNew},
		},
	}

	var resp localizationDocument
	if err := c.do(ctx, http.MethodPatch, "/appStoreVersionLocalizations/"+localizationID, nil, body, &resp); err != nil {
		return nil, err
	}

	loc := resp.Data.toDomain()
	return &loc, nil
}

// ListBuilds returns builds for the app and platform, requesting a
// server-side newest-first sort.
func (c *Client) ListBuilds(ctx context.Context, appID string, platform domain.Platform, limit int) ([]domain.Build, error) {
	query := url.Values{}
	query.Set("filter[app]", appID)
	query.Set("filter[preReleaseVersion.platform]", platform.String())
	query.Set("sort", "-uploadedDate")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp buildListResponse
	if err := c.do(ctx, http.MethodGet, "/builds", query, nil, &resp); err != nil {
		return nil, err
	}

	builds := make([]domain.Build, 0, len(resp.Data))
	for _, r := range resp.Data {
		builds = append(builds, r.toDomain())
	}
	return builds, nil
}

// AssignBuild links a build to a version.
func (c *Client) AssignBuild(ctx context.Context, versionID, buildID string) error {
	body := relationshipUpdateRequest{
		Data: resourceIdentifier{Type: typeBuilds, ID: buildID},
	}
	return c.do(ctx, http.MethodPatch, "/appStoreVersions/"+versionID+"/relationships/build", nil, body, nil)
}

// ListSubmissions returns review submissions for the app and platform.
func (c *Client) ListSubmissions(ctx context.Context, appID string, platform domain.Platform) ([]domain.ReviewSubmission, error) {
	query := url.Values{}
	query.Set("filter[app]", appID)
	query.Set("filter[platform]", platform.String())

	var resp submissionListResponse
	if err := c.do(ctx, http.MethodGet, "/reviewSubmissions", query, nil, &resp); err != nil {
		return nil, err
	}

	subs := make([]domain.ReviewSubmission, 0, len(resp.Data))
	for _, r := range resp.Data {
		subs = append(subs, r.toDomain())
	}
	return subs, nil
}

// CreateSubmission creates a review submission container.
func (c *Client) CreateSubmission(ctx context.Context, appID string, platform domain.Platform) (*domain.ReviewSubmission, error) {
	body := submissionCreateRequest{
		Data: submissionCreateData{
			Type:       typeReviewSubmissions,
			Attributes: submissionAttributes{Platform: platform.String()},
			Relationships: submissionCreateRelationships{
				App: relationship{Data: resourceIdentifier{Type: typeApps, ID: appID}},
			},
		},
	}

	var resp submissionDocument
	if err := c.do(ctx, http.MethodPost, "/reviewSubmissions", nil, body, &resp); err != nil {
		return nil, err
	}

	sub := resp.Data.toDomain()
	return &sub, nil
}

// CreateSubmissionItem attaches a version to a submission.
func (c *Client) CreateSubmissionItem(ctx context.Context, submissionID, versionID string) error {
	body := submissionItemCreateRequest{
		Data: submissionItemCreateData{
			Type: typeSubmissionItems,
			Relationships: submissionItemCreateRelationships{
				ReviewSubmission: relationship{
					Data: resourceIdentifier{Type: typeReviewSubmissions, ID: submissionID},
				},
				AppStoreVersion: relationship{
					Data: resourceIdentifier{Type: typeAppStoreVersions, ID: versionID},
				},
			},
		},
	}

	if err := c.do(ctx, http.MethodPost, "/reviewSubmissionItems", nil, body, nil); err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return classifySubmissionItemError(apiErr)
		}
		return err
	}
	return nil
}

// RateLimiter exposes the limiter for inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}
