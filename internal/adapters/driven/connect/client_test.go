package connect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
)

// newTestClient wires a Client against an httptest server with working
// key material.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	_, payload := testPrivateKey(t)
	creds := &countingCreds{creds: domain.Credentials{
		IssuerID: "issuer-1", KeyID: "KEY123", PrivateKey: payload,
	}}
	return NewClient(creds, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

func TestClient_ListApps_FilterAndAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps", r.URL.Path)
		assert.Equal(t, "com.example.myapp", r.URL.Query().Get("filter[bundleId]"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))

		writeJSON(t, w, http.StatusOK, `{"data":[
			{"id":"1234567890","attributes":{"name":"My App","bundleId":"com.example.myapp"}}
		]}`)
	})

	apps, err := client.ListApps(context.Background(), driven.AppFilter{BundleID: "com.example.myapp"})

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "1234567890", apps[0].ID)
	assert.Equal(t, "My App", apps[0].Name)
}

func TestClient_CreateVersion_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/appStoreVersions", r.URL.Path)

		var req versionCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "appStoreVersions", req.Data.Type)
		assert.Equal(t, "IOS", req.Data.Attributes.Platform)
		assert.Equal(t, "2.1.0", req.Data.Attributes.VersionString)
		assert.Equal(t, "app-1", req.Data.Relationships.App.Data.ID)

		writeJSON(t, w, http.StatusCreated, `{"data":{"id":"ver-1","attributes":
			{"platform":"IOS","versionString":"2.1.0","appStoreState":"PREPARE_FOR_SUBMISSION"}}}`)
	})

	version, err := client.CreateVersion(context.Background(), "app-1", domain.PlatformIOS, "2.1.0")

	require.NoError(t, err)
	assert.Equal(t, "ver-1", version.ID)
	assert.Equal(t, domain.VersionStatePrepareForSubmission, version.State)
}

func TestClient_CreateVersion_DuplicateConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, `{"errors":[{
			"status":"409",
			"code":"ENTITY_ERROR.ATTRIBUTE.INVALID.DUPLICATE",
			"title":"The provided entity includes an attribute with an invalid value",
			"detail":"The version number has already been used."
		}]}`)
	})

	_, err := client.CreateVersion(context.Background(), "app-1", domain.PlatformIOS, "1.0.0")

	assert.ErrorIs(t, err, domain.ErrVersionExists)
}

func TestClient_CreateVersion_StateConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, `{"errors":[{
			"status":"409",
			"code":"STATE_ERROR.ENTITY_STATE_INVALID",
			"detail":"A new app store version cannot be created while one is in review."
		}]}`)
	})

	_, err := client.CreateVersion(context.Background(), "app-1", domain.PlatformIOS, "1.1.0")

	assert.ErrorIs(t, err, domain.ErrVersionNotPermitted)
}

func TestClient_ListBuilds_QueryShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/builds", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "app-1", query.Get("filter[app]"))
		assert.Equal(t, "IOS", query.Get("filter[preReleaseVersion.platform]"))
		assert.Equal(t, "-uploadedDate", query.Get("sort"))
		assert.Equal(t, "10", query.Get("limit"))

		writeJSON(t, w, http.StatusOK, `{"data":[
			{"id":"b3","attributes":{"version":"43","uploadedDate":"2026-03-01T12:00:00Z"}},
			{"id":"b2","attributes":{"version":"42","uploadedDate":"2026-03-01T11:00:00Z"}}
		]}`)
	})

	builds, err := client.ListBuilds(context.Background(), "app-1", domain.PlatformIOS, 10)

	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "b3", builds[0].ID)
	assert.True(t, builds[0].UploadedDate.After(builds[1].UploadedDate))
}

func TestClient_AssignBuild(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/appStoreVersions/ver-1/relationships/build", r.URL.Path)

		var req relationshipUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "builds", req.Data.Type)
		assert.Equal(t, "b-7", req.Data.ID)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.AssignBuild(context.Background(), "ver-1", "b-7")

	assert.NoError(t, err)
}

func TestClient_CreateSubmissionItem_BuildMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, `{"errors":[{
			"status":"409",
			"code":"STATE_ERROR",
			"detail":"The version must have an attached build before it can be submitted."
		}]}`)
	})

	err := client.CreateSubmissionItem(context.Background(), "sub-1", "ver-1")

	assert.ErrorIs(t, err, domain.ErrBuildMissing)
}

func TestClient_ErrorDetailPreservedVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{"errors":[{
			"status":"500","code":"UNEXPECTED_ERROR","detail":"An unexpected error occurred on the server side."
		}]}`)
	})

	_, err := client.ListApps(context.Background(), driven.AppFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "An unexpected error occurred on the server side.")
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream timeout"))
	})

	_, err := client.ListApps(context.Background(), driven.AppFilter{})

	require.Error(t, err)
	apiErr, ok := asAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "upstream timeout")
}

func TestClient_RateLimitHeaderTracked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderRateLimit, "user-hour-lim:3500;user-hour-rem:17;")
		writeJSON(t, w, http.StatusOK, `{"data":[]}`)
	})

	_, err := client.ListApps(context.Background(), driven.AppFilter{})

	require.NoError(t, err)
	assert.Equal(t, 17, client.RateLimiter().Remaining())
}
