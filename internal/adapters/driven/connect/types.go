package connect

import (
	"time"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
)

// JSON:API resource type names used in request payloads.
const (
	typeApps              = "apps"
	typeAppStoreVersions  = "appStoreVersions"
	typeVersionLocals     = "appStoreVersionLocalizations"
	typeBuilds            = "builds"
	typeReviewSubmissions = "reviewSubmissions"
	typeSubmissionItems   = "reviewSubmissionItems"
)

// relationship is a JSON:API to-one relationship.
type relationship struct {
	Data resourceIdentifier `json:"data"`
}

// resourceIdentifier names a remote resource by type and ID.
type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// errorResponse is the JSON:API error envelope.
type errorResponse struct {
	Errors []errorPayload `json:"errors"`
}

// errorPayload is one entry of a JSON:API error response.
type errorPayload struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// --- apps ---

type appAttributes struct {
	Name     string `json:"name"`
	BundleID string `json:"bundleId"`
}

type appResource struct {
	ID         string        `json:"id"`
	Attributes appAttributes `json:"attributes"`
}

type appListResponse struct {
	Data []appResource `json:"data"`
}

func (r appResource) toDomain() domain.App {
	return domain.App{
		ID:       r.ID,
		BundleID: r.Attributes.BundleID,
		Name:     r.Attributes.Name,
	}
}

// --- appStoreVersions ---

type versionAttributes struct {
	Platform      string `json:"platform,omitempty"`
	VersionString string `json:"versionString,omitempty"`
	AppStoreState string `json:"appStoreState,omitempty"`
}

type versionResource struct {
	ID         string            `json:"id"`
	Attributes versionAttributes `json:"attributes"`
}

type versionListResponse struct {
	Data []versionResource `json:"data"`
}

type versionDocument struct {
	Data versionResource `json:"data"`
}

func (r versionResource) toDomain() domain.AppStoreVersion {
	return domain.AppStoreVersion{
		ID:            r.ID,
		Platform:      domain.Platform(r.Attributes.Platform),
		VersionString: r.Attributes.VersionString,
		State:         domain.VersionState(r.Attributes.AppStoreState),
	}
}

type versionCreateRequest struct {
	Data versionCreateData `json:"data"`
}

type versionCreateData struct {
	Type          string                     `json:"type"`
	Attributes    versionAttributes          `json:"attributes"`
	Relationships versionCreateRelationships `json:"relationships"`
}

type versionCreateRelationships struct {
	App relationship `json:"app"`
}

type versionUpdateRequest struct {
	Data versionUpdateData `json:"data"`
}

type versionUpdateData struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes versionAttributes `json:"attributes"`
}

// --- appStoreVersionLocalizations ---

type localizationAttributes struct {
	Locale   string `json:"locale,omitempty"`
	WhatsNew string `json:"whatsNew,omitempty"`
}

type localizationResource struct {
	ID         string                 `json:"id"`
	Attributes localizationAttributes `json:"attributes"`
}

type localizationListResponse struct {
	Data []localizationResource `json:"data"`
}

type localizationDocument struct {
	Data localizationResource `json:"data"`
}

func (r localizationResource) toDomain() domain.VersionLocalization {
	return domain.VersionLocalization{
		ID:       r.ID,
		Locale:   r.Attributes.Locale,
		WhatsNew: r.Attributes.WhatsNew,
	}
}

type localizationCreateRequest struct {
	Data localizationCreateData `json:"data"`
}

type localizationCreateData struct {
	Type          string                          `json:"type"`
	Attributes    localizationAttributes          `json:"attributes"`
	Relationships localizationCreateRelationships `json:"relationships"`
}

type localizationCreateRelationships struct {
	AppStoreVersion relationship `json:"appStoreVersion"`
}

type localizationUpdateRequest struct {
	Data localizationUpdateData `json:"data"`
}

type localizationUpdateData struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id"`
	Attributes localizationAttributes `json:"attributes"`
}

// --- builds ---

type buildAttributes struct {
	Version      string    `json:"version"`
	UploadedDate time.Time `json:"uploadedDate"`
}

type buildResource struct {
	ID         string          `json:"id"`
	Attributes buildAttributes `json:"attributes"`
}

type buildListResponse struct {
	Data []buildResource `json:"data"`
}

func (r buildResource) toDomain() domain.Build {
	return domain.Build{
		ID:           r.ID,
		Version:      r.Attributes.Version,
		UploadedDate: r.Attributes.UploadedDate,
	}
}

// relationshipUpdateRequest rewrites a to-one relationship, e.g. the
// build linked to a version.
type relationshipUpdateRequest struct {
	Data resourceIdentifier `json:"data"`
}

// --- reviewSubmissions ---

type submissionAttributes struct {
	Platform string `json:"platform,omitempty"`
	State    string `json:"state,omitempty"`
}

type submissionResource struct {
	ID         string               `json:"id"`
	Attributes submissionAttributes `json:"attributes"`
}

type submissionListResponse struct {
	Data []submissionResource `json:"data"`
}

type submissionDocument struct {
	Data submissionResource `json:"data"`
}

func (r submissionResource) toDomain() domain.ReviewSubmission {
	return domain.ReviewSubmission{
		ID:       r.ID,
		Platform: domain.Platform(r.Attributes.Platform),
		State:    domain.SubmissionState(r.Attributes.State),
	}
}

type submissionCreateRequest struct {
	Data submissionCreateData `json:"data"`
}

type submissionCreateData struct {
	Type          string                        `json:"type"`
	Attributes    submissionAttributes          `json:"attributes"`
	Relationships submissionCreateRelationships `json:"relationships"`
}

type submissionCreateRelationships struct {
	App relationship `json:"app"`
}

type submissionItemCreateRequest struct {
	Data submissionItemCreateData `json:"data"`
}

type submissionItemCreateData struct {
	Type          string                             `json:"type"`
	Relationships submissionItemCreateRelationships `json:"relationships"`
}

type submissionItemCreateRelationships struct {
	ReviewSubmission relationship `json:"reviewSubmission"`
	AppStoreVersion  relationship `json:"appStoreVersion"`
}
