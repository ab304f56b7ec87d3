package domain

// VersionState is the lifecycle state of an AppStoreVersion.
// States are owned by App Store Connect; this tool observes them
// but never drives transitions directly.
type VersionState string

// Version lifecycle states, in the order Apple moves them through review:
//
//	PREPARE_FOR_SUBMISSION -> WAITING_FOR_REVIEW -> IN_REVIEW ->
//	  {PENDING_DEVELOPER_RELEASE | DEVELOPER_REJECTED | REJECTED | READY_FOR_SALE}
const (
	VersionStatePrepareForSubmission    VersionState = "PREPARE_FOR_SUBMISSION"
	VersionStateWaitingForReview        VersionState = "WAITING_FOR_REVIEW"
	VersionStateInReview                VersionState = "IN_REVIEW"
	VersionStatePendingDeveloperRelease VersionState = "PENDING_DEVELOPER_RELEASE"
	VersionStateDeveloperRejected       VersionState = "DEVELOPER_REJECTED"
	VersionStateRejected                VersionState = "REJECTED"
	VersionStateReadyForSale            VersionState = "READY_FOR_SALE"
)

// ActiveVersionStates is the set of states in which a version is still
// progressing towards release. While any version on a platform is in
// one of these states, App Store Connect refuses to create another
// version for that platform; the reconciler upgrades the active
// version's string in place instead.
var ActiveVersionStates = []VersionState{
	VersionStatePrepareForSubmission,
	VersionStateWaitingForReview,
	VersionStateInReview,
	VersionStatePendingDeveloperRelease,
}

// IsActive reports whether the state is in the active set.
func (s VersionState) IsActive() bool {
	for _, active := range ActiveVersionStates {
		if s == active {
			return true
		}
	}
	return false
}

// AppStoreVersion is one release train for an (App, Platform) pair.
// At most one version per (app, platform, version string) exists
// remotely; App Store Connect enforces the uniqueness.
type AppStoreVersion struct {
	// ID is the identifier assigned by App Store Connect.
	ID string `json:"id"`
	// Platform the version targets.
	Platform Platform `json:"platform"`
	// VersionString is the caller-supplied semantic-version-like string.
	VersionString string `json:"version_string"`
	// State is the remote lifecycle state.
	State VersionState `json:"state"`
	// BuildID is the linked build, empty when none is attached yet.
	BuildID string `json:"build_id,omitempty"`
}
