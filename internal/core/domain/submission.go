package domain

// SubmissionState is the lifecycle state of a ReviewSubmission.
type SubmissionState string

// Review submission states from the App Store Connect API.
const (
	SubmissionStateReadyForReview    SubmissionState = "READY_FOR_REVIEW"
	SubmissionStateWaitingForReview  SubmissionState = "WAITING_FOR_REVIEW"
	SubmissionStateInReview          SubmissionState = "IN_REVIEW"
	SubmissionStateUnresolvedIssues  SubmissionState = "UNRESOLVED_ISSUES"
	SubmissionStateCanceling         SubmissionState = "CANCELING"
	SubmissionStateCompleting        SubmissionState = "COMPLETING"
	SubmissionStateComplete          SubmissionState = "COMPLETE"
)

// OpenSubmissionStates is the set of states in which an existing
// submission can still accept items and is therefore reused instead of
// creating a second container for the same platform.
var OpenSubmissionStates = []SubmissionState{
	SubmissionStateReadyForReview,
	SubmissionStateWaitingForReview,
	SubmissionStateInReview,
}

// IsOpen reports whether the state is in the reusable set.
func (s SubmissionState) IsOpen() bool {
	for _, open := range OpenSubmissionStates {
		if s == open {
			return true
		}
	}
	return false
}

// ReviewSubmission is a per-(App, Platform) container grouping versions
// for Apple's review process. At most one open submission should exist
// per platform at a time.
type ReviewSubmission struct {
	// ID is the identifier assigned by App Store Connect.
	ID string `json:"id"`
	// Platform the submission is scoped to.
	Platform Platform `json:"platform"`
	// State is the remote lifecycle state.
	State SubmissionState `json:"state"`
}
