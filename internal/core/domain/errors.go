package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, detected
	// before any remote call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCredentialsMissing indicates a required secret is absent from
	// the store. The CLI tells the user to run `ascribe init`.
	ErrCredentialsMissing = errors.New("credentials missing")

	// ErrAppNotFound indicates a bundle identifier matched no app.
	ErrAppNotFound = errors.New("app not found")

	// ErrVersionExists indicates the remote system refused to create a
	// version because one with the same string already exists. The
	// reconciler recovers from this by finding the existing version.
	ErrVersionExists = errors.New("version already exists")

	// ErrVersionNotPermitted indicates the remote system refused to
	// create a version because an active one is already progressing
	// through review. The reconciler recovers by upgrading the active
	// version's string in place.
	ErrVersionNotPermitted = errors.New("version creation not permitted in current app state")

	// ErrVersionVanished indicates the remote system signalled a
	// duplicate but the subsequent listing returned no match. This is
	// an inconsistency on the remote side and is never retried.
	ErrVersionVanished = errors.New("version reported as duplicate but not found")

	// ErrNoActiveVersion indicates no version in an active state was
	// found to upgrade.
	ErrNoActiveVersion = errors.New("no active version to upgrade")

	// ErrVersionNotFound indicates no version matched the requested
	// platform and version string.
	ErrVersionNotFound = errors.New("version not found")

	// ErrNoBuilds indicates no uploaded build exists for the platform.
	ErrNoBuilds = errors.New("no builds available")

	// ErrBuildMissing indicates a submission was rejected because the
	// version has no build attached. The CLI suggests `ascribe
	// select-build` for this case specifically.
	ErrBuildMissing = errors.New("version has no build attached")

	// ErrNoSubmittableVersion indicates no version is in the
	// pre-submission state expected by the submit workflow.
	ErrNoSubmittableVersion = errors.New("no version in prepare-for-submission state")
)
