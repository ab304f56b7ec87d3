// Package connect implements driven.ConnectClient against the App
// Store Connect REST API (JSON:API flavoured, v1).
//
// The client mirrors the structure of the other remote adapters: lazy
// credential loading through a driven.CredentialsSource, a rate
// limiter consulted before every request, and a wrapError step that
// converts remote error payloads into typed APIErrors. Version-create
// conflicts are additionally classified into the domain sentinels the
// reconciler dispatches on, preferring the machine-readable error code
// and falling back to detail-text inspection only when no code is
// present.
package connect
