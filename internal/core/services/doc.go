// Package services implements the core publishing workflow on top of
// the driven ports.
//
// The interesting logic lives in the version reconciler
// (create-or-find-or-upgrade) and the release-note upserter; the
// remaining services are thin orchestrations of ConnectClient calls.
// All services are stateless between calls and safe to construct once
// per invocation.
package services
