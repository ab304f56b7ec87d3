// Package domain defines the core business entities for Ascribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - App: An application in the App Store Connect catalog
//   - AppStoreVersion: One release train for an app and platform
//   - VersionLocalization: Per-locale release-note text for a version
//   - Build: An uploaded binary artifact
//   - ReviewSubmission: A per-platform container for review requests
//   - Credentials: Stored App Store Connect API key material
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
