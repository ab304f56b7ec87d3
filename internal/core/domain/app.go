package domain

import (
	"fmt"
	"strings"
)

// App is an application in the App Store Connect catalog.
// Apps are looked up by this tool, never created or mutated.
type App struct {
	// ID is the numeric identifier assigned by App Store Connect.
	ID string `json:"id"`
	// BundleID is the reverse-domain bundle identifier (e.g. "com.example.myapp").
	BundleID string `json:"bundle_id"`
	// Name is the display name in the catalog.
	Name string `json:"name"`
}

// Platform identifies the target platform of a version or build.
// Values match the App Store Connect API platform enumeration.
type Platform string

// Platforms recognised by the App Store Connect API.
// Only iOS and macOS are exercised by the publishing workflow;
// tvOS and visionOS are accepted as filter values.
const (
	PlatformIOS      Platform = "IOS"
	PlatformMacOS    Platform = "MAC_OS"
	PlatformTVOS     Platform = "TV_OS"
	PlatformVisionOS Platform = "VISION_OS"
)

// ParsePlatform converts a user-facing platform name ("ios", "macos")
// into its API value. The comparison is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ios":
		return PlatformIOS, nil
	case "macos", "mac_os", "osx":
		return PlatformMacOS, nil
	case "tvos", "tv_os":
		return PlatformTVOS, nil
	case "visionos", "vision_os":
		return PlatformVisionOS, nil
	default:
		return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, s)
	}
}

// String returns the API value of the platform.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the human-facing spelling of the platform.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformMacOS:
		return "macOS"
	case PlatformTVOS:
		return "tvOS"
	case PlatformVisionOS:
		return "visionOS"
	default:
		return string(p)
	}
}

// IsBundleID reports whether the given app identifier is a bundle
// identifier rather than a numeric App Store Connect ID. Bundle
// identifiers are reverse-domain strings and always contain a dot.
func IsBundleID(s string) bool {
	return strings.Contains(s, ".")
}
