package domain

import "time"

// Build is one uploaded binary for an App and Platform. Builds are
// immutable and created externally (by Xcode or an upload pipeline);
// this tool only reads them and links them to versions.
type Build struct {
	// ID is the identifier assigned by App Store Connect.
	ID string `json:"id"`
	// Version is the build's version label (CFBundleVersion).
	Version string `json:"version"`
	// UploadedDate is when the binary finished uploading.
	UploadedDate time.Time `json:"uploaded_date"`
}

// NewestBuild returns the build with the latest upload timestamp, or
// nil for an empty slice. Used as a client-side fallback when the
// server does not honour the sort parameter.
func NewestBuild(builds []Build) *Build {
	if len(builds) == 0 {
		return nil
	}
	newest := &builds[0]
	for i := range builds[1:] {
		if builds[i+1].UploadedDate.After(newest.UploadedDate) {
			newest = &builds[i+1]
		}
	}
	return newest
}
