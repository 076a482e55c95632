package domain

// DefaultMimeType is assumed when a source element carries no type attribute.
const DefaultMimeType = "video/mp4"

// VideoReference describes one video found on a sign page. References are
// produced per request by extraction and discarded afterwards; they are never
// persisted independently of a download.
type VideoReference struct {
	// SourceURL is the direct URL of the video file.
	SourceURL string `json:"url"`
	// PosterURL is the preview image shown before playback, if any.
	PosterURL string `json:"poster,omitempty"`
	// SourceID is the id attribute of the video element, if any.
	SourceID string `json:"id,omitempty"`
	// MimeType is the declared content type of the source.
	MimeType string `json:"type"`
}
