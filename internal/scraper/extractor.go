package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gosign/internal/domain"
)

// Extractor pulls video references out of a parsed sign page.
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// VideoURLs returns the src of every source element whose URL ends with
// .mp4, in document order. Duplicates are kept; callers that want a unique
// set must deduplicate themselves.
func (e *Extractor) VideoURLs(doc *goquery.Document) []string {
	urls := []string{}

	doc.Find("video source").Each(func(_ int, s *goquery.Selection) {
		src, exists := s.Attr("src")
		if exists && strings.HasSuffix(src, ".mp4") {
			urls = append(urls, src)
		}
	})

	return urls
}

// VideoDetails returns one reference per video element that contains a
// nested source element, combining the video's poster and id with the
// source's src and type. Videos without a source are skipped.
func (e *Extractor) VideoDetails(doc *goquery.Document) []domain.VideoReference {
	refs := []domain.VideoReference{}

	doc.Find("video").Each(func(_ int, video *goquery.Selection) {
		source := video.Find("source").First()
		if source.Length() == 0 {
			return
		}

		mimeType, exists := source.Attr("type")
		if !exists || mimeType == "" {
			mimeType = domain.DefaultMimeType
		}

		refs = append(refs, domain.VideoReference{
			SourceURL: source.AttrOr("src", ""),
			PosterURL: video.AttrOr("poster", ""),
			SourceID:  video.AttrOr("id", ""),
			MimeType:  mimeType,
		})
	})

	return refs
}

// HasVideos reports whether the document contains at least one video
// element, whether or not it has a usable mp4 source.
func (e *Extractor) HasVideos(doc *goquery.Document) bool {
	return doc.Find("video").Length() > 0
}
