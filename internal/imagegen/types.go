package imagegen

import "context"

// SourceImage is the caller-supplied photograph. Data stays base64-encoded
// through the whole pipeline; the service never decodes or re-encodes image
// bytes, so the payload returned to the caller is byte-for-byte what the
// model produced.
type SourceImage struct {
	Base64Data string
	MIMEType   string
}

// PhotoOptions are the style choices applied to the generated ID photo.
type PhotoOptions struct {
	BackgroundColor      string
	Outfit               string
	EnableBeautification bool
}

// SegmentKind tags the two content shapes the generation API can return.
type SegmentKind int

const (
	SegmentImage SegmentKind = iota
	SegmentText
)

// Segment is one unit of the model response, either an inline image
// (MIMEType + base64 Data) or a piece of text.
type Segment struct {
	Kind     SegmentKind
	MIMEType string
	Data     string
	Text     string
}

// EditResult is the normalized outcome of a single generation call.
type EditResult struct {
	FinishReason string
	ModelVersion string
	Segments     []Segment
}

// SafetyBlocked reports whether generation stopped because of a safety
// policy. Image-capable models signal image policy blocks with a dedicated
// reason, so both spellings count.
func (r *EditResult) SafetyBlocked() bool {
	return r != nil && (r.FinishReason == "SAFETY" || r.FinishReason == "IMAGE_SAFETY")
}

// FirstImage returns the first image segment, if any.
func (r *EditResult) FirstImage() (Segment, bool) {
	if r == nil {
		return Segment{}, false
	}
	for _, seg := range r.Segments {
		if seg.Kind == SegmentImage && seg.Data != "" {
			return seg, true
		}
	}
	return Segment{}, false
}

// FirstText returns the first non-empty text segment, if any.
func (r *EditResult) FirstText() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, seg := range r.Segments {
		if seg.Kind == SegmentText && seg.Text != "" {
			return seg.Text, true
		}
	}
	return "", false
}

// Editor performs exactly one generation call per invocation. Implementations
// must not retry or fan out.
type Editor interface {
	EditImage(ctx context.Context, source SourceImage, instruction string) (*EditResult, error)
	HasCredentials() bool
}
