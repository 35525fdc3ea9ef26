package domain

// MediaType is the kind of asset referenced by a MediaItem.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem references an asset that clients upload or link to.
type MediaItem struct {
	Type MediaType `json:"type" validate:"oneof=image video"`
	URL  string    `json:"url" validate:"required,url"`
}

// CallToAction is the unified call-to-action button.
type CallToAction string

const (
	CTALearnMore CallToAction = "learn_more"
	CTAShopNow   CallToAction = "shop_now"
	CTASignUp    CallToAction = "sign_up"
	CTADownload  CallToAction = "download"
	CTAContactUs CallToAction = "contact_us"
	CTABookNow   CallToAction = "book_now"
	CTAGetQuote  CallToAction = "get_quote"
	CTASubscribe CallToAction = "subscribe"
	CTAApplyNow  CallToAction = "apply_now"
	CTAWatchMore CallToAction = "watch_more"
)

// Creative is the ad copy and media shared by every platform.
type Creative struct {
	Headline       string       `json:"headline" validate:"required"`
	PrimaryText    string       `json:"primaryText"`
	Description    string       `json:"description,omitempty"`
	DestinationURL string       `json:"destinationUrl" validate:"required,url"`
	CallToAction   CallToAction `json:"callToAction"`
	Media          []MediaItem  `json:"media" validate:"min=1,dive"`
}

// FirstMedia returns the first media item of the given type.
func (c Creative) FirstMedia(t MediaType) (MediaItem, bool) {
	for _, m := range c.Media {
		if m.Type == t {
			return m, true
		}
	}
	return MediaItem{}, false
}

// MediaOf returns the media items of the given type in order.
func (c Creative) MediaOf(t MediaType) []MediaItem {
	var out []MediaItem
	for _, m := range c.Media {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
