package mapping

import "ad-fanout/internal/core/domain"

type ctaRow struct {
	meta     string
	linkedIn string
	tiktok   string
	label    string
}

var callToActions = map[domain.CallToAction]ctaRow{
	domain.CTALearnMore: {meta: "LEARN_MORE", linkedIn: "LEARN_MORE", tiktok: "LEARN_MORE", label: "Learn more"},
	domain.CTAShopNow:   {meta: "SHOP_NOW", linkedIn: "LEARN_MORE", tiktok: "SHOP_NOW", label: "Shop now"},
	domain.CTASignUp:    {meta: "SIGN_UP", linkedIn: "SIGN_UP", tiktok: "SIGN_UP", label: "Sign up"},
	domain.CTADownload:  {meta: "DOWNLOAD", linkedIn: "DOWNLOAD", tiktok: "DOWNLOAD", label: "Download"},
	domain.CTAContactUs: {meta: "CONTACT_US", linkedIn: "LEARN_MORE", tiktok: "CONTACT_US", label: "Contact us"},
	domain.CTABookNow:   {meta: "BOOK_TRAVEL", linkedIn: "REGISTER", tiktok: "BOOK_NOW", label: "Book now"},
	domain.CTAGetQuote:  {meta: "GET_QUOTE", linkedIn: "REQUEST_DEMO", tiktok: "GET_QUOTE", label: "Get quote"},
	domain.CTASubscribe: {meta: "SUBSCRIBE", linkedIn: "SUBSCRIBE", tiktok: "SUBSCRIBE", label: "Subscribe"},
	domain.CTAApplyNow:  {meta: "APPLY_NOW", linkedIn: "APPLY", tiktok: "APPLY_NOW", label: "Apply now"},
	domain.CTAWatchMore: {meta: "WATCH_MORE", linkedIn: "LEARN_MORE", tiktok: "WATCH_NOW", label: "Watch more"},
}

// Unknown or empty calls to action fall back to learn_more on every platform.
var defaultCTA = callToActions[domain.CTALearnMore]

func ctaRowFor(c domain.CallToAction) ctaRow {
	if row, ok := callToActions[c]; ok {
		return row
	}
	return defaultCTA
}

// MetaCallToAction returns the call_to_action.type of a Meta creative.
func MetaCallToAction(c domain.CallToAction) string { return ctaRowFor(c).meta }

// LinkedInCallToAction returns the callToAction label of a LinkedIn post.
func LinkedInCallToAction(c domain.CallToAction) string { return ctaRowFor(c).linkedIn }

// TikTokCallToAction returns the call_to_action of a TikTok ad.
func TikTokCallToAction(c domain.CallToAction) string { return ctaRowFor(c).tiktok }

// CallToActionLabel returns button text for platforms taking free text
// (Google display ads).
func CallToActionLabel(c domain.CallToAction) string { return ctaRowFor(c).label }
