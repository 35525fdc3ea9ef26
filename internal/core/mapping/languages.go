package mapping

import "ad-fanout/internal/core/domain"

type languageRow struct {
	code     string
	meta     string // Graph API locale id
	google   string // languageConstants id
	linkedIn string // interface locale
}

var languages = map[string]languageRow{
	"english":    {code: "en", meta: "6", google: "1000", linkedIn: "en_US"},
	"spanish":    {code: "es", meta: "23", google: "1003", linkedIn: "es_ES"},
	"french":     {code: "fr", meta: "9", google: "1002", linkedIn: "fr_FR"},
	"german":     {code: "de", meta: "5", google: "1001", linkedIn: "de_DE"},
	"italian":    {code: "it", meta: "10", google: "1004", linkedIn: "it_IT"},
	"portuguese": {code: "pt", meta: "16", google: "1014", linkedIn: "pt_BR"},
	"dutch":      {code: "nl", meta: "14", google: "1010", linkedIn: "nl_NL"},
	"japanese":   {code: "ja", meta: "11", google: "1005", linkedIn: "ja_JP"},
	"hindi":      {code: "hi", meta: "46", google: "1023", linkedIn: ""},
}

var languageByCode = func() map[string]languageRow {
	idx := make(map[string]languageRow, len(languages))
	for _, row := range languages {
		idx[row.code] = row
	}
	return idx
}()

// Language resolves a language name or ISO 639-1 code in the namespace of p.
// TikTok takes the ISO code itself.
func Language(p domain.Platform, name string) (string, bool) {
	key := normalize(name)
	row, ok := languages[key]
	if !ok {
		row, ok = languageByCode[key]
	}
	if !ok {
		return "", false
	}
	var id string
	switch p {
	case domain.PlatformMeta:
		id = row.meta
	case domain.PlatformGoogle:
		id = row.google
	case domain.PlatformLinkedIn:
		id = row.linkedIn
	case domain.PlatformTikTok:
		id = row.code
	}
	return id, id != ""
}
