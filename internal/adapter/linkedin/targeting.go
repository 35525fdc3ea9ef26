package linkedin

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const maxFacetValues = 200

// Targeting facet names.
const (
	FacetAgeRanges        = "urn:li:adTargetingFacet:ageRanges"
	FacetGenders          = "urn:li:adTargetingFacet:genders"
	FacetLocations        = "urn:li:adTargetingFacet:locations"
	FacetInterfaceLocales = "urn:li:adTargetingFacet:interfaceLocales"
	FacetInterests        = "urn:li:adTargetingFacet:interests"
	FacetTitles           = "urn:li:adTargetingFacet:titles"
	FacetIndustries       = "urn:li:adTargetingFacet:industries"
	FacetSeniorities      = "urn:li:adTargetingFacet:seniorities"
	FacetStaffCountRanges = "urn:li:adTargetingFacet:staffCountRanges"
	FacetSkills           = "urn:li:adTargetingFacet:skills"
)

// facetOrder fixes the clause order of the payload.
var facetOrder = []string{
	FacetLocations, FacetAgeRanges, FacetGenders, FacetInterfaceLocales, FacetInterests,
	FacetTitles, FacetIndustries, FacetSeniorities, FacetStaffCountRanges, FacetSkills,
}

type bracket struct {
	lo, hi int
	urn    string
}

// LinkedIn only offers these four brackets; 55+ is open-ended.
var brackets = []bracket{
	{18, 24, "urn:li:ageRange:(18,24)"},
	{25, 34, "urn:li:ageRange:(25,34)"},
	{35, 54, "urn:li:ageRange:(35,54)"},
	{55, 200, "urn:li:ageRange:(55,2147483647)"},
}

var seniorities = map[string]string{
	"unpaid":   "urn:li:seniority:1",
	"training": "urn:li:seniority:2",
	"entry":    "urn:li:seniority:3",
	"senior":   "urn:li:seniority:4",
	"manager":  "urn:li:seniority:5",
	"director": "urn:li:seniority:6",
	"vp":       "urn:li:seniority:7",
	"cxo":      "urn:li:seniority:8",
	"partner":  "urn:li:seniority:9",
	"owner":    "urn:li:seniority:10",
}

var titles = map[string]string{
	"software engineer":   "urn:li:title:9",
	"product manager":     "urn:li:title:266",
	"marketing manager":   "urn:li:title:25",
	"data scientist":      "urn:li:title:25190",
	"sales manager":       "urn:li:title:1",
	"account executive":   "urn:li:title:43",
	"chief executive":     "urn:li:title:8",
	"ceo":                 "urn:li:title:8",
	"cto":                 "urn:li:title:153",
	"designer":            "urn:li:title:1034",
	"recruiter":           "urn:li:title:3",
	"project manager":     "urn:li:title:4",
	"business analyst":    "urn:li:title:29",
	"financial analyst":   "urn:li:title:115",
	"devops engineer":     "urn:li:title:10521",
	"hr manager":          "urn:li:title:179",
	"operations manager":  "urn:li:title:62",
	"consultant":          "urn:li:title:39",
	"founder":             "urn:li:title:35",
	"engineering manager": "urn:li:title:1685",
}

var industries = map[string]string{
	"software development":   "urn:li:industry:4",
	"computer software":      "urn:li:industry:4",
	"technology":             "urn:li:industry:6",
	"internet":               "urn:li:industry:6",
	"it services":            "urn:li:industry:96",
	"financial services":     "urn:li:industry:43",
	"banking":                "urn:li:industry:41",
	"hospital & health care": "urn:li:industry:14",
	"healthcare":             "urn:li:industry:14",
	"marketing":              "urn:li:industry:80",
	"advertising":            "urn:li:industry:80",
	"higher education":       "urn:li:industry:68",
	"education":              "urn:li:industry:68",
	"real estate":            "urn:li:industry:44",
	"retail":                 "urn:li:industry:27",
	"manufacturing":          "urn:li:industry:25",
	"telecommunications":     "urn:li:industry:8",
}

var skills = map[string]string{
	"go":                 "urn:li:skill:17893",
	"golang":             "urn:li:skill:17893",
	"python":             "urn:li:skill:1422",
	"java":               "urn:li:skill:1345",
	"javascript":         "urn:li:skill:1377",
	"sql":                "urn:li:skill:1593",
	"kubernetes":         "urn:li:skill:54227",
	"machine learning":   "urn:li:skill:2589",
	"project management": "urn:li:skill:1412",
	"digital marketing":  "urn:li:skill:3063",
	"sales":              "urn:li:skill:1551",
	"leadership":         "urn:li:skill:1401",
}

// staffCounts are the company size ranges LinkedIn accepts.
var staffCounts = [][2]int{
	{1, 1}, {2, 10}, {11, 50}, {51, 200}, {201, 500},
	{501, 1000}, {1001, 5000}, {5001, 10000}, {10001, 2147483647},
}

// Clause is one OR group of a targeting criteria AND list.
type Clause struct {
	Or map[string][]string `json:"or"`
}

// Targeting is a LinkedIn targetingCriteria: every clause must match.
type Targeting struct {
	Include struct {
		And []Clause `json:"and"`
	} `json:"include"`
}

// Facet returns the values of one facet, or nil.
func (t Targeting) Facet(name string) []string {
	for _, c := range t.Include.And {
		if v, ok := c.Or[name]; ok {
			return v
		}
	}
	return nil
}

// Transformer converts unified targeting into LinkedIn targeting criteria.
type Transformer struct{}

// Transform picks age brackets by containment, then widens: first to the
// bracket holding AgeMin, then to the smallest bracket at or above AgeMin.
// Unresolved names of every facet are dropped.
func (Transformer) Transform(t domain.UnifiedTargeting) Targeting {
	facets := make(map[string][]string)
	add := func(facet, urn string) {
		for _, v := range facets[facet] {
			if v == urn {
				return
			}
		}
		facets[facet] = append(facets[facet], urn)
	}

	for _, b := range AgeBrackets(t.AgeMin, t.AgeMax) {
		add(FacetAgeRanges, b)
	}

	if !t.Unrestricted() {
		if t.HasGender(domain.GenderMale) {
			add(FacetGenders, "urn:li:gender:MALE")
		} else {
			add(FacetGenders, "urn:li:gender:FEMALE")
		}
	}

	for _, loc := range t.Locations {
		if ref, ok := mapping.Location(domain.PlatformLinkedIn, loc.Type, loc.Name); ok {
			add(FacetLocations, "urn:li:geo:"+ref.ID)
		}
	}
	for _, lang := range t.Languages {
		if locale, ok := mapping.Language(domain.PlatformLinkedIn, lang); ok {
			add(FacetInterfaceLocales, "urn:li:locale:"+locale)
		}
	}
	for _, ref := range mapping.Interests(domain.PlatformLinkedIn, t.Interests) {
		add(FacetInterests, ref.ID)
	}

	if ext := t.LinkedIn; ext != nil {
		for _, v := range ext.JobTitles {
			if urn, ok := lookup(titles, v); ok {
				add(FacetTitles, urn)
			}
		}
		for _, v := range ext.Industries {
			if urn, ok := lookup(industries, v); ok {
				add(FacetIndustries, urn)
			}
		}
		for _, v := range ext.Seniorities {
			if urn, ok := lookup(seniorities, v); ok {
				add(FacetSeniorities, urn)
			}
		}
		for _, v := range ext.CompanySizes {
			if urn, ok := staffCountRange(v); ok {
				add(FacetStaffCountRanges, urn)
			}
		}
		for _, v := range ext.Skills {
			if urn, ok := lookup(skills, v); ok {
				add(FacetSkills, urn)
			}
		}
	}

	var out Targeting
	for _, f := range facetOrder {
		if v := facets[f]; len(v) > 0 {
			out.Include.And = append(out.Include.And, Clause{Or: map[string][]string{f: v}})
		}
	}
	return out
}

// Validate checks the criteria before anything is created.
func (Transformer) Validate(t Targeting) []string {
	var errs []string
	if len(t.Facet(FacetLocations)) == 0 {
		errs = append(errs, "LinkedIn targeting: none of the requested locations could be resolved")
	}
	for _, c := range t.Include.And {
		for facet, v := range c.Or {
			if len(v) > maxFacetValues {
				errs = append(errs, fmt.Sprintf("LinkedIn targeting: at most %d values per facet (%s has %d)", maxFacetValues, facet, len(v)))
			}
		}
	}
	return errs
}

// AgeBrackets returns the bracket URNs for [lo, hi]. A maximum of 65 means
// "65 and over".
func AgeBrackets(lo, hi int) []string {
	if hi >= 65 {
		hi = brackets[len(brackets)-1].hi
	}
	var out []string
	for _, b := range brackets {
		if b.lo >= lo && b.hi <= hi {
			out = append(out, b.urn)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, b := range brackets {
		if lo >= b.lo && lo <= b.hi {
			return []string{b.urn}
		}
	}
	for _, b := range brackets {
		if b.lo >= lo {
			return []string{b.urn}
		}
	}
	return nil
}

// lookup resolves a name through table; raw URNs pass through.
func lookup(table map[string]string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "urn:li:") {
		return name, true
	}
	urn, ok := table[strings.ToLower(name)]
	return urn, ok
}

// staffCountRange maps a company size such as "11-50" or "10001+" to the
// LinkedIn range containing its lower bound.
func staffCountRange(size string) (string, bool) {
	size = strings.TrimSpace(size)
	lowStr, _, _ := strings.Cut(strings.TrimSuffix(size, "+"), "-")
	low, err := strconv.Atoi(strings.TrimSpace(lowStr))
	if err != nil || low < 1 {
		return "", false
	}
	for _, r := range staffCounts {
		if low >= r[0] && low <= r[1] {
			return fmt.Sprintf("urn:li:staffCountRange:(%d,%d)", r[0], r[1]), true
		}
	}
	return "", false
}

// Restli renders targeting in Rest.li 2.0 query syntax, as audienceCounts
// expects it in the query string.
func (t Targeting) Restli() string {
	clauses := make([]string, 0, len(t.Include.And))
	for _, c := range t.Include.And {
		keys := make([]string, 0, len(c.Or))
		for k := range c.Or {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			vals := make([]string, 0, len(c.Or[k]))
			for _, v := range c.Or[k] {
				vals = append(vals, restliEscape(v))
			}
			parts = append(parts, restliEscape(k)+":List("+strings.Join(vals, ",")+")")
		}
		clauses = append(clauses, "(or:("+strings.Join(parts, ",")+"))")
	}
	return "(include:(and:List(" + strings.Join(clauses, ",") + ")))"
}

// restliEscape percent-encodes a value; Rest.li reads "+" literally.
func restliEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
