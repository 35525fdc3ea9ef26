// Package mapping holds the lookup tables that translate human-readable
// categories into each platform's identifiers. Lookups never fail: unknown
// keys either fall back to a documented default or report ok=false so the
// caller can drop the entry.
package mapping

import "ad-fanout/internal/core/domain"

type objectiveRow struct {
	meta             string
	metaOptimization string
	googleChannel    string
	linkedIn         string
	tiktok           string
	tiktokOptimize   string
	tiktokBilling    string
}

var objectives = map[domain.Objective]objectiveRow{
	domain.ObjectiveAwareness: {
		meta: "OUTCOME_AWARENESS", metaOptimization: "REACH",
		googleChannel: "DISPLAY",
		linkedIn:      "BRAND_AWARENESS",
		tiktok:        "REACH", tiktokOptimize: "REACH", tiktokBilling: "CPM",
	},
	domain.ObjectiveTraffic: {
		meta: "OUTCOME_TRAFFIC", metaOptimization: "LINK_CLICKS",
		googleChannel: "SEARCH",
		linkedIn:      "WEBSITE_VISIT",
		tiktok:        "TRAFFIC", tiktokOptimize: "CLICK", tiktokBilling: "CPC",
	},
	domain.ObjectiveEngagement: {
		meta: "OUTCOME_ENGAGEMENT", metaOptimization: "POST_ENGAGEMENT",
		googleChannel: "DISPLAY",
		linkedIn:      "ENGAGEMENT",
		tiktok:        "ENGAGEMENT", tiktokOptimize: "FOLLOWERS", tiktokBilling: "OCPM",
	},
	domain.ObjectiveLeads: {
		meta: "OUTCOME_LEADS", metaOptimization: "LEAD_GENERATION",
		googleChannel: "SEARCH",
		linkedIn:      "LEAD_GENERATION",
		tiktok:        "LEAD_GENERATION", tiktokOptimize: "LEAD_GENERATION", tiktokBilling: "OCPM",
	},
	domain.ObjectiveConversions: {
		meta: "OUTCOME_SALES", metaOptimization: "OFFSITE_CONVERSIONS",
		googleChannel: "SEARCH",
		linkedIn:      "WEBSITE_CONVERSION",
		tiktok:        "WEB_CONVERSIONS", tiktokOptimize: "CONVERT", tiktokBilling: "OCPM",
	},
	domain.ObjectiveAppPromotion: {
		meta: "OUTCOME_APP_PROMOTION", metaOptimization: "APP_INSTALLS",
		googleChannel: "SEARCH",
		// LinkedIn has no app objective; website visits is the closest.
		linkedIn: "WEBSITE_VISIT",
		tiktok:   "APP_PROMOTION", tiktokOptimize: "INSTALL", tiktokBilling: "OCPM",
	},
}

// Unknown objectives map like ObjectiveTraffic.
var defaultObjective = objectives[domain.ObjectiveTraffic]

func objectiveRowFor(o domain.Objective) objectiveRow {
	if row, ok := objectives[o]; ok {
		return row
	}
	return defaultObjective
}

// MetaObjective returns the ODAX campaign objective, default OUTCOME_TRAFFIC.
func MetaObjective(o domain.Objective) string { return objectiveRowFor(o).meta }

// MetaOptimizationGoal returns the ad set optimization goal, default LINK_CLICKS.
func MetaOptimizationGoal(o domain.Objective) string { return objectiveRowFor(o).metaOptimization }

// GoogleChannel returns the advertising channel type, default SEARCH.
func GoogleChannel(o domain.Objective) string { return objectiveRowFor(o).googleChannel }

// LinkedInObjective returns the campaign objectiveType, default WEBSITE_VISIT.
func LinkedInObjective(o domain.Objective) string { return objectiveRowFor(o).linkedIn }

// TikTokObjective returns objective_type, default TRAFFIC.
func TikTokObjective(o domain.Objective) string { return objectiveRowFor(o).tiktok }

// TikTokOptimization returns the ad group optimization_goal and billing_event,
// default CLICK / CPC.
func TikTokOptimization(o domain.Objective) (goal, billing string) {
	row := objectiveRowFor(o)
	return row.tiktokOptimize, row.tiktokBilling
}
