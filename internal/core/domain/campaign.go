package domain

import "time"

// Objective is the platform-neutral goal of a campaign. Each platform maps it
// onto its own enum through the mapping package.
type Objective string

const (
	ObjectiveAwareness    Objective = "awareness"
	ObjectiveTraffic      Objective = "traffic"
	ObjectiveEngagement   Objective = "engagement"
	ObjectiveLeads        Objective = "leads"
	ObjectiveConversions  Objective = "conversions"
	ObjectiveAppPromotion Objective = "app_promotion"
)

// Objectives lists every supported objective in declaration order.
var Objectives = []Objective{
	ObjectiveAwareness,
	ObjectiveTraffic,
	ObjectiveEngagement,
	ObjectiveLeads,
	ObjectiveConversions,
	ObjectiveAppPromotion,
}

// Valid reports whether o is one of the supported objectives.
func (o Objective) Valid() bool {
	for _, v := range Objectives {
		if v == o {
			return true
		}
	}
	return false
}

// BudgetType tells whether an amount is spent per day or over the whole run.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// Budget is expressed in major currency units (e.g. dollars). Clients convert
// it to the platform's minor unit.
type Budget struct {
	Amount float64    `json:"amount" validate:"gt=0"`
	Type   BudgetType `json:"type" validate:"oneof=daily lifetime"`
}

// Schedule is the requested run window. StartDate must precede EndDate.
type Schedule struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Days returns the number of started days covered by the schedule.
func (s Schedule) Days() int {
	d := s.EndDate.Sub(s.StartDate)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// BidStrategy is the platform-neutral bidding strategy.
type BidStrategy string

const (
	BidLowestCost          BidStrategy = "lowest_cost"
	BidCostCap             BidStrategy = "cost_cap"
	BidCap                 BidStrategy = "bid_cap"
	BidTargetCPA           BidStrategy = "target_cpa"
	BidManualCPC           BidStrategy = "manual_cpc"
	BidMaximizeConversions BidStrategy = "maximize_conversions"
)

// Bidding is optional; when absent each platform uses its automatic bidding.
type Bidding struct {
	Strategy BidStrategy `json:"strategy" validate:"omitempty,oneof=lowest_cost cost_cap bid_cap target_cpa manual_cpc maximize_conversions"`
	BidCap   *float64    `json:"bidCap,omitempty" validate:"omitempty,gt=0"`
}

// UnifiedCampaignData is the single input to every distributor. It is
// constructed by the caller and never mutated by the core.
type UnifiedCampaignData struct {
	Name      string           `json:"name" validate:"required"`
	Objective Objective        `json:"objective" validate:"required,objective"`
	Budget    Budget           `json:"budget"`
	Schedule  Schedule         `json:"schedule"`
	Targeting UnifiedTargeting `json:"targeting"`
	Creative  Creative         `json:"creative"`
	Bidding   *Bidding         `json:"bidding,omitempty"`
}

// DailyAmount returns the budget normalised to a per-day amount. Lifetime
// budgets are spread evenly over the schedule.
func (c UnifiedCampaignData) DailyAmount() float64 {
	if c.Budget.Type != BudgetLifetime {
		return c.Budget.Amount
	}
	days := c.Schedule.Days()
	if days == 0 {
		return c.Budget.Amount
	}
	return c.Budget.Amount / float64(days)
}
