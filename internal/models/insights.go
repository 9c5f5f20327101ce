package models

// InterestCount is one entry of the insights top-interest breakdown.
type InterestCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// InsightsSummary is the precomputed compatibility digest returned by
// GET /api/insights. It is a fixture, not derived from the match ledger.
type InsightsSummary struct {
	TotalLikesThisWeek int             `json:"totalLikesThisWeek"`
	TopInterests       []InterestCount `json:"topInterests"`
	ResponseRate       int             `json:"responseRate"`
	ConnectionStrength int             `json:"connectionStrength"`
	Highlight          string          `json:"highlight"`
}
