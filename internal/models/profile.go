package models

// Prompt is a question/answer pair shown on a profile card.
type Prompt struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Profile is a dating candidate. Profiles are fixed at process start and
// never mutated.
type Profile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Location         string   `json:"location"`
	Occupation       string   `json:"occupation"`
	Tagline          string   `json:"tagline"`
	Bio              string   `json:"bio"`
	Interests        []string `json:"interests"`
	Prompts          []Prompt `json:"prompts"`
	Compatibility    int      `json:"compatibility"`
	CompatibilityWhy string   `json:"compatibilityWhy"`
	Vibe             string   `json:"vibe"`
	Image            string   `json:"image"`
}

// Recommendation is the summary projection of a Profile returned by
// GET /api/recommendations.
type Recommendation struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Compatibility int    `json:"compatibility"`
	Vibe          string `json:"vibe"`
	Highlight     string `json:"highlight"`
}
