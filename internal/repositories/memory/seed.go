package memory

import (
	"time"

	"github.com/omoluabi/heartville/internal/models"
)

// Demo fixtures. Everything here is reset on restart; the match ledger seed
// gives the default user a bit of history so the app is not empty on first
// launch.

func DemoProfiles() []models.Profile {
	return []models.Profile{
		{
			ID:         "user-1",
			Name:       "Nova Carter",
			Age:        29,
			Location:   "Austin, TX",
			Occupation: "Product designer at a climate-tech startup",
			Tagline:    "Weekday UX nerd, weekend vintage camper explorer",
			Bio:        "Curious human who loves prototyping products, playlists, and picnic spreads. Most weekends you can find me chasing the best breakfast tacos or off-grid in my renovated camper van.",
			Interests:  []string{"Live music", "Van life", "Analog photography", "National parks", "Cold brew experiments"},
			Prompts: []models.Prompt{
				{Question: "The hallmark of a great Sunday morning is…", Answer: "Sunrise paddle boarding followed by plotting our next tiny adventure."},
				{Question: "I geek out on", Answer: "Service design, community-built cities, and campfire cooking gadgets."},
				{Question: "Green flags", Answer: "You’re empathetic, communicate openly, and love surprising friends with thoughtful playlists."},
			},
			Compatibility:    97,
			CompatibilityWhy: "Shared love for intentional living, creative projects, and spontaneous travel days.",
			Vibe:             "Warm, intentional, adventure-ready",
			Image:            "https://images.unsplash.com/photo-1531891437562-4301cf35b7e4?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:         "user-2",
			Name:       "Maya Green",
			Age:        31,
			Location:   "Denver, CO",
			Occupation: "Sustainability strategist",
			Tagline:    "Mountain trail chaser with a soft spot for cozy bookstores",
			Bio:        "My superpower is turning climate data into community action. When I’m not organizing zero-waste pop-ups, I’m training for my next trail race or hosting a themed dinner party.",
			Interests:  []string{"Trail running", "Community gardening", "Fermentation", "Indie bookstores", "Astrophotography"},
			Prompts: []models.Prompt{
				{Question: "A recent shower thought", Answer: "What if every city had a “library of things” so we never had to buy single-use gear again?"},
				{Question: "Most used emoji", Answer: "🌱 — because everything can grow if you tend to it."},
				{Question: "On my nightstand", Answer: "A stack of climate fiction, a Polaroid camera, and lavender oil for winding down."},
			},
			Compatibility:    92,
			CompatibilityWhy: "You both geek out over impact projects, good storytelling, and altitude adventures.",
			Vibe:             "Grounded, generous, purposeful",
			Image:            "https://images.unsplash.com/photo-1544723795-3fb6469f5b39?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:         "user-3",
			Name:       "Jasper Lin",
			Age:        27,
			Location:   "Seattle, WA",
			Occupation: "Machine learning engineer",
			Tagline:    "Coffee tasting flights > bar crawls",
			Bio:        "I build responsible AI by day and chase the best cortados by night. Currently learning to forage mushrooms and taking improv classes to stay out of my comfort zone.",
			Interests:  []string{"Third-wave coffee", "Improv comedy", "Foraging", "Studio pottery", "Cozy sci-fi"},
			Prompts: []models.Prompt{
				{Question: "In another life I’d be", Answer: "A neighborhood cafe owner who curates vinyl listening nights."},
				{Question: "Best travel story", Answer: "Built a popup espresso bar for my hostel in Kyoto and made friends for life."},
				{Question: "I’m learning", Answer: "How to surf the Washington coast without sacrificing feeling in my toes."},
			},
			Compatibility:    88,
			CompatibilityWhy: "Complementary balance of grounded energy and playful spontaneity.",
			Vibe:             "Thoughtful, witty, quietly bold",
			Image:            "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:         "user-4",
			Name:       "Sasha Ibarra",
			Age:        34,
			Location:   "Brooklyn, NY",
			Occupation: "Community architect",
			Tagline:    "Hosting supper clubs & slow fashion swaps",
			Bio:        "I design spaces for people to feel seen — sometimes that’s a park, sometimes it’s a neighborhood dinner. Loud laugher, big feeler, always planning the next community experiment.",
			Interests:  []string{"Supper clubs", "Documentary film", "Slow fashion", "Urban gardening", "Ceramics"},
			Prompts: []models.Prompt{
				{Question: "Let’s debate", Answer: "Best underrated New York bakery and why it deserves a Michelin star."},
				{Question: "Six months from now", Answer: "Hosting a neighborhood night market under string lights."},
				{Question: "Two truths and a lie", Answer: "I once catered a wedding with zero food waste, I’ve run a marathon in crocs, I collect antique postcards."},
			},
			Compatibility:    85,
			CompatibilityWhy: "You connect over community building and creative expression with room to inspire each other.",
			Vibe:             "Magnetic, nurturing, celebratory",
			Image:            "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?auto=format&fit=crop&w=800&q=80",
		},
	}
}

func DemoMatches(userID string) []models.Match {
	now := time.Now().UTC()
	return []models.Match{
		{
			ID:            "match-1",
			UserID:        userID,
			TargetID:      "user-2",
			Compatibility: 92,
			CreatedAt:     now.Add(-5 * time.Hour),
			ConversationStarters: []string{
				"Ask Maya about her latest zero-waste pop-up experiment.",
				"Compare trail running routes you both adore.",
				"Swap climate fiction recommendations for cozy fall nights.",
			},
		},
		{
			ID:            "match-2",
			UserID:        userID,
			TargetID:      "user-4",
			Compatibility: 85,
			CreatedAt:     now.Add(-30 * time.Hour),
			ConversationStarters: []string{
				"Invite Sasha to your favorite community event this month.",
				"Share a dream supper club menu and see what she’d add.",
				"Ask about the last neighborhood experiment that surprised her.",
			},
		},
	}
}

func DemoMessagePreviews() []models.MessagePreview {
	now := time.Now().UTC()
	return []models.MessagePreview{
		{
			MatchID:   "match-1",
			Name:      "Maya Green",
			Preview:   "Loved your idea about a neighborhood library of things! Want to brainstorm over chai? ☕️",
			Timestamp: now.Add(-45 * time.Minute),
		},
		{
			MatchID:   "match-2",
			Name:      "Sasha Ibarra",
			Preview:   "String lights & a vinyl DJ? Say less. Let’s co-host the next one. 🎧",
			Timestamp: now.Add(-26 * time.Hour),
		},
	}
}

func DemoInsights() models.InsightsSummary {
	return models.InsightsSummary{
		TotalLikesThisWeek: 18,
		TopInterests: []models.InterestCount{
			{Label: "Community events", Count: 12},
			{Label: "Live music", Count: 9},
			{Label: "Mindful travel", Count: 7},
		},
		ResponseRate:       92,
		ConnectionStrength: 88,
		Highlight:          "You spark the most conversations when you mention intentional travel and creative communities. Keep leaning into stories that show how you build spaces for others.",
	}
}

func DemoAlbum() models.CatalogueAlbum {
	return models.CatalogueAlbum{
		ID:          "omoluabi-catalogue-album",
		Title:       "Omoluabi Catalogue Album",
		Curator:     "Omoluabi Records",
		ReleaseDate: "2025-08-15",
		Description: "An Omoluabi concept album that follows the emotional arc of intentional dating—from first sparks to grounded connection across Lagos, London, and beyond.",
		CoverArt:    "https://images.unsplash.com/photo-1520975916090-3105956dac38?auto=format&fit=crop&w=900&q=80",
		Tags:        []string{"afro-fusion", "intentional pop", "concept album"},
		Tracks: []models.Track{
			{
				ID:       "track-starlit-signals",
				Title:    "Starlit Signals",
				Artist:   "Nova Carter",
				Duration: "3:18",
				Mood:     "Dreamy electro-soul for reflective night walks after a new match.",
				URL:      "https://suno.com/s/starlit-signals-heartville",
				Tags:     []string{"dreamy", "electro-soul", "night drive"},
			},
			{
				ID:       "track-lantern-conversations",
				Title:    "Lantern Conversations",
				Artist:   "Maya Green & Jasper Lin",
				Duration: "2:54",
				Mood:     "Acoustic warmth for the first real conversation that lingers past midnight.",
				URL:      "https://suno.com/s/lantern-conversations-heartville",
				Tags:     []string{"acoustic", "warm", "duet"},
			},
			{
				ID:        "NLfUnFJQPLg3HEmE",
				Title:     "Love Without Empathy",
				Artist:    "McD",
				Duration:  "2:58",
				Mood:      "A moody alt-pop reflection on choosing empathy over performance.",
				URL:       "https://suno.com/s/NLfUnFJQPLg3HEmE",
				Tags:      []string{"alt-pop", "moody", "introspective", "omoluabi"},
				Spotlight: true,
			},
		},
	}
}
