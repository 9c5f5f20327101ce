package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/omoluabi/heartville/internal/client"
	"github.com/omoluabi/heartville/internal/logger"
	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/services"
)

// Terminal walkthrough of the Heartville API: connects to the live channel,
// swipes through the deck, and prints the resulting matches.
func main() {
	_ = godotenv.Load()

	log := logger.New()

	baseURL := os.Getenv("HEARTVILLE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}
	userID := os.Getenv("HEARTVILLE_USER")
	if userID == "" {
		userID = services.DefaultUserID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(baseURL)

	profiles, err := api.Profiles(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to load profiles")
	}

	deck := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != userID {
			deck = append(deck, p)
		}
	}

	session := client.NewSwipeSession(api, userID, deck)

	go func() {
		err := client.Listen(ctx, baseURL, client.Handlers{
			OnWelcome: func(message string) {
				fmt.Println("live:", message)
			},
			OnNewMatch: func(view models.MatchView) {
				if session.Matches().Add(view) {
					name := "someone lovely"
					if view.Profile != nil {
						name = view.Profile.Name
					}
					fmt.Printf("live: new connection with %s!\n", name)
				}
			},
		})
		if err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("live channel closed")
		}
	}()

	recs, err := api.Recommendations(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to load recommendations")
	}
	fmt.Println("recommended for you:")
	for _, r := range recs {
		fmt.Printf("  %s (%d%%) — %s\n", r.Name, r.Compatibility, r.Highlight)
	}

	// Super-like the first card, like the second, pass the rest.
	for i := 0; ; i++ {
		profile, ok := session.Current()
		if !ok {
			break
		}
		switch i {
		case 0:
			fmt.Printf("super-liking %s…\n", profile.Name)
			if result := session.SuperLike(ctx); result != nil {
				for _, starter := range result.ConversationStarters {
					fmt.Println("  starter:", starter)
				}
			}
		case 1:
			fmt.Printf("liking %s…\n", profile.Name)
			session.Like(ctx)
		default:
			fmt.Printf("passing on %s\n", profile.Name)
			session.Pass()
		}
		if notice, ok := session.Notice(); ok {
			fmt.Printf("  [%s] %s\n", notice.Tone, notice.Message)
		}
	}

	// Give the broadcast a beat to arrive before printing the final list.
	time.Sleep(500 * time.Millisecond)

	fmt.Println("your matches:")
	for _, m := range session.Matches().Sorted() {
		name := m.TargetID
		if m.Profile != nil {
			name = m.Profile.Name
		}
		fmt.Printf("  %s — %d%% (%s)\n", name, m.Compatibility, m.ID)
	}
}
