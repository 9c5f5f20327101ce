package models

import "time"

// Match records that a user liked a target profile. At most one Match exists
// per (UserID, TargetID) pair; the ledger keeps most-recent-first insertion
// order.
type Match struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	TargetID             string    `json:"targetId"`
	Compatibility        int       `json:"compatibility"`
	CreatedAt            time.Time `json:"createdAt"`
	ConversationStarters []string  `json:"conversationStarters"`
}

// MatchView embeds the resolved target profile alongside the match. This is
// the shape sent over the wire, both in REST responses and in new-match
// broadcast events.
type MatchView struct {
	Match
	Profile *Profile `json:"profile"`
}

// MatchResult is the POST /api/matches response body. NewlyCreated is false
// when the call hit an existing (userId, targetId) pair.
type MatchResult struct {
	MatchView
	NewlyCreated bool `json:"newlyCreated"`
}

// MessagePreview is a read-only conversation summary tied to a match.
type MessagePreview struct {
	MatchID   string    `json:"matchId"`
	Name      string    `json:"name"`
	Preview   string    `json:"preview"`
	Timestamp time.Time `json:"timestamp"`
}
