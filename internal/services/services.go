package services

// DefaultUserID is the fixed demo identity used whenever a request carries no
// userId. There is no authentication anywhere in the app.
const DefaultUserID = "user-1"

// Broadcaster fans an event out to every connected realtime listener.
// Implementations must not block the caller.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// NopBroadcaster satisfies Broadcaster when no realtime channel is wired.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(string, any) {}
