package client

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/omoluabi/heartville/internal/models"
)

// Handlers receives live events. Nil callbacks are skipped.
type Handlers struct {
	OnWelcome  func(message string)
	OnNewMatch func(models.MatchView)
}

type eventFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Listen dials the server's live channel and dispatches events until the
// context is cancelled or the connection drops. Every client receives every
// new-match event; dedupe with MatchList.Add on receipt.
func Listen(ctx context.Context, baseURL string, h Handlers) error {
	wsURL := strings.Replace(baseURL, "http", "ws", 1) + "/ws"

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		var frame eventFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}

		switch frame.Type {
		case "welcome":
			if h.OnWelcome != nil {
				var data struct {
					Message string `json:"message"`
				}
				_ = json.Unmarshal(frame.Data, &data)
				h.OnWelcome(data.Message)
			}
		case "new-match":
			if h.OnNewMatch != nil {
				var view models.MatchView
				if err := json.Unmarshal(frame.Data, &view); err == nil {
					h.OnNewMatch(view)
				}
			}
		}
	}
}
