package track

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const (
	dialTimeout = 3 * time.Second

	// Frames older than this count as "no hand"; the camera service sends
	// continuously while a hand is visible, so a gap means tracking lost it.
	freshWindow = 250 * time.Millisecond
)

// NormPoint is a landmark in normalized [0, 1] coordinates as delivered by
// the tracking service. The service mirrors the camera image before
// detection so aim follows the hand naturally.
type NormPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// landmarkFrame is the wire format of one tracking message.
type landmarkFrame struct {
	Points []NormPoint `json:"points"`
}

// Feed is a websocket client for the hand tracking service. A background
// reader keeps only the most recent frame; the game polls Latest once per
// tick and never blocks on the network.
type Feed struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	now    func() time.Time

	mu         sync.Mutex
	points     []NormPoint
	receivedAt time.Time

	closeOnce sync.Once
	closeErr  error
}

// NewFeed dials the tracking service and starts the reader. Dial failure is
// returned to the caller so it can fall back to mouse input.
func NewFeed(url string) (*Feed, error) {
	ctx, cancel := context.WithCancel(context.Background())

	dialCtx, dialCancel := context.WithTimeout(ctx, dialTimeout)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("dial landmark feed %s: %w", url, err)
	}

	f := &Feed{
		conn:   conn,
		cancel: cancel,
		now:    time.Now,
	}
	go f.readLoop(ctx)
	return f, nil
}

// readLoop stores each incoming frame, discarding anything older. Malformed
// messages are skipped; a read error ends the loop and the feed goes stale.
func (f *Feed) readLoop(ctx context.Context) {
	for {
		_, data, err := f.conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("landmark feed read: %v", err)
			}
			return
		}

		var frame landmarkFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}

		f.mu.Lock()
		f.points = frame.Points
		f.receivedAt = f.now()
		f.mu.Unlock()
	}
}

// Latest returns the most recent landmark frame, or ok=false when no hand
// is currently tracked (empty frame or nothing fresh within the window).
func (f *Feed) Latest() ([]NormPoint, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.points) == 0 {
		return nil, false
	}
	if f.now().Sub(f.receivedAt) > freshWindow {
		return nil, false
	}
	return f.points, true
}

// Close shuts the connection down. Safe to call more than once.
func (f *Feed) Close() error {
	f.closeOnce.Do(func() {
		f.cancel()
		f.closeErr = f.conn.Close(websocket.StatusNormalClosure, "shutdown")
	})
	return f.closeErr
}
