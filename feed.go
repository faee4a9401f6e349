package pinchdeck

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// HandFeed is a latest-value slot between a tracking goroutine and the frame
// loop. Store may be called from any goroutine; Poll returns the newest
// frame and reports InputNone until the first Store.
type HandFeed struct {
	mu    sync.Mutex
	frame HandFrame
	ok    bool
}

// NewHandFeed returns an empty feed.
func NewHandFeed() *HandFeed {
	return &HandFeed{}
}

// Store replaces the current frame.
func (f *HandFeed) Store(frame HandFrame) {
	f.mu.Lock()
	f.frame = frame
	f.ok = true
	f.mu.Unlock()
}

// Poll implements Source.
func (f *HandFeed) Poll() InputFrame {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ok {
		return InputFrame{Kind: InputNone}
	}
	return InputFrame{Kind: InputHand, Hand: f.frame}
}

// landmarkLine is the wire form of one tracking result.
type landmarkLine struct {
	Hand  bool       `json:"hand"`
	Index [2]float64 `json:"index"`
	Thumb [2]float64 `json:"thumb"`
}

// ReadLandmarks decodes newline-delimited JSON tracking results from r into
// feed until EOF or ctx is done. Each line looks like
//
//	{"hand": true, "index": [0.41, 0.52], "thumb": [0.44, 0.57]}
//
// Malformed lines are logged and skipped. Cancellation is checked between
// lines; a blocked read returns only when r does.
func ReadLandmarks(ctx context.Context, r io.Reader, feed *HandFeed, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ln landmarkLine
		if err := json.Unmarshal(raw, &ln); err != nil {
			log.Debug("skipping malformed landmark line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		feed.Store(HandFrame{
			Present:  ln.Hand,
			IndexTip: Vec2{X: ln.Index[0], Y: ln.Index[1]},
			ThumbTip: Vec2{X: ln.Thumb[0], Y: ln.Thumb[1]},
		})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read landmarks: %w", err)
	}
	return nil
}
