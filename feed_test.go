package pinchdeck

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestHandFeedEmptyUntilStore(t *testing.T) {
	f := NewHandFeed()
	if got := f.Poll(); got.Kind != InputNone {
		t.Errorf("Poll before Store = %+v, want InputNone", got)
	}
	frame := HandFrame{Present: true, IndexTip: Vec2{0.1, 0.2}, ThumbTip: Vec2{0.3, 0.4}}
	f.Store(frame)
	got := f.Poll()
	if got.Kind != InputHand || got.Hand != frame {
		t.Errorf("Poll = %+v, want %+v", got, frame)
	}
}

func TestReadLandmarks(t *testing.T) {
	input := strings.Join([]string{
		`{"hand": true, "index": [0.4, 0.5], "thumb": [0.42, 0.55]}`,
		`not json`,
		``,
		`{"hand": true, "index": [0.6, 0.3], "thumb": [0.6, 0.31]}`,
	}, "\n")
	feed := NewHandFeed()
	if err := ReadLandmarks(context.Background(), strings.NewReader(input), feed, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("ReadLandmarks: %v", err)
	}
	got := feed.Poll()
	want := HandFrame{Present: true, IndexTip: Vec2{0.6, 0.3}, ThumbTip: Vec2{0.6, 0.31}}
	if got.Kind != InputHand || got.Hand != want {
		t.Errorf("last frame = %+v, want %+v", got.Hand, want)
	}
}

func TestReadLandmarksNoHand(t *testing.T) {
	feed := NewHandFeed()
	if err := ReadLandmarks(context.Background(), strings.NewReader(`{"hand": false}`), feed, nil); err != nil {
		t.Fatal(err)
	}
	if got := feed.Poll(); got.Kind != InputHand || got.Hand.Present {
		t.Errorf("Poll = %+v, want an absent hand", got)
	}
}

func TestReadLandmarksCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ReadLandmarks(ctx, strings.NewReader("{}\n{}\n"), NewHandFeed(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHandFeedDrivesSession(t *testing.T) {
	feed := NewHandFeed()
	s := newTestSession(t, 10, WithSource(feed))
	s.Update(frameDT)
	if s.HasHand() {
		t.Fatal("empty feed produced a hand")
	}
	feed.Store(HandFrame{Present: true, IndexTip: Vec2{0.5, 0.4}, ThumbTip: Vec2{0.5, 0.6}})
	s.Update(frameDT)
	if !s.HasHand() {
		t.Error("stored frame did not reach the session")
	}
}

func TestReadLandmarksStopsWithReader(t *testing.T) {
	pr, pw := io.Pipe()
	feed := NewHandFeed()
	done := make(chan error, 1)
	go func() { done <- ReadLandmarks(context.Background(), pr, feed, nil) }()

	if _, err := pw.Write([]byte(`{"hand": true, "index": [0.5, 0.5], "thumb": [0.5, 0.6]}` + "\n")); err != nil {
		t.Fatal(err)
	}
	pw.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ReadLandmarks = %v, want nil at EOF", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reader goroutine did not exit")
	}
	if !feed.Poll().Hand.Present {
		t.Error("frame written through the pipe was not stored")
	}
}
