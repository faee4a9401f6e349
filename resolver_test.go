package pinchdeck

import "testing"

func TestHoverCap(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		viewportW float64
		want      float64
	}{
		{200, 90},   // below min
		{500, 110},  // in range
		{1000, 160}, // above max
	}
	for _, tt := range tests {
		if got := HoverCap(tt.viewportW, cfg); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("HoverCap(%v) = %v, want %v", tt.viewportW, got, tt.want)
		}
	}
}

func TestResolveTargetContainmentBeatsDistance(t *testing.T) {
	cfg := DefaultConfig()
	cands := []HoverCandidate{
		{ID: 1, Bounds: Rect{X: 200, Y: 90, Width: 10, Height: 20}},  // center 15px away
		{ID: 2, Bounds: Rect{X: 0, Y: 0, Width: 200, Height: 200}},   // contains p, center 90px away
		{ID: 3, Bounds: Rect{X: 150, Y: 50, Width: 100, Height: 100}}, // also contains p, later in order
	}
	id, ok := ResolveTarget(Vec2{X: 190, Y: 100}, cands, 1000, cfg)
	if !ok || id != 2 {
		t.Errorf("ResolveTarget = (%d, %v), want (2, true)", id, ok)
	}
}

func TestResolveTargetNearestWithinCap(t *testing.T) {
	cfg := DefaultConfig()
	card := func(id ItemID, cx float64) HoverCandidate {
		return HoverCandidate{ID: id, Bounds: Rect{X: cx - 10, Y: -10, Width: 20, Height: 20}}
	}
	tests := []struct {
		name   string
		cands  []HoverCandidate
		wantID ItemID
		wantOK bool
	}{
		{"nearest wins", []HoverCandidate{card(1, 150), card(2, 120)}, 2, true},
		{"at cap", []HoverCandidate{card(1, 160)}, 1, true},
		{"beyond cap", []HoverCandidate{card(1, 170)}, NoItem, false},
		{"no candidates", nil, NoItem, false},
		{"negative id", []HoverCandidate{card(-1, 40)}, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveTarget(Vec2{}, tt.cands, 1000, cfg)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("ResolveTarget = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestHoverCandidatesSkipsChosen(t *testing.T) {
	views := []CardView{
		{ID: 0, Bounds: Rect{Width: 1, Height: 1}},
		{ID: 1, Chosen: true},
		{ID: 2, Bounds: Rect{X: 5, Width: 1, Height: 1}},
	}
	got := hoverCandidates(views, nil)
	if len(got) != 2 || got[0].ID != 0 || got[1].ID != 2 {
		t.Errorf("hoverCandidates = %+v, want ids [0 2]", got)
	}
}
