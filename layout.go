package pinchdeck

import "math"

// Metrics describes the surface the deck is laid out on. Stage is the deck
// area in screen space; the viewport is the whole window and drives edge
// panning and the hover cap.
type Metrics struct {
	ViewportW, ViewportH float64
	Stage                Rect
	CardW                float64
	Gap                  float64
}

// DefaultMetrics returns metrics for a w x h window with the stage filling it
// and card size taken from cfg.
func DefaultMetrics(w, h float64, cfg Config) Metrics {
	return Metrics{
		ViewportW: w,
		ViewportH: h,
		Stage:     Rect{Width: w, Height: h},
		CardW:     cfg.Layout.CardW,
		Gap:       cfg.Layout.Gap,
	}
}

// CardView is the per-item output consumed by a renderer. X and Y are the
// card center in stage space; Bounds is the scaled card box in screen space.
// Rotations are in degrees. Chosen cards carry no transform.
type CardView struct {
	ID        ItemID
	X, Y      float64
	RotationZ float64
	TiltX     float64
	Depth     float64
	Scale     float64
	Z         int
	Hovered   bool
	Chosen    bool
	Bounds    Rect
}

// LayoutDeck places every deck entry. Visible cards come first with
// sequential indices in deck order (chosen cards are skipped, not just
// hidden, and trail the result) and fan out along a
// parabolic arch around the stage center: rotation is linear in the curve
// parameter t, height grows with t², and depth and stacking fall off with |t|.
// The hovered card, if any, is lifted, scaled, and stacked on top.
func LayoutDeck(d Deck, chosen ChosenSet, offset float64, m Metrics, hovered ItemID, hasHover bool, lc LayoutConfig) []CardView {
	views := make([]CardView, 0, d.Len())
	return appendLayout(views, VisiblePool(d, chosen), d, chosen, offset, m, hovered, hasHover, lc)
}

// appendLayout places the cards of pool in order, then appends a hidden view
// for each chosen deck entry.
func appendLayout(views []CardView, pool []ItemID, d Deck, chosen ChosenSet, offset float64, m Metrics, hovered ItemID, hasHover bool, lc LayoutConfig) []CardView {
	stageW, stageH := m.Stage.Width, m.Stage.Height
	centerX := stageW * lc.CenterX
	baseY := stageH * lc.BaseY
	cardH := m.CardW * lc.CardAspect

	for i, id := range pool {
		x := centerX + float64(i)*m.Gap - offset
		t := 0.0
		if stageW > 0 {
			t = (x - stageW*0.5) / (stageW * lc.CurveSpan)
		}
		curve := math.Min(lc.CurveMax, math.Abs(t))
		y := baseY + curve*curve*(stageH*lc.Arch)

		v := CardView{
			ID:        id,
			X:         x,
			Y:         y,
			RotationZ: t * lc.RotationPerT,
			TiltX:     lc.Tilt,
			Depth:     lc.DepthBase - curve*lc.DepthFalloff,
			Scale:     1,
			Z:         lc.ZBase - int(math.Round(curve*lc.ZFalloff)),
		}
		if hasHover && id == hovered {
			v.Hovered = true
			v.Depth += lc.HoverDepth
			v.Z += lc.HoverZ
			v.Scale = lc.HoverScale
		}
		w, h := m.CardW*v.Scale, cardH*v.Scale
		v.Bounds = Rect{
			X:      m.Stage.X + x - w/2,
			Y:      m.Stage.Y + y - h/2,
			Width:  w,
			Height: h,
		}
		views = append(views, v)
	}
	for _, id := range d.order {
		if chosen.Has(id) {
			views = append(views, CardView{ID: id, Chosen: true})
		}
	}
	return views
}
