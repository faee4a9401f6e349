package pinchdeck

import "math"

// HoverCandidate is a visible card's screen-space bounds.
type HoverCandidate struct {
	ID     ItemID
	Bounds Rect
}

// HoverCap returns the maximum pointer-to-card distance that still hovers.
func HoverCap(viewportW float64, cfg Config) float64 {
	return clamp(viewportW*cfg.HoverCapFraction, cfg.HoverCapMin, cfg.HoverCapMax)
}

// ResolveTarget picks the hovered card for pointer p. A card whose bounds
// contain p wins outright; otherwise the nearest center wins if it lies
// within HoverCap. The first containing card in candidate order is taken.
func ResolveTarget(p Vec2, candidates []HoverCandidate, viewportW float64, cfg Config) (ItemID, bool) {
	bestID := NoItem
	bestDist := math.Inf(1)
	found := false
	for _, c := range candidates {
		if c.Bounds.Contains(p.X, p.Y) {
			bestID, bestDist, found = c.ID, 0, true
			break
		}
		if d := p.Dist(c.Bounds.Center()); d < bestDist {
			bestID, bestDist, found = c.ID, d, true
		}
	}
	if !found || bestDist > HoverCap(viewportW, cfg) {
		return NoItem, false
	}
	return bestID, true
}

// hoverCandidates collects the bounds of every visible card in views.
func hoverCandidates(views []CardView, buf []HoverCandidate) []HoverCandidate {
	buf = buf[:0]
	for i := range views {
		if views[i].Chosen {
			continue
		}
		buf = append(buf, HoverCandidate{ID: views[i].ID, Bounds: views[i].Bounds})
	}
	return buf
}
