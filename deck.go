package pinchdeck

import "math/rand/v2"

// Deck is the visual left-to-right order of item ids. It is independent of
// the master item list so it can be shuffled without disturbing lookup.
type Deck struct {
	order []ItemID
}

// NewDeck returns a deck holding the ids of items in master order.
func NewDeck(items []Item) Deck {
	order := make([]ItemID, len(items))
	for i, it := range items {
		order[i] = it.ID
	}
	return Deck{order: order}
}

// Shuffle reorders the deck in place (Fisher-Yates) using rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.order) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.order[i], d.order[j] = d.order[j], d.order[i]
	}
}

// Order returns a copy of the deck order.
func (d Deck) Order() []ItemID {
	out := make([]ItemID, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of entries in the deck.
func (d Deck) Len() int {
	return len(d.order)
}

// ChosenSet is the set of already-picked item ids.
type ChosenSet map[ItemID]struct{}

// Has reports whether id has been picked.
func (c ChosenSet) Has(id ItemID) bool {
	_, ok := c[id]
	return ok
}

// VisiblePool returns the deck entries not yet chosen, in deck order. Both
// scroll bounds and layout are derived from its result so they never disagree
// about the pool size.
func VisiblePool(d Deck, chosen ChosenSet) []ItemID {
	return appendVisiblePool(make([]ItemID, 0, len(d.order)), d, chosen)
}

func appendVisiblePool(pool []ItemID, d Deck, chosen ChosenSet) []ItemID {
	for _, id := range d.order {
		if !chosen.Has(id) {
			pool = append(pool, id)
		}
	}
	return pool
}

// itemIndex maps ids to positions in the master list.
type itemIndex map[ItemID]int

func newItemIndex(items []Item) itemIndex {
	idx := make(itemIndex, len(items))
	for i, it := range items {
		idx[it.ID] = i
	}
	return idx
}
