// Sorting board and scoring

package model

func NewBoard(fragments []Fragment) Board {
	var b Board
	b.Unsorted = append([]Fragment(nil), fragments...)
	return b
}

// MoveToBin moves fragment id from the unsorted pool to the end of target.
// It reports false and returns b unchanged when the fragment is not in the
// pool or target is not a category.
func (b Board) MoveToBin(id int, target Category) (Board, bool) {
	if !target.Valid() {
		return b, false
	}

	idx := indexOf(b.Unsorted, id)
	if idx < 0 {
		return b, false
	}

	frag := b.Unsorted[idx]
	b.Unsorted = removeAt(b.Unsorted, idx)
	b.Bins[target] = appendCopy(b.Bins[target], frag)
	return b, true
}

// MoveToUnsorted returns fragment id from the from bin to the end of the
// pool. Only the named bin is searched.
func (b Board) MoveToUnsorted(id int, from Category) (Board, bool) {
	if !from.Valid() {
		return b, false
	}

	idx := indexOf(b.Bins[from], id)
	if idx < 0 {
		return b, false
	}

	frag := b.Bins[from][idx]
	b.Bins[from] = removeAt(b.Bins[from], idx)
	b.Unsorted = appendCopy(b.Unsorted, frag)
	return b, true
}

// Complete is true iff nothing is left in the unsorted pool.
func (b Board) Complete() bool {
	return len(b.Unsorted) == 0
}

func (b Board) Placed() int {
	n := 0
	for _, bin := range b.Bins {
		n += len(bin)
	}
	return n
}

func (b Board) Total() int {
	return len(b.Unsorted) + b.Placed()
}

// Correct counts fragments sitting in the bin of their own category.
func (b Board) Correct() int {
	n := 0
	for c, bin := range b.Bins {
		for _, f := range bin {
			if f.Category == Category(c) {
				n++
			}
		}
	}
	return n
}

// Score is PointsPerMatch for every correctly binned fragment. Wrong
// placements earn nothing and cost nothing.
func Score(b Board) int {
	return b.Correct() * PointsPerMatch
}

// VerdictFor judges a fragment sitting in bin.
func VerdictFor(f Fragment, bin Category) Verdict {
	if f.Category == bin {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

func indexOf(frags []Fragment, id int) int {
	for i, f := range frags {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// removeAt and appendCopy always allocate so that older Board values sharing
// a backing array are never written through.
func removeAt(frags []Fragment, idx int) []Fragment {
	if len(frags) == 1 {
		return nil
	}
	out := make([]Fragment, 0, len(frags)-1)
	out = append(out, frags[:idx]...)
	return append(out, frags[idx+1:]...)
}

func appendCopy(frags []Fragment, f Fragment) []Fragment {
	out := make([]Fragment, 0, len(frags)+1)
	out = append(out, frags...)
	return append(out, f)
}
