package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Check that every fragment sits in exactly one collection.
func assertConserved(t *testing.T, b Board, want int) {
	t.Helper()

	seen := make(map[int]int)
	for _, f := range b.Unsorted {
		seen[f.ID]++
	}
	for _, bin := range b.Bins {
		for _, f := range bin {
			seen[f.ID]++
		}
	}

	assert.Equal(t, want, b.Total())
	assert.Len(t, seen, want)
	for id, n := range seen {
		assert.Equalf(t, 1, n, "fragment %d appears %d times", id, n)
	}
}

func fixedBatch() []Fragment {
	cats := []Category{
		CategoryRed, CategoryBlue, CategoryGreen,
		CategoryYellow, CategoryRed, CategoryBlue,
		CategoryGreen, CategoryYellow, CategoryRed,
	}
	out := make([]Fragment, 0, len(cats))
	for i, c := range cats {
		out = append(out, Fragment{ID: i, Category: c, Sequence: strings.Repeat("A", SequenceLength)})
	}
	return out
}

func TestGenerateBatchShape(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		frags := Generate(FragmentCount, NewRand(seed))
		require.Len(t, frags, FragmentCount)

		ids := make(map[int]bool)
		for _, f := range frags {
			assert.True(t, f.Category.Valid(), "category %d", f.Category)
			assert.Len(t, f.Sequence, SequenceLength)
			assert.Empty(t, strings.Trim(f.Sequence, Bases), "sequence %q", f.Sequence)
			assert.False(t, ids[f.ID], "duplicate id %d", f.ID)
			ids[f.ID] = true
		}
	}
}

func TestGenerateSameSeedSameBatch(t *testing.T) {
	a := Generate(FragmentCount, NewRand(42))
	b := Generate(FragmentCount, NewRand(42))
	assert.Equal(t, a, b)
}

func TestGenerateNonPositiveCount(t *testing.T) {
	assert.Empty(t, Generate(0, NewRand(1)))
	assert.Empty(t, Generate(-3, NewRand(1)))
}

func TestMoveToBin(t *testing.T) {
	b := NewBoard(fixedBatch())

	next, moved := b.MoveToBin(4, CategoryRed)
	require.True(t, moved)

	assert.Len(t, next.Unsorted, FragmentCount-1)
	require.Len(t, next.Bins[CategoryRed], 1)
	assert.Equal(t, 4, next.Bins[CategoryRed][0].ID)
	assertConserved(t, next, FragmentCount)

	// The original board value is untouched.
	assert.Len(t, b.Unsorted, FragmentCount)
	assert.Empty(t, b.Bins[CategoryRed])
}

func TestMoveToBinNotInPoolIsNoop(t *testing.T) {
	b := NewBoard(fixedBatch())
	b, _ = b.MoveToBin(0, CategoryRed)

	again, moved := b.MoveToBin(0, CategoryBlue)
	assert.False(t, moved)
	assert.Equal(t, b, again)

	_, moved = b.MoveToBin(99, CategoryBlue)
	assert.False(t, moved)

	_, moved = b.MoveToBin(1, Category(7))
	assert.False(t, moved)
}

func TestMoveToUnsortedOnlySearchesNamedBin(t *testing.T) {
	b := NewBoard(fixedBatch())
	b, _ = b.MoveToBin(2, CategoryGreen)

	same, moved := b.MoveToUnsorted(2, CategoryBlue)
	assert.False(t, moved)
	assert.Equal(t, b, same)

	back, moved := b.MoveToUnsorted(2, CategoryGreen)
	require.True(t, moved)
	assert.Empty(t, back.Bins[CategoryGreen])
	assert.Equal(t, 2, back.Unsorted[len(back.Unsorted)-1].ID)
	assertConserved(t, back, FragmentCount)
}

func TestMoveRoundTrip(t *testing.T) {
	b := NewBoard(fixedBatch())
	b, _ = b.MoveToBin(1, CategoryBlue)
	b, _ = b.MoveToBin(3, CategoryRed)

	there, _ := b.MoveToBin(5, CategoryYellow)
	back, moved := there.MoveToUnsorted(5, CategoryYellow)
	require.True(t, moved)

	assert.Equal(t, b.Bins, back.Bins)
	assert.ElementsMatch(t, b.Unsorted, back.Unsorted)
	assertConserved(t, back, FragmentCount)
}

func TestScoreThreeCorrect(t *testing.T) {
	b := NewBoard(fixedBatch())
	// 0 red, 1 blue, 2 green land in their own bins.
	b, _ = b.MoveToBin(0, CategoryRed)
	b, _ = b.MoveToBin(1, CategoryBlue)
	b, _ = b.MoveToBin(2, CategoryGreen)
	// The rest go somewhere wrong.
	b, _ = b.MoveToBin(3, CategoryRed)    // yellow
	b, _ = b.MoveToBin(4, CategoryBlue)   // red
	b, _ = b.MoveToBin(5, CategoryGreen)  // blue
	b, _ = b.MoveToBin(6, CategoryYellow) // green
	b, _ = b.MoveToBin(7, CategoryBlue)   // yellow
	b, _ = b.MoveToBin(8, CategoryGreen)  // red

	require.True(t, b.Complete())
	assert.Equal(t, 3, b.Correct())
	assert.Equal(t, 30, Score(b))
	assertConserved(t, b, FragmentCount)
}

func TestScoreAllCorrect(t *testing.T) {
	b := NewBoard(fixedBatch())
	for _, f := range fixedBatch() {
		b, _ = b.MoveToBin(f.ID, f.Category)
	}
	assert.Equal(t, MaxScore, Score(b))
}

func TestVerdictRedBlueExample(t *testing.T) {
	b := NewBoard([]Fragment{
		{ID: 0, Category: CategoryRed, Sequence: "ATGCATGCATGC"},
		{ID: 1, Category: CategoryBlue, Sequence: "GGGGCCCCAAAA"},
	})
	b, _ = b.MoveToBin(0, CategoryRed)
	b, _ = b.MoveToBin(1, CategoryBlue)

	assert.Equal(t, VerdictCorrect, VerdictFor(b.Bins[CategoryRed][0], CategoryRed))
	assert.Equal(t, VerdictCorrect, VerdictFor(b.Bins[CategoryBlue][0], CategoryBlue))
	assert.Equal(t, 20, Score(b))

	assert.Equal(t, VerdictIncorrect, VerdictFor(b.Bins[CategoryRed][0], CategoryGreen))
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory(" Red ")
	require.NoError(t, err)
	assert.Equal(t, CategoryRed, got)

	_, err = ParseCategory("purple")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLibraryOrder(t *testing.T) {
	lib := Library()
	require.Len(t, lib, NumCategories)
	for i, org := range lib {
		assert.Equal(t, AllCategories[i], org.Category)
		assert.Equal(t, org.Category.String(), org.Color)
		assert.NotEmpty(t, org.Name)
	}
	assert.Equal(t, Organism{}, Category(-1).Info())
}
