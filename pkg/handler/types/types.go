package types

import (
	"time"

	"github.com/yumyai/metagame/pkg/db"
	"github.com/yumyai/metagame/pkg/model"
)

type FragmentView struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Sequence string `json:"sequence"`
	Verdict  string `json:"verdict,omitempty"`
}

type BinView struct {
	Category  string         `json:"category"`
	Organism  string         `json:"organism"`
	Type      string         `json:"type"`
	Fragments []FragmentView `json:"fragments"`
}

// Game state as answered by /api/v1/game and by game actions called from scripts.
type GameResponse struct {
	Round       int            `json:"round"`
	Phase       model.Phase    `json:"phase"`
	Unsorted    []FragmentView `json:"unsorted"`
	Bins        []BinView      `json:"bins"`
	Dragging    *int           `json:"dragging,omitempty"`
	ShowLibrary bool           `json:"show_library"`
	Completed   bool           `json:"completed"`
	Score       *int           `json:"score,omitempty"` // only once completed
	MaxScore    int            `json:"max_score"`
}

type RoundResultResponse struct {
	Round       int       `json:"round"`
	Score       int       `json:"score"`
	Correct     int       `json:"correct"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

type ResultsResponse struct {
	Rounds    []RoundResultResponse `json:"rounds"`
	BestScore int                   `json:"best_score"`
}

func NewGameResponse(g model.Game) GameResponse {
	resp := GameResponse{
		Round:       g.Round,
		Phase:       g.Phase(),
		Unsorted:    make([]FragmentView, 0, len(g.Board.Unsorted)),
		Bins:        make([]BinView, 0, model.NumCategories),
		ShowLibrary: g.ShowLibrary,
		Completed:   g.Completed,
		MaxScore:    model.MaxScore,
	}

	for _, f := range g.Board.Unsorted {
		resp.Unsorted = append(resp.Unsorted, FragmentView{ID: f.ID, Category: f.Category.String(), Sequence: f.Sequence})
	}

	for _, c := range model.AllCategories {
		info := c.Info()
		bin := BinView{
			Category:  c.String(),
			Organism:  info.Name,
			Type:      info.Type,
			Fragments: make([]FragmentView, 0, len(g.Board.Bins[c])),
		}
		for _, f := range g.Board.Bins[c] {
			bin.Fragments = append(bin.Fragments, FragmentView{
				ID:       f.ID,
				Category: f.Category.String(),
				Sequence: f.Sequence,
				Verdict:  string(model.VerdictFor(f, c)),
			})
		}
		resp.Bins = append(resp.Bins, bin)
	}

	if g.Drag.Active {
		id := g.Drag.Fragment.ID
		resp.Dragging = &id
	}
	if g.Completed {
		score := g.Score
		resp.Score = &score
	}

	return resp
}

func NewResultsResponse(rounds []db.RoundResult, best int) ResultsResponse {
	resp := ResultsResponse{
		Rounds:    make([]RoundResultResponse, 0, len(rounds)),
		BestScore: best,
	}
	for _, r := range rounds {
		resp.Rounds = append(resp.Rounds, RoundResultResponse{
			Round:       r.Round,
			Score:       r.Score,
			Correct:     r.Correct,
			Total:       r.Total,
			CompletedAt: r.CompletedAt,
		})
	}
	return resp
}
