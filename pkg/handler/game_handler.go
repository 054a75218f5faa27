package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/yumyai/metagame/logger"
	ggdb "github.com/yumyai/metagame/pkg/db"
	"github.com/yumyai/metagame/pkg/handler/request"
	"github.com/yumyai/metagame/pkg/handler/types"
	"github.com/yumyai/metagame/pkg/middle"
	"github.com/yumyai/metagame/pkg/model"
	"github.com/yumyai/metagame/pkg/render"
	"go.uber.org/zap"
)

// session resolves the caller's game, starting a new one (and setting the
// cookie) for first-time or expired visitors.
func (gctx *GameContext) session(w http.ResponseWriter, r *http.Request) (string, model.Game) {
	var cookieID string
	if c, err := r.Cookie(gctx.CookieName); err == nil {
		cookieID = c.Value
	}

	sid, game, created := gctx.Sessions.Open(cookieID)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     gctx.CookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		logger.Debug("New game session", zap.String("session", sid), zap.String("request_id", middle.RequestID(r.Context())))
	}
	return sid, game
}

// apply runs one event for the caller, logs completed rounds and answers in
// the format the caller asked for.
func (gctx *GameContext) apply(w http.ResponseWriter, r *http.Request, ev model.Event) {
	sid, _ := gctx.session(w, r)

	before, after, ok := gctx.Sessions.Apply(sid, ev)
	if !ok {
		// Swept between Open and Apply; the next page load starts over.
		http.Error(w, "Game session expired", http.StatusGone)
		return
	}

	if after.Completed && !before.Completed {
		gctx.recordRound(r.Context(), sid, after)
	}

	switch request.FormatOf(r) {
	case request.ResponseJSON:
		writeJSON(w, http.StatusOK, types.NewGameResponse(after))
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (gctx *GameContext) recordRound(ctx context.Context, sid string, g model.Game) {
	logger.Info("Round completed",
		zap.String("session", sid),
		zap.Int("round", g.Round),
		zap.Int("score", g.Score),
	)

	if gctx.Results == nil {
		return
	}

	err := gctx.Results.RecordRound(ctx, ggdb.RoundResult{
		SessionID:   sid,
		Round:       g.Round,
		Score:       g.Score,
		Correct:     g.Board.Correct(),
		Total:       g.Board.Total(),
		CompletedAt: time.Now(),
	})
	if err != nil {
		logger.Error("Cannot record round", zap.Error(err))
	}
}

func (gctx *GameContext) MainPage(w http.ResponseWriter, r *http.Request) {

	sid, game := gctx.session(w, r)

	best := 0
	if gctx.Results != nil {
		var err error
		if best, err = gctx.Results.BestScore(r.Context(), sid); err != nil {
			logger.Warn("Cannot read best score", zap.Error(err))
		}
	}

	if err := render.RenderGamePage(w, render.NewGamePageData(game, best)); err != nil {
		logger.Error("Cannot render game page", zap.Error(err))
	}
}

func (gctx *GameContext) DragStartHandler(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseDragRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gctx.apply(w, r, model.BeginDrag{FragmentID: req.FragmentID})
}

func (gctx *GameContext) DragCancelHandler(w http.ResponseWriter, r *http.Request) {
	gctx.apply(w, r, model.AbandonDrag{})
}

func (gctx *GameContext) DropHandler(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseDropRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gctx.apply(w, r, model.Drop{Target: req.Bin})
}

func (gctx *GameContext) ReturnHandler(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseReturnRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gctx.apply(w, r, model.ReturnFragment{FragmentID: req.FragmentID, From: req.Bin})
}

func (gctx *GameContext) NewGameHandler(w http.ResponseWriter, r *http.Request) {
	gctx.apply(w, r, model.NewGame{})
}

func (gctx *GameContext) ToggleLibraryHandler(w http.ResponseWriter, r *http.Request) {
	gctx.apply(w, r, model.ToggleLibrary{})
}

func (gctx *GameContext) GameStateAPI(w http.ResponseWriter, r *http.Request) {
	_, game := gctx.session(w, r)
	writeJSON(w, http.StatusOK, types.NewGameResponse(game))
}

func (gctx *GameContext) ResultsAPI(w http.ResponseWriter, r *http.Request) {
	sid, _ := gctx.session(w, r)

	if gctx.Results == nil {
		writeJSON(w, http.StatusOK, types.NewResultsResponse(nil, 0))
		return
	}

	rounds, err := gctx.Results.ListRounds(r.Context(), sid)
	if err != nil {
		logger.Error("Cannot list rounds", zap.Error(err))
		http.Error(w, "Cannot read results", http.StatusInternalServerError)
		return
	}

	best := 0
	for _, rr := range rounds {
		best = max(best, rr.Score)
	}

	writeJSON(w, http.StatusOK, types.NewResultsResponse(rounds, best))
}

// ForgetSession drops the round log of a swept session.
func (gctx *GameContext) ForgetSession(ctx context.Context, sid string) {
	if gctx.Results == nil {
		return
	}
	if err := gctx.Results.ForgetSession(ctx, sid); err != nil {
		logger.Warn("Cannot forget session", zap.String("session", sid), zap.Error(err))
	}
}
