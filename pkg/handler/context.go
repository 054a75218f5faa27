package handler

// DI for all handlers alike.

import (
	ggdb "github.com/yumyai/metagame/pkg/db"
)

type GameContext struct {
	Sessions   *GameSessionManager
	Results    *ggdb.ResultsDB // nil disables the round log
	CookieName string
}
