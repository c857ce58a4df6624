package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/current", handler.GetCurrentSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/matches", handler.ListSeasonMatches)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/stats", handler.GetSeasonLeaderboard)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchDetail)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerHistory)
	mux.HandleFunc("GET /v1/opponents", handler.ListOpponents)
	mux.HandleFunc("GET /v1/practices", handler.ListPractices)
	mux.HandleFunc("GET /v1/practices/{practiceID}/attendance", handler.ListPracticeAttendance)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/matches", admin(handler.CreateMatch))
	mux.Handle("PUT /v1/matches/{matchID}/result", admin(handler.SaveMatchResult))
	mux.Handle("PUT /v1/matches/{matchID}/lineup", admin(handler.SaveMatchLineup))
	mux.Handle("PUT /v1/matches/{matchID}/cards", admin(handler.SaveMatchCards))
	mux.Handle("PUT /v1/matches/{matchID}/goals", admin(handler.SaveMatchGoals))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("POST /v1/opponents", admin(handler.CreateOpponent))

	mux.Handle("POST /v1/practices/ensure", admin(handler.EnsurePracticeSchedule))
	mux.Handle("PUT /v1/practices/{practiceID}/attendance", admin(handler.SavePracticeAttendance))
	mux.Handle("PUT /v1/practices/{practiceID}/cancel", admin(handler.SetPracticeCanceled))
}
