package rest

import (
	"net/http"

	"github.com/dukedan/consensus-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Health    *HealthHandler
	Account   *AccountHandler
	Debate    *DebateHandler
	Base      []middleware.Middleware // request ID, logging, recovery, CORS, auth
	AuthLimit middleware.Middleware   // optional throttle for credential endpoints
}

// NewRouter assembles the API routes. Read endpoints accept anonymous
// requests; write endpoints require an authenticated user.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Probes bypass the middleware chain.
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	open := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(deps.Base...)(h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(deps.Base...)(middleware.RequireUser(h))
	}
	// Credential endpoints get the brute-force throttle when configured.
	throttled := func(h http.HandlerFunc) http.Handler {
		if deps.AuthLimit == nil {
			return open(h)
		}
		return middleware.Chain(deps.Base...)(deps.AuthLimit(h))
	}

	mux.Handle("POST /api/auth/register", throttled(deps.Account.Register))
	mux.Handle("POST /api/auth/login", throttled(deps.Account.Login))
	mux.Handle("POST /api/auth/forgot-password", throttled(deps.Account.ForgotPassword))
	mux.Handle("POST /api/auth/reset-password", throttled(deps.Account.ResetPassword))
	mux.Handle("GET /api/auth/me", open(deps.Account.Me))

	mux.Handle("GET /api/topics/{id}", open(deps.Debate.GetTopic))
	mux.Handle("GET /api/top-topics", open(deps.Debate.TopTopics))

	mux.Handle("POST /api/topics", protected(deps.Debate.CreateTopic))
	mux.Handle("POST /api/topics/{id}/arguments", protected(deps.Debate.CreateArgument))
	mux.Handle("DELETE /api/arguments/{id}", protected(deps.Debate.DeleteArgument))
	mux.Handle("POST /api/arguments/{id}/comments", protected(deps.Debate.CreateComment))
	mux.Handle("DELETE /api/comments/{id}", protected(deps.Debate.DeleteComment))

	mux.Handle("POST /api/topics/{id}/vote", protected(deps.Debate.VoteTopic))
	mux.Handle("DELETE /api/topics/{id}/vote", protected(deps.Debate.UnvoteTopic))
	mux.Handle("POST /api/arguments/{id}/vote", protected(deps.Debate.VoteArgument))
	mux.Handle("DELETE /api/arguments/{id}/vote", protected(deps.Debate.UnvoteArgument))

	return mux
}
