package httpapi

import "net/http"

func (a *API) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", a.handleSignup)
	mux.HandleFunc("POST /login", a.handleLogin)
	mux.HandleFunc("POST /logout", a.handleLogout)
	mux.HandleFunc("GET /me", a.handleMe)
	mux.HandleFunc("GET /healthz", a.handleHealthz)

	return mux
}
