package service

import (
	"net/http"
)

// Routes registers every endpoint on mux. When staticDir is not empty the
// page assets in it are served at the root.
func (s Service) Routes(mux *http.ServeMux, staticDir string) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/wiki", s.GetWiki)
	mux.HandleFunc("GET /api/officials", s.GetOfficials)
	mux.HandleFunc("GET /api/suggest", s.GetSuggestions)
	mux.HandleFunc("GET /api/parties", s.GetParties)
	mux.HandleFunc("GET /api/states", s.GetStates)
	mux.HandleFunc("GET /api/states/resolve", s.ResolveState)
	mux.HandleFunc("GET /api/states/by-initial", s.GetStatesByInitial)
	mux.HandleFunc("GET /api/photos", s.GetPhoto)
	mux.HandleFunc("POST /api/photos/broken", s.ReportBrokenPhoto)
	mux.HandleFunc("GET /politicians.json", s.GetDataset)

	if staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(staticDir)))
	}
}

// Handler returns the full http handler with request logging.
func (s Service) Handler(staticDir string) http.Handler {
	mux := http.NewServeMux()
	s.Routes(mux, staticDir)
	return WithLogging(mux)
}
