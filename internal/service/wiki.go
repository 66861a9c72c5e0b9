package service

import (
	"errors"
	"net/http"

	"knowyourreps-backend/internal/scrapers/wikipedia"
)

// GetWiki proxies a biography lookup: GET /api/wiki?title=
func (s Service) GetWiki(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	page, err := s.wiki.Lookup(r.Context(), title)

	var upstream *wikipedia.UpstreamError
	switch {
	case errors.Is(err, wikipedia.ErrMissingTitle):
		s.writeError(w, http.StatusBadRequest, "Missing title parameter", "")
		return
	case errors.Is(err, wikipedia.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Page not found", "")
		return
	case errors.As(err, &upstream):
		s.writeError(w, upstream.Status, "Wikipedia API error", upstream.Body)
		return
	case err != nil:
		s.tel.ReportWarning(report_wiki_lookup, err, title)
		s.writeError(w, http.StatusBadGateway, "Failed to fetch from Wikipedia", err.Error())
		return
	}

	if page.HasImage() {
		official, ok := s.store.Find(title)
		if ok && official.PhotoURL == "" {
			s.resolver.Remember(official.Name, *page.Image)
		}
	}
	s.writeJSON(w, http.StatusOK, page)
}
