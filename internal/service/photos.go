package service

import (
	"net/http"

	"knowyourreps-backend/internal/directory"
)

type photoResponse struct {
	Name    string  `json:"name"`
	Photo   *string `json:"photo"`
	Pending bool    `json:"pending"`
	Failed  bool    `json:"failed"`
}

func (s Service) photoStatus(o directory.Official) photoResponse {
	res := photoResponse{
		Name:    o.Name,
		Pending: s.resolver.Pending(o.Name),
		Failed:  s.resolver.Failed(o.Name),
	}
	if photo := s.resolver.PhotoFor(o); photo != "" {
		res.Photo = &photo
	}
	return res
}

// findOfficial reads the name parameter and writes the error response itself
// when it cannot be matched.
func (s Service) findOfficial(w http.ResponseWriter, r *http.Request) (directory.Official, bool) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "Missing name parameter", "")
		return directory.Official{}, false
	}
	official, ok := s.store.Find(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Official not found", "")
		return directory.Official{}, false
	}
	return official, true
}

// GetPhoto: GET /api/photos?name=
func (s Service) GetPhoto(w http.ResponseWriter, r *http.Request) {
	official, ok := s.findOfficial(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.photoStatus(official))
}

// ReportBrokenPhoto is called by the page when an image fails to load, it
// schedules a forced resolution: POST /api/photos/broken?name=
func (s Service) ReportBrokenPhoto(w http.ResponseWriter, r *http.Request) {
	official, ok := s.findOfficial(w, r)
	if !ok {
		return
	}
	s.tel.ReportDebug(report_photos_broken, official.Name)
	s.scheduler.MarkBroken(official)
	s.writeJSON(w, http.StatusAccepted, s.photoStatus(official))
}
