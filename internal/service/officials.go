package service

import (
	"fmt"
	"net/http"

	"knowyourreps-backend/internal/browse"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/statemap"
)

type officialView struct {
	directory.Official
	Photo        *string `json:"photo"`
	Initials     string  `json:"initials"`
	PhotoPending bool    `json:"photoPending"`
}

type officialsResponse struct {
	Count     int                      `json:"count"`
	Label     string                   `json:"label"`
	Highlight map[string]statemap.Fill `json:"highlight"`
	Officials []officialView           `json:"officials"`
}

func (s Service) view(o directory.Official) officialView {
	v := officialView{
		Official:     o,
		Initials:     directory.Initials(o.Name),
		PhotoPending: s.resolver.Pending(o.Name),
	}
	if photo := s.resolver.PhotoFor(o); photo != "" {
		v.Photo = &photo
	}
	return v
}

func filterState(r *http.Request) browse.State {
	q := r.URL.Query()
	state := browse.New()
	if level := q.Get("level"); level != "" {
		state = state.SetLevel(level)
	}
	if party := q.Get("party"); party != "" {
		state = state.SetParty(party)
	}
	state = state.SetState(q.Get("state"))
	state = state.SetCity(q.Get("city"))
	state.Query = q.Get("q")
	return state
}

// GetOfficials lists the officials matching the filters and schedules photo
// lookups for the ones without a picture:
// GET /api/officials?level=&state=&city=&party=&q=
func (s Service) GetOfficials(w http.ResponseWriter, r *http.Request) {
	state := filterState(r)
	visible := state.Visible(s.store.All())

	scheduled := s.scheduler.Visible(visible)
	s.tel.ReportCount(report_officials_scheduled, int64(scheduled))

	label := directory.CountLabel(len(visible))
	if state.State != "" {
		label = fmt.Sprintf("%s in %s", label, state.State)
	}

	views := make([]officialView, len(visible))
	for i, o := range visible {
		views[i] = s.view(o)
	}
	s.writeJSON(w, http.StatusOK, officialsResponse{
		Count:     len(visible),
		Label:     label,
		Highlight: state.Highlight(),
		Officials: views,
	})
}

// GetSuggestions: GET /api/suggest?q=
func (s Service) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, directory.Suggest(s.store.All(), r.URL.Query().Get("q")))
}

func (s Service) GetParties(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, directory.Parties(s.store.All()))
}

// GetDataset serves the dataset file as it was loaded.
func (s Service) GetDataset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.store.Raw())
}
