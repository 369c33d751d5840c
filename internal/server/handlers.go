package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/officehours/officehours/internal/report"
	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/timeutil"
)

type listResponse struct {
	IDs     []string `json:"ids"`
	Count   int      `json:"count"`
	Running int      `json:"running"`
}

type createRequest struct {
	Start string `json:"start"`
}

type createResponse struct {
	ID     string         `json:"id"`
	Report report.Summary `json:"report"`
}

type eventRequest struct {
	Kind string `json:"kind"`
	Time string `json:"time"`
}

type eventResponse struct {
	Report   report.Summary `json:"report"`
	Accepted bool           `json:"accepted"`
}

type eventsResponse struct {
	ID     string          `json:"id"`
	Events []session.Event `json:"events"`
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return errInvalidBody.Wrap(err)
}

// moment parses s relative to the server clock. An empty string means now.
func (s *Server) moment(str string) (time.Time, error) {
	now := s.clock.Now()
	if str == "" {
		return now, nil
	}

	return timeutil.FromStr(str, now)
}

func (s *Server) listSessions(w http.ResponseWriter, _ *http.Request) error {
	s.writeJSON(w, http.StatusOK, listResponse{
		IDs:     s.reg.IDs(),
		Count:   s.reg.Count(),
		Running: s.reg.Running(),
	})

	return nil
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) error {
	var req createRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	start, err := s.moment(req.Start)
	if err != nil {
		return err
	}

	id := s.reg.Add(start)

	rep, err := s.reg.Report(id)
	if err != nil {
		return err
	}

	w.Header().Set("Location", "/sessions/"+id)
	s.writeJSON(w, http.StatusCreated, createResponse{
		ID:     id,
		Report: report.New(id, rep),
	})

	return nil
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	rep, err := s.reg.Report(id)
	if err != nil {
		return err
	}

	s.writeJSON(w, http.StatusOK, report.New(id, rep))

	return nil
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) error {
	snap, err := s.reg.Get(r.PathValue("id"))
	if err != nil {
		return err
	}

	s.writeJSON(w, http.StatusOK, eventsResponse{ID: snap.ID, Events: snap.Events})

	return nil
}

func (s *Server) addEvent(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	var req eventRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	if req.Kind == "" {
		return errMissingKind
	}

	kind, err := session.ParseKind(req.Kind)
	if err != nil {
		return err
	}

	if kind == session.KindCreate {
		return errCreateEvent
	}

	at, err := s.moment(req.Time)
	if err != nil {
		return err
	}

	accepted, rep, err := s.reg.Apply(id, session.Event{Kind: kind, Time: at})
	if err != nil {
		return err
	}

	s.writeJSON(w, http.StatusOK, eventResponse{
		Accepted: accepted,
		Report:   report.New(id, rep),
	})

	return nil
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) error {
	if err := s.reg.Remove(r.PathValue("id")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
