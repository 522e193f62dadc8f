package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourdesk/internal/app"
	"tourdesk/internal/domain"
)

type Handlers struct{ Svc *app.Service }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/data", h.data)

	s.mux.Post("/regions", h.createRegion)
	s.mux.Put("/regions/{id}", h.updateRegion)
	s.mux.Delete("/regions/{id}", h.deleteRegion)

	s.mux.Post("/operations", h.createOperation)
	s.mux.Put("/operations/{id}", h.updateOperation)
	s.mux.Delete("/operations/{id}", h.deleteOperation)

	s.mux.Post("/hotels", h.createHotel)
	s.mux.Put("/hotels/{id}", h.updateHotel)
	s.mux.Delete("/hotels/{id}", h.deleteHotel)

	s.mux.Post("/reservations", h.createReservation)
	s.mux.Put("/reservations/status/{id}", h.setReservationStatus)
	s.mux.Put("/reservations/respond_change/{id}", h.respondToChange)
	s.mux.Put("/reservations/{id}", h.updateReservation)
	s.mux.Delete("/reservations/{id}", h.deleteReservation)

	s.mux.Post("/register", h.register)
	s.mux.Post("/agents/confirm/{id}", h.confirmAgent)
	s.mux.Delete("/agents/delete/{id}", h.deleteAgent)
	s.mux.Post("/login", h.login)
}

// ---- plumbing ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy onto problem+json responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, domain.ErrPendingApproval):
		writeProblem(w, http.StatusUnauthorized, "Pending Approval", "registration awaiting administrator approval")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid username or password")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", domain.ErrValidation)
	}
	return nil
}

func urlID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", domain.ErrValidation)
	}
	return id, nil
}

// Mutating responses carry the affected collections in full; clients replace
// their local copy wholesale instead of patching deltas.

func regionsOf(doc *domain.Document) any {
	return map[string]any{"regions": doc.Regions}
}

// region deletes (cascade) and every hotel mutation touch the same pair
func regionsAndHotelsOf(doc *domain.Document) any {
	return map[string]any{"regions": doc.Regions, "hotels": doc.Hotels}
}

func operationsOf(doc *domain.Document) any {
	return map[string]any{"operations": doc.Operations}
}

func reservationsOf(doc *domain.Document) any {
	return map[string]any{"reservations": doc.Reservations}
}

func agentsOf(doc *domain.Document) any {
	return map[string]any{"agents": doc.Agents, "pending_agents": doc.PendingAgents}
}

// ---- handlers ----

func (h *Handlers) data(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Svc.Data(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) createRegion(w http.ResponseWriter, r *http.Request) {
	var in app.RegionInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.CreateRegion(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsOf(doc))
}

func (h *Handlers) updateRegion(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in app.RegionInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.UpdateRegion(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsOf(doc))
}

func (h *Handlers) deleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.DeleteRegion(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsAndHotelsOf(doc))
}

func (h *Handlers) createOperation(w http.ResponseWriter, r *http.Request) {
	var in app.OperationInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.CreateOperation(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, operationsOf(doc))
}

func (h *Handlers) updateOperation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in app.OperationInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.UpdateOperation(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, operationsOf(doc))
}

func (h *Handlers) deleteOperation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.DeleteOperation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, operationsOf(doc))
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in app.HotelInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.CreateHotel(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsAndHotelsOf(doc))
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in app.HotelInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.UpdateHotel(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsAndHotelsOf(doc))
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.DeleteHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsAndHotelsOf(doc))
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var in app.ReservationInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.CreateReservation(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservationsOf(doc))
}

func (h *Handlers) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in app.ReservationInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.UpdateReservation(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservationsOf(doc))
}

func (h *Handlers) setReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		Status        string                `json:"status"`
		ChangeRequest *domain.ChangeRequest `json:"changeRequest"`
	}
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.SetReservationStatus(r.Context(), id, in.Status, in.ChangeRequest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservationsOf(doc))
}

func (h *Handlers) respondToChange(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		Action string `json:"action"`
	}
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.RespondToChange(r.Context(), id, in.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservationsOf(doc))
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.DeleteReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservationsOf(doc))
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var in app.RegisterInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.RegisterAgent(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pending_agents": doc.PendingAgents})
}

func (h *Handlers) confirmAgent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.ConfirmAgent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agentsOf(doc))
}

func (h *Handlers) deleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.Svc.DeleteAgent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agentsOf(doc))
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
