package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/usecase"
)

// APIHandler serves the JSON catalog, schedule and child endpoints
type APIHandler struct {
	comboUC    usecase.ComboUseCase
	scheduleUC usecase.ScheduleUseCase
	childUC    usecase.ChildUseCase
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(comboUC usecase.ComboUseCase, scheduleUC usecase.ScheduleUseCase, childUC usecase.ChildUseCase) *APIHandler {
	return &APIHandler{
		comboUC:    comboUC,
		scheduleUC: scheduleUC,
		childUC:    childUC,
	}
}

// HandleCombos returns the grouped combo catalog
func (h *APIHandler) HandleCombos(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.comboUC.ListCombos(r.Context())
	if err != nil {
		writeError(w, r, err, statusOf(err, http.StatusBadGateway))
		return
	}
	writeJSON(w, r, http.StatusOK, catalog)
}

// HandleVaccines returns the vaccine price list
func (h *APIHandler) HandleVaccines(w http.ResponseWriter, r *http.Request) {
	vaccines, err := h.comboUC.ListVaccines(r.Context())
	if err != nil {
		writeError(w, r, err, statusOf(err, http.StatusBadGateway))
		return
	}
	if vaccines == nil {
		vaccines = []*model.Vaccine{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"vaccines": vaccines,
	})
}

// HandleSchedule returns the staff-by-day grid. A value that is not an
// integer is rejected; an integer out of range falls back to the current
// month or year.
func (h *APIHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	month, err := queryInt(r, "month")
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	grid, err := h.scheduleUC.BuildGrid(r.Context(), month, year)
	if err != nil {
		writeError(w, r, err, statusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, r, http.StatusOK, grid)
}

// HandleChildren returns the children of the signed-in account
func (h *APIHandler) HandleChildren(w http.ResponseWriter, r *http.Request) {
	authCtx, _ := model.GetAuthContext(r.Context())

	children, err := h.childUC.ListChildren(r.Context(), authCtx)
	if err != nil {
		writeError(w, r, err, statusOf(err, http.StatusBadGateway))
		return
	}
	writeJSON(w, r, http.StatusOK, children)
}

// queryInt reads an optional integer query parameter. An absent or empty
// parameter yields nil.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, goerr.Wrap(model.ErrInvalidInput, "query parameter must be an integer",
			goerr.V("key", key),
			goerr.V("value", raw),
		)
	}
	return &v, nil
}
