package ui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"angket/app"
	"angket/domain/core"
	"angket/internal/errors"
)

// parseQuery extracts the common analytics query parameters. The tenant is
// taken from the X-Tenant-ID header set by the upstream auth proxy; the
// version is optional and defaults to the latest published one.
func parseQuery(r *http.Request) (app.Query, error) {
	tenantID, err := core.ParseTenantID(r.Header.Get("X-Tenant-ID"))
	if err != nil {
		return app.Query{}, errors.InvalidInput("missing tenant")
	}
	questionnaireID, err := core.ParseQuestionnaireID(chi.URLParam(r, "questionnaireID"))
	if err != nil {
		return app.Query{}, errors.InvalidInput("missing questionnaire ID")
	}

	q := app.Query{
		TenantID:        tenantID,
		QuestionnaireID: questionnaireID,
	}
	if raw := r.URL.Query().Get("version"); raw != "" {
		versionID, err := core.ParseVersionID(raw)
		if err != nil {
			return app.Query{}, errors.InvalidInput("invalid version parameter")
		}
		q.VersionID = versionID
	}

	if from, ok, err := parseTimeParam(r, "from"); err != nil {
		return app.Query{}, err
	} else if ok {
		q.From = &from
	}
	if to, ok, err := parseTimeParam(r, "to"); err != nil {
		return app.Query{}, err
	} else if ok {
		q.To = &to
	}
	return q, nil
}

// parseTimeParam accepts either RFC3339 timestamps or plain dates.
func parseTimeParam(r *http.Request, name string) (time.Time, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(core.DayLayout, raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, errors.InvalidInput("invalid " + name + " parameter")
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	summary, err := a.service.Summary(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, summary)
}

func (a *App) handleDistribution(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	dist, err := a.service.Distribution(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, dist)
}

func (a *App) handleTrend(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			a.writeError(w, errors.InvalidInput("invalid days parameter"))
			return
		}
	}
	points, err := a.service.Trend(r.Context(), q, days)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, points)
}

func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	csv, err := a.service.ExportCSV(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="responses.csv"`)
	_, _ = w.Write([]byte(csv))
}

func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	workbook, err := a.service.ExportXLSX(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="responses.xlsx"`)
	_, _ = w.Write(workbook)
}

func (a *App) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		a.log.Error("request failed: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}
