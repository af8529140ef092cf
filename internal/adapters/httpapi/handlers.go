package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
	"iris/internal/ports"
)

type handlers struct {
	engine  *application.Engine
	history ports.HistoryRepository
	logger  zerolog.Logger
}

type bodyJSON struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type distanceJSON struct {
	Body        string  `json:"body"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	DistanceKm  float64 `json:"distance_km"`
	VelocityKmS float64 `json:"velocity_km_s"`
	OnEarth     bool    `json:"on_earth"`
}

type calculationJSON struct {
	ID        string    `json:"id"`
	Resolver  string    `json:"resolver"`
	CreatedAt time.Time `json:"created_at"`
	distanceJSON
}

type errorJSON struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) bodies(w http.ResponseWriter, r *http.Request) {
	bodies, err := commands.NewListBodiesCommand().Execute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]bodyJSON, len(bodies))
	for i, b := range bodies {
		out[i] = bodyJSON{Name: b.String(), Slug: b.Slug()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) distance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cmd := commands.NewComputeCommand(h.engine, h.history, q.Get("body"), q.Get("start"), q.Get("end")).
		WithLogger(h.logger)

	report, err := cmd.Execute(r.Context())
	if err != nil {
		computationsTotal.WithLabelValues(bodyLabel(q.Get("body")), errorKind(err)).Inc()
		h.writeError(w, err)
		return
	}

	computationsTotal.WithLabelValues(report.Body.Slug(), "ok").Inc()
	writeJSON(w, http.StatusOK, distanceJSON{
		Body:        report.Body.String(),
		Start:       domain.FormatTimestamp(report.Start),
		End:         domain.FormatTimestamp(report.End),
		DistanceKm:  report.Result.DistanceKm,
		VelocityKmS: report.Result.VelocityKmS,
		OnEarth:     report.OnEarth,
	})
}

func (h *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := commands.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: "limit must be a positive integer", Kind: "invalid_limit"})
			return
		}
		limit = n
	}

	calcs, err := commands.NewListHistoryCommand(h.history, limit).Execute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]calculationJSON, len(calcs))
	for i, c := range calcs {
		out[i] = calculationJSON{
			ID:        c.ID,
			Resolver:  c.Resolver,
			CreatedAt: c.CreatedAt,
			distanceJSON: distanceJSON{
				Body:        c.Body.String(),
				Start:       domain.FormatTimestamp(c.Start),
				End:         domain.FormatTimestamp(c.End),
				DistanceKm:  c.Result.DistanceKm,
				VelocityKmS: c.Result.VelocityKmS,
				OnEarth:     c.Body == domain.Earth,
			},
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorJSON{Error: application.DescribeError(err), Kind: errorKind(err)})
}

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrUnsupportedBody),
		errors.Is(err, domain.ErrZeroElapsedTime):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTimeOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrHistoryDisabled):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeFormat):
		return "invalid_time_format"
	case errors.Is(err, domain.ErrUnsupportedBody):
		return "unsupported_body"
	case errors.Is(err, domain.ErrZeroElapsedTime):
		return "zero_elapsed_time"
	case errors.Is(err, domain.ErrTimeOutOfRange):
		return "time_out_of_range"
	case errors.Is(err, commands.ErrHistoryDisabled):
		return "history_disabled"
	default:
		return "internal"
	}
}

// bodyLabel keeps metric cardinality bounded for unknown names.
func bodyLabel(name string) string {
	b, err := domain.ParseBody(name)
	if err != nil {
		return "unknown"
	}
	return b.Slug()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
