// package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service
// methods, and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/apperrors"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/internal/service"
	"github.com/Jothi-Sri-K/ImpactLens/internal/validation"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the dependencies for the HTTP server, including the logger and
// service interfaces.
type Server struct {
	log             *slog.Logger
	teamService     service.TeamService
	userService     service.UserService
	activityService service.ActivityService
	scoreService    service.ScoreService
}

// NewServer creates a new instance of the HTTP server.
func NewServer(
	log *slog.Logger,
	ts service.TeamService,
	us service.UserService,
	as service.ActivityService,
	ss service.ScoreService,
) *Server {
	return &Server{
		log:             log,
		teamService:     ts,
		userService:     us,
		activityService: as,
		scoreService:    ss,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/team/add", s.PostTeamAdd)
	mux.Get("/team/get", s.GetTeamGet)
	mux.Post("/team/sync", s.PostTeamSync)
	mux.Post("/team/syncMembers", s.PostTeamSyncMembers)
	mux.Post("/users/setIsActive", s.PostUsersSetIsActive)
	mux.Get("/scores/team", s.GetScoresTeam)
	mux.Get("/scores/all", s.GetScoresAll)
	mux.Post("/attendance/mark", s.PostAttendanceMark)
	mux.Post("/activities/add", s.PostActivitiesAdd)
	mux.Post("/feedback/add", s.PostFeedbackAdd)
	mux.Post("/work/submit", s.PostWorkSubmit)

	return mux
}

func (s *Server) PostTeamAdd(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamAdd"

	var req createTeamRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	apiMembers := make([]api.TeamMember, len(req.Members))
	for i, m := range req.Members {
		isTechnical := true
		if m.IsTechnical != nil {
			isTechnical = *m.IsTechnical
		}

		apiMembers[i] = api.TeamMember{
			UserId:         m.UserID,
			Username:       m.Username,
			GithubUsername: m.GithubUsername,
			IsTechnical:    isTechnical,
			IsActive:       m.IsActive,
		}
	}

	apiTeam := api.Team{
		TeamName: req.TeamName,
		RepoUrl:  req.RepoURL,
		Members:  apiMembers,
	}

	team, err := s.teamService.CreateTeamWithUsers(r.Context(), apiTeam)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Team{"team": team})
}

func (s *Server) GetTeamGet(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetTeamGet"

	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		s.respondError(w, http.StatusBadRequest, "team_name query parameter is required")
		return
	}

	team, err := s.teamService.GetTeam(r.Context(), teamName)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Team{"team": team})
}

func (s *Server) PostTeamSync(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamSync"

	var req syncTeamRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	resp, err := s.scoreService.SyncAndScore(r.Context(), req.TeamName, req.UseDemo)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) PostTeamSyncMembers(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamSyncMembers"

	var req syncMembersRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	users, err := s.scoreService.SyncMembers(r.Context(), req.TeamName)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.User{"users": users})
}

func (s *Server) PostUsersSetIsActive(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostUsersSetIsActive"

	var req setUserActiveRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.SetIsActive(r.Context(), req.UserID, req.IsActive)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) GetScoresTeam(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetScoresTeam"

	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		s.respondError(w, http.StatusBadRequest, "team_name query parameter is required")
		return
	}

	scores, err := s.scoreService.GetTeamScores(r.Context(), teamName)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.ScoreMetrics{"scores": scores})
}

func (s *Server) GetScoresAll(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetScoresAll"

	scores, err := s.scoreService.GetAllScores(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.ScoreMetrics{"scores": scores})
}

func (s *Server) PostAttendanceMark(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostAttendanceMark"

	var req markAttendanceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var day time.Time
	if req.Day != "" {
		parsed, err := time.Parse("2006-01-02", req.Day)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "day must be formatted as YYYY-MM-DD")
			return
		}
		day = parsed
	}

	err := s.activityService.MarkAttendance(r.Context(), req.UserID, day, domain.AttendanceStatus(req.Status))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"status": "marked"})
}

func (s *Server) PostActivitiesAdd(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostActivitiesAdd"

	var req addActivityRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	act, err := s.activityService.AddNonTechActivity(r.Context(), req.UserID, req.Type, req.Description, req.ImpactPoints)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]api.NonTechActivity{"activity": {
		Id:           act.ID,
		UserId:       act.UserID,
		Type:         act.Type,
		Description:  act.Description,
		ImpactPoints: act.ImpactPoints,
	}})
}

func (s *Server) PostFeedbackAdd(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostFeedbackAdd"

	var req addFeedbackRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	fb, err := s.activityService.AddFeedback(r.Context(), req.UserID, req.Description)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]api.ClientFeedback{"feedback": {
		Id:          fb.ID,
		UserId:      fb.UserID,
		Description: fb.Description,
		Date:        fb.Date,
	}})
}

func (s *Server) PostWorkSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostWorkSubmit"

	var req submitWorkRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	ws, err := s.activityService.AddWorkSubmission(r.Context(), req.UserID, req.Title, req.Description, req.Link)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]api.WorkSubmission{"submission": {
		Id:          ws.ID,
		UserId:      ws.UserID,
		Title:       ws.Title,
		Description: ws.Description,
		Link:        ws.Link,
		SubmittedAt: ws.SubmittedAt,
	}})
}

// respond is a helper function to encode data to JSON and write it to the
// response. It centralizes setting the Content-Type header and writing the
// status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondError is a convenience wrapper around respond for sending simple
// error messages.
func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"error": message})
}

// respondAPIError formats and sends a structured error response.
func (s *Server) respondAPIError(w http.ResponseWriter, code int, apiCode api.ErrorResponseErrorCode, message string) {
	errResp := api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    apiCode,
			Message: message,
		},
	}
	s.respond(w, code, errResp)
}

// decodeAndValidate is a helper that deserializes a JSON request body into a
// struct and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// decode is a helper function to decode a JSON request body.
func (s *Server) decode(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError provides centralized error handling for all HTTP
// handlers. It logs the internal error and maps it to a user-friendly HTTP
// response.
func (s *Server) handleServiceError(w http.ResponseWriter, _ *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op))
	log.Error("service error occurred", sl.Err(err))

	var (
		teamExistsErr *apperrors.TeamAlreadyExistsError
		validationErr *validation.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		wrappedErr := fmt.Errorf("%w: %s", apperrors.ErrValidation, validationErr.Error())
		s.respondError(w, http.StatusBadRequest, wrappedErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		s.respondError(w, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondAPIError(w, http.StatusNotFound, api.NOTFOUND, "resource not found")
	case errors.As(err, &teamExistsErr):
		s.respondAPIError(w, http.StatusConflict, api.TEAMEXISTS, "team with this name already exists")
	case errors.Is(err, apperrors.ErrFetchCommits):
		s.respondAPIError(w, http.StatusBadGateway, api.FETCHFAIL, "failed to fetch data from the commit source")
	default:
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
