package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

const version = "1.0.0"

type Service interface {
	SubmitConsultation(ctx context.Context, c entity.Consultation) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// @Summary Service info
// @Description Returns the service banner, version and endpoint list.
// @Tags info
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, RootResponse{
		Message: "NeuralForge API is running",
		Version: version,
		Endpoints: map[string]string{
			"consultation": "/api/consultation",
			"health":       "/health",
		},
	})
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// @Summary Health check
// @Description Reports liveness with the current server time.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

type ConsultationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

type ConsultationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// @Summary Submit a consultation request
// @Description Accepts a consultation form submission and emails the team and the submitter.
// @Tags consultation
// @Accept json
// @Produce json
// @Param request body ConsultationRequest true "consultation form"
// @Success 200 {object} ConsultationResponse
// @Failure 400 {object} ResponseError "invalid submission"
// @Failure 500 {object} ResponseError "request could not be processed"
// @Router /api/consultation [post]
func (h *Handler) SubmitConsultation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ConsultationRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	consultation := entity.Consultation{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	err = h.s.SubmitConsultation(ctx, consultation)
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			SendErr(ctx, w, http.StatusBadRequest, err, err.Error())
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err,
			"Failed to process consultation request. Please try again later.")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ConsultationResponse{
		Success:   true,
		Message:   "Your consultation request has been received. We'll be in touch soon!",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
