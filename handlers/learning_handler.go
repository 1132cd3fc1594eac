package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"evergreenMuseAPI/internal/seed"
	"evergreenMuseAPI/internal/srs"
	"evergreenMuseAPI/middleware"
	"evergreenMuseAPI/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LearningHandler struct {
	learningService *services.LearningService
}

func NewLearningHandler(learningService *services.LearningService) *LearningHandler {
	return &LearningHandler{
		learningService: learningService,
	}
}

func (h *LearningHandler) GetSeeds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	seeds, err := h.learningService.GetSeeds(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, seeds)
}

func (h *LearningHandler) CreateSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req seed.CreateSeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Front) == "" || strings.TrimSpace(req.Back) == "" {
		respondWithError(w, http.StatusBadRequest, "front and back are required")
		return
	}

	created, err := h.learningService.CreateSeed(ctx, clerkID, &req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// GetReviewSession returns the seeds due for review right now, shuffled
// so the client shows them in a fresh order each session.
func (h *LearningHandler) GetReviewSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	session, err := h.learningService.GetReviewSession(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

func (h *LearningHandler) ReviewSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	seedID, err := uuid.Parse(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid seed ID")
		return
	}

	var req seed.ReviewSeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := srs.ParseOutcome(req.Outcome)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviewed, err := h.learningService.ReviewSeed(ctx, clerkID, seedID, outcome)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondWithError(w, http.StatusNotFound, "Seed not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.SeedReviews.WithLabelValues(string(outcome)).Inc()
	respondWithJSON(w, http.StatusOK, reviewed)
}

func (h *LearningHandler) DeleteSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	seedID, err := uuid.Parse(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid seed ID")
		return
	}

	if err := h.learningService.DeleteSeed(ctx, clerkID, seedID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondWithError(w, http.StatusNotFound, "Seed not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Seed deleted successfully"})
}
