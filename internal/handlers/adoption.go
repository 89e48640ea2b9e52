package handlers

//go:generate mockgen -source=adoption.go -destination=adoption_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/middlewares"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// VisitScheduler reserves pets for a visit.
type VisitScheduler interface {
	ScheduleVisit(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.Pet, error)
}

// AdoptionConcluder closes adoptions.
type AdoptionConcluder interface {
	ConcludeAdoption(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.Pet, error)
}

// NewScheduleVisitHandler returns an HTTP handler that schedules a visit to a pet.
// @Summary Schedule visit
// @Description Reserves the pet for the caller. Creators cannot schedule visits to their own pets.
// @Tags adoption
// @Produce json
// @Param id path string true "Pet id"
// @Success 200 {object} handlers.PetResponse "Visit scheduled, message carries the creator contact"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller is the creator"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Failure 409 {object} handlers.ErrorResponse "Already scheduled or not available"
// @Router /pets/schedule/{id} [patch]
// @Security BearerAuth
func NewScheduleVisitHandler(svc VisitScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		pet, err := svc.ScheduleVisit(r.Context(), identity, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PetResponse{
			Message: fmt.Sprintf("Visit scheduled successfully, contact %s at %s", pet.Creator.Name, pet.Creator.Phone),
			Pet:     pet,
		})
	}
}

// NewConcludeAdoptionHandler returns an HTTP handler that concludes a pet's adoption.
// @Summary Conclude adoption
// @Description Marks the pet as adopted. Only its creator can do this.
// @Tags adoption
// @Produce json
// @Param id path string true "Pet id"
// @Success 200 {object} handlers.PetResponse "Adoption concluded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /pets/conclude/{id} [patch]
// @Security BearerAuth
func NewConcludeAdoptionHandler(svc AdoptionConcluder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		pet, err := svc.ConcludeAdoption(r.Context(), identity, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PetResponse{Message: "Congratulations, the adoption was concluded", Pet: pet})
	}
}
