package handlers

//go:generate mockgen -source=pet.go -destination=pet_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/adoption"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/middlewares"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// PetCreator lists new pets.
type PetCreator interface {
	Create(ctx context.Context, creator models.Identity, details adoption.Details) (*models.Pet, error)
}

// PetLister lists pets in their different views.
type PetLister interface {
	GetAll(ctx context.Context) ([]models.Pet, error)
	GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Pet, error)
	GetByAdopter(ctx context.Context, adopterID uuid.UUID) ([]models.Pet, error)
}

// PetGetter loads a single pet.
type PetGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
}

// PetUpdater edits pets on behalf of their creator.
type PetUpdater interface {
	Update(ctx context.Context, requester models.Identity, id uuid.UUID, details adoption.Details, available *bool) (*models.Pet, error)
}

// PetRemover deletes pets on behalf of their creator.
type PetRemover interface {
	Remove(ctx context.Context, requester models.Identity, id uuid.UUID) error
}

// PetRequest represents the JSON body for creating a pet
// swagger:model PetRequest
type PetRequest struct {
	// required: true
	// default: Rex
	Name string `json:"name"`

	// Age in years
	// required: true
	// default: 2
	Age float64 `json:"age"`

	// Weight in kilograms
	// required: true
	// default: 10
	Weight float64 `json:"weight"`

	// required: true
	// default: black
	Color string `json:"color"`
}

func (p PetRequest) details() adoption.Details {
	return adoption.Details{Name: p.Name, Age: p.Age, Weight: p.Weight, Color: p.Color}
}

// UpdatePetRequest represents the JSON body for editing a pet
// swagger:model UpdatePetRequest
type UpdatePetRequest struct {
	PetRequest

	// Overrides availability when present
	Available *bool `json:"available,omitempty"`
}

// PetResponse wraps a single pet
// swagger:model PetResponse
type PetResponse struct {
	Message string      `json:"message,omitempty"`
	Pet     *models.Pet `json:"pet"`
}

// PetsResponse wraps a list of pets
// swagger:model PetsResponse
type PetsResponse struct {
	Pets []models.Pet `json:"pets"`
}

// NewCreatePetHandler returns an HTTP handler that lists a pet for adoption.
// @Summary Create pet
// @Description Lists a pet for adoption owned by the caller
// @Tags pets
// @Accept json
// @Produce json
// @Param petRequest body handlers.PetRequest true "Pet"
// @Success 201 {object} handlers.PetResponse "Pet created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Router /pets/create [post]
// @Security BearerAuth
func NewCreatePetHandler(svc PetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadBody(w, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		pet, err := svc.Create(r.Context(), identity, req.details())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, PetResponse{Message: "Pet registered successfully", Pet: pet})
	}
}

// NewListPetsHandler returns every pet, newest first.
// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {object} handlers.PetsResponse "Pets"
// @Router /pets [get]
func NewListPetsHandler(svc PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePets(w, r)(svc.GetAll(r.Context()))
	}
}

// NewMyPetsHandler returns the pets listed by the caller.
// @Summary My pets
// @Tags pets
// @Produce json
// @Success 200 {object} handlers.PetsResponse "Pets listed by the caller"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /pets/mypets [get]
// @Security BearerAuth
func NewMyPetsHandler(svc PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := middlewares.IdentityFromContext(r.Context())
		writePets(w, r)(svc.GetByCreator(r.Context(), identity.ID))
	}
}

// NewMyAdoptionsHandler returns the pets the caller scheduled a visit to or adopted.
// @Summary My adoptions
// @Tags pets
// @Produce json
// @Success 200 {object} handlers.PetsResponse "Pets whose adopter is the caller"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /pets/myadoptions [get]
// @Security BearerAuth
func NewMyAdoptionsHandler(svc PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := middlewares.IdentityFromContext(r.Context())
		writePets(w, r)(svc.GetByAdopter(r.Context(), identity.ID))
	}
}

func writePets(w http.ResponseWriter, r *http.Request) func([]models.Pet, error) {
	return func(pets []models.Pet, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		if pets == nil {
			pets = []models.Pet{}
		}
		writeJSON(w, http.StatusOK, PetsResponse{Pets: pets})
	}
}

// NewGetPetHandler returns a single pet.
// @Summary Get pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet id"
// @Success 200 {object} handlers.PetResponse "Pet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /pets/{id} [get]
func NewGetPetHandler(svc PetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		pet, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PetResponse{Pet: pet})
	}
}

// NewUpdatePetHandler returns an HTTP handler that edits a pet.
// @Summary Update pet
// @Description Replaces name, age, weight and color. When available is sent it is applied as is, reopening or closing adoption.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "Pet id"
// @Param updatePetRequest body handlers.UpdatePetRequest true "Pet"
// @Success 200 {object} handlers.PetResponse "Pet updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Failure 409 {object} handlers.ErrorResponse "Pet was modified concurrently"
// @Failure 422 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Router /pets/{id} [patch]
// @Security BearerAuth
func NewUpdatePetHandler(svc PetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req UpdatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadBody(w, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		pet, err := svc.Update(r.Context(), identity, id, req.details(), req.Available)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PetResponse{Message: "Pet updated successfully", Pet: pet})
	}
}

// NewRemovePetHandler returns an HTTP handler that deletes a pet.
// @Summary Remove pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet id"
// @Success 200 {object} handlers.MessageResponse "Pet removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /pets/{id} [delete]
// @Security BearerAuth
func NewRemovePetHandler(svc PetRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		if err := svc.Remove(r.Context(), identity, id); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Pet removed successfully"})
	}
}
