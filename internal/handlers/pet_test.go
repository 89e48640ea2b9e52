package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/adoption"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/repositories"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
)

func rex() *models.Pet {
	return &models.Pet{
		ID:        uuid.New(),
		Name:      "Rex",
		Age:       3,
		Weight:    12.5,
		Color:     "black",
		Available: true,
		Creator:   models.Creator{ID: caller.ID, Name: caller.Name, Phone: caller.Phone},
		Version:   1,
	}
}

func TestCreatePetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := PetRequest{Name: "Rex", Age: 3, Weight: 12.5, Color: "black"}
	details := adoption.Details{Name: "Rex", Age: 3, Weight: 12.5, Color: "black"}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockPetCreator)
		expectedCode int
	}{
		{
			name: "success",
			body: req,
			mockSetup: func(m *MockPetCreator) {
				m.EXPECT().Create(gomock.Any(), caller, details).Return(rex(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "validation failure",
			body: PetRequest{Name: "Rex"},
			mockSetup: func(m *MockPetCreator) {
				m.EXPECT().Create(gomock.Any(), caller, adoption.Details{Name: "Rex"}).
					Return(nil, adoption.Details{Name: "Rex"}.Validate())
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "invalid json",
			body:         "[",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockPetCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(t, NewCreatePetHandler(svc), http.MethodPost, "/pets/create", "/pets/create", tt.body, &caller)
			assert.Equal(t, tt.expectedCode, rr.Code)

			switch rr.Code {
			case http.StatusCreated:
				var resp PetResponse
				decodeBody(t, rr, &resp)
				assert.Equal(t, "Pet registered successfully", resp.Message)
				assert.Equal(t, "Rex", resp.Pet.Name)
			case http.StatusUnprocessableEntity:
				var resp ErrorResponse
				decodeBody(t, rr, &resp)
				assert.Contains(t, resp.Details, "age is required")
				assert.Contains(t, resp.Details, "color is required")
			}
		})
	}
}

func TestListPetsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("all pets", func(t *testing.T) {
		svc := NewMockPetLister(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return([]models.Pet{*rex(), *rex()}, nil)

		rr := serve(t, NewListPetsHandler(svc), http.MethodGet, "/pets", "/pets", nil, nil)

		var resp PetsResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, resp.Pets, 2)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := NewMockPetLister(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		rr := serve(t, NewListPetsHandler(svc), http.MethodGet, "/pets", "/pets", nil, nil)
		assert.JSONEq(t, `{"pets":[]}`, rr.Body.String())
	})

	t.Run("my pets use the caller as creator", func(t *testing.T) {
		svc := NewMockPetLister(ctrl)
		svc.EXPECT().GetByCreator(gomock.Any(), caller.ID).Return([]models.Pet{*rex()}, nil)

		rr := serve(t, NewMyPetsHandler(svc), http.MethodGet, "/pets/mypets", "/pets/mypets", nil, &caller)

		var resp PetsResponse
		decodeBody(t, rr, &resp)
		assert.Len(t, resp.Pets, 1)
	})

	t.Run("my adoptions use the caller as adopter", func(t *testing.T) {
		svc := NewMockPetLister(ctrl)
		svc.EXPECT().GetByAdopter(gomock.Any(), caller.ID).Return(nil, nil)

		rr := serve(t, NewMyAdoptionsHandler(svc), http.MethodGet, "/pets/myadoptions", "/pets/myadoptions", nil, &caller)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"pets":[]}`, rr.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := NewMockPetLister(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection reset"))

		rr := serve(t, NewListPetsHandler(svc), http.MethodGet, "/pets", "/pets", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

func TestGetPetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pet := rex()

	t.Run("found", func(t *testing.T) {
		svc := NewMockPetGetter(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), pet.ID).Return(pet, nil)

		rr := serve(t, NewGetPetHandler(svc), http.MethodGet, "/pets/{id}", "/pets/"+pet.ID.String(), nil, nil)

		var resp PetResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, pet.ID, resp.Pet.ID)
		assert.Equal(t, caller.Phone, resp.Pet.Creator.Phone)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockPetGetter(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), pet.ID).Return(nil, services.ErrPetNotFound)

		rr := serve(t, NewGetPetHandler(svc), http.MethodGet, "/pets/{id}", "/pets/"+pet.ID.String(), nil, nil)

		var resp ErrorResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "pet not found", resp.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := serve(t, NewGetPetHandler(NewMockPetGetter(ctrl)), http.MethodGet, "/pets/{id}", "/pets/not-a-uuid", nil, nil)

		var resp ErrorResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid id", resp.Message)
	})
}

func TestUpdatePetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pet := rex()
	details := adoption.Details{Name: "Rex", Age: 4, Weight: 13, Color: "black"}
	closed := false

	t.Run("availability passed through", func(t *testing.T) {
		svc := NewMockPetUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), caller, pet.ID, details, &closed).Return(pet, nil)

		body := UpdatePetRequest{PetRequest: PetRequest{Name: "Rex", Age: 4, Weight: 13, Color: "black"}, Available: &closed}
		rr := serve(t, NewUpdatePetHandler(svc), http.MethodPatch, "/pets/{id}", "/pets/"+pet.ID.String(), body, &caller)

		var resp PetResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Pet updated successfully", resp.Message)
	})

	t.Run("availability omitted", func(t *testing.T) {
		svc := NewMockPetUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), caller, pet.ID, details, gomock.Nil()).Return(pet, nil)

		body := `{"name":"Rex","age":4,"weight":13,"color":"black"}`
		rr := serve(t, NewUpdatePetHandler(svc), http.MethodPatch, "/pets/{id}", "/pets/"+pet.ID.String(), body, &caller)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not the creator", func(t *testing.T) {
		svc := NewMockPetUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), caller, pet.ID, gomock.Any(), gomock.Any()).Return(nil, adoption.ErrNotCreator)

		rr := serve(t, NewUpdatePetHandler(svc), http.MethodPatch, "/pets/{id}", "/pets/"+pet.ID.String(), PetRequest{}, &caller)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("concurrent modification", func(t *testing.T) {
		svc := NewMockPetUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), caller, pet.ID, gomock.Any(), gomock.Any()).Return(nil, repositories.ErrPetModified)

		rr := serve(t, NewUpdatePetHandler(svc), http.MethodPatch, "/pets/{id}", "/pets/"+pet.ID.String(), PetRequest{}, &caller)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRemovePetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "success", expectedCode: http.StatusOK},
		{name: "not found", err: services.ErrPetNotFound, expectedCode: http.StatusNotFound},
		{name: "not the creator", err: adoption.ErrNotCreator, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockPetRemover(ctrl)
			svc.EXPECT().Remove(gomock.Any(), caller, id).Return(tt.err)

			rr := serve(t, NewRemovePetHandler(svc), http.MethodDelete, "/pets/{id}", "/pets/"+id.String(), nil, &caller)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
