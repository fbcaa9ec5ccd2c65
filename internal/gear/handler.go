package gear

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lelo88/gearshop-api/internal/httpx"
	"github.com/Lelo88/gearshop-api/internal/logging"
)

const (
	MessageAdded    = "You've added a new gear item!"
	MessageDeleted  = "The Gear item has been deleted"
	MessageUpdated  = "Gear item has been updated."
	MessageNotFound = "Error: Gear item not found."
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	Add(ctx context.Context, input AddItemInput) error
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id uint) (Item, error)
	Update(ctx context.Context, id uint, input UpdateItemInput) error
	Delete(ctx context.Context, id uint) error
}

// Handler HTTP para gear items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de gear items.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// Add maneja POST /gear-item/add.
func (handler *Handler) Add(writer http.ResponseWriter, request *http.Request) {
	if err := httpx.RequireJSON(request); err != nil {
		httpx.Fail(writer, http.StatusUnsupportedMediaType, httpx.MessageNotJSON)
		return
	}

	var input AddItemInput
	if err := httpx.DecodeObject(request, &input); err != nil {
		httpx.Fail(writer, http.StatusBadRequest, httpx.MessageNotJSON)
		return
	}

	if err := handler.service.Add(request.Context(), input); err != nil {
		var missing *MissingFieldError
		switch {
		case errors.As(err, &missing):
			httpx.Fail(writer, http.StatusBadRequest, fmt.Sprintf("Error: Data must have a '%s' key.", missing.Field))
		default:
			internalError(writer, request, "gear_add_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusCreated, MessageAdded)
}

// List maneja GET /gear-item/get.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		internalError(writer, request, "gear_list_failed", err)
		return
	}

	httpx.OK(writer, http.StatusOK, items)
}

// GetByID maneja GET /gear-item/get/{id}.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(request, "id"))
	if err != nil {
		httpx.Fail(writer, http.StatusBadRequest, httpx.MessageInvalidID)
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, http.StatusNotFound, MessageNotFound)
		default:
			internalError(writer, request, "gear_get_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusOK, item)
}

// Update maneja PUT y PATCH /gear-item/update/{id}. Ambos son parciales.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(request, "id"))
	if err != nil {
		httpx.Fail(writer, http.StatusBadRequest, httpx.MessageInvalidID)
		return
	}

	if err := httpx.RequireJSON(request); err != nil {
		httpx.Fail(writer, http.StatusUnsupportedMediaType, httpx.MessageNotJSON)
		return
	}

	var input UpdateItemInput
	if err := httpx.DecodeObject(request, &input); err != nil {
		httpx.Fail(writer, http.StatusBadRequest, httpx.MessageNotJSON)
		return
	}

	if err := handler.service.Update(request.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, http.StatusNotFound, MessageNotFound)
		default:
			internalError(writer, request, "gear_update_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusOK, MessageUpdated)
}

// Delete maneja DELETE /gear-item/delete/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := httpx.ParseID(chi.URLParam(request, "id"))
	if err != nil {
		httpx.Fail(writer, http.StatusBadRequest, httpx.MessageInvalidID)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, http.StatusNotFound, MessageNotFound)
		default:
			internalError(writer, request, "gear_delete_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusOK, MessageDeleted)
}

// No filtramos detalles internos: el error va al log, no al cliente.
func internalError(writer http.ResponseWriter, request *http.Request, event string, err error) {
	logging.FromContext(request.Context()).Error(event, "status", http.StatusInternalServerError, "error", err)
	httpx.Fail(writer, http.StatusInternalServerError, httpx.MessageUnexpected)
}
