package cart

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
	MessageAdded      = "You've added a new cart item!"
	MessageDeleted    = "The cart item has been deleted"
	MessageAllDeleted = "All your cart items have been deleted."
	MessageNotFound   = "Error: Cart item not found."
)

type ServiceAPI interface {
	Add(ctx context.Context, input AddItemInput) error
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id uint) (Item, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// Handler HTTP del carrito.
type Handler struct {
	service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// Add maneja POST /cart/add.
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
			internalError(writer, request, "cart_add_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusCreated, MessageAdded)
}

// List maneja GET /cart/get.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		internalError(writer, request, "cart_list_failed", err)
		return
	}

	httpx.OK(writer, http.StatusOK, items)
}

// GetByID maneja GET /cart/get/{id}.
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
			internalError(writer, request, "cart_get_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusOK, item)
}

// Delete maneja DELETE /cart/delete/{id}.
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
			internalError(writer, request, "cart_delete_failed", err)
		}
		return
	}

	httpx.OK(writer, http.StatusOK, MessageDeleted)
}

// DeleteAll maneja DELETE /cart/delete.
func (handler *Handler) DeleteAll(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAll(request.Context()); err != nil {
		internalError(writer, request, "cart_delete_all_failed", err)
		return
	}

	httpx.OK(writer, http.StatusOK, MessageAllDeleted)
}

// El detalle del error queda en el log del request.
func internalError(writer http.ResponseWriter, request *http.Request, event string, err error) {
	logging.FromContext(request.Context()).Error(event, "status", http.StatusInternalServerError, "error", err)
	httpx.Fail(writer, http.StatusInternalServerError, httpx.MessageUnexpected)
}
