package cart_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Lelo88/gearshop-api/internal/cart"
	"github.com/Lelo88/gearshop-api/internal/logging"
)

type stubService struct {
	addFn       func(ctx context.Context, input cart.AddItemInput) error
	listFn      func(ctx context.Context) ([]cart.Item, error)
	getFn       func(ctx context.Context, id uint) (cart.Item, error)
	deleteFn    func(ctx context.Context, id uint) error
	deleteAllFn func(ctx context.Context) error

	addCalled       bool
	addInput        cart.AddItemInput
	deleteID        uint
	deleteAllCalled bool
}

func (service *stubService) Add(ctx context.Context, input cart.AddItemInput) error {
	service.addCalled = true
	service.addInput = input
	if service.addFn != nil {
		return service.addFn(ctx, input)
	}
	return nil
}

func (service *stubService) List(ctx context.Context) ([]cart.Item, error) {
	if service.listFn != nil {
		return service.listFn(ctx)
	}
	return []cart.Item{}, nil
}

func (service *stubService) Get(ctx context.Context, id uint) (cart.Item, error) {
	if service.getFn != nil {
		return service.getFn(ctx, id)
	}
	return cart.Item{}, nil
}

func (service *stubService) Delete(ctx context.Context, id uint) error {
	service.deleteID = id
	if service.deleteFn != nil {
		return service.deleteFn(ctx, id)
	}
	return nil
}

func (service *stubService) DeleteAll(ctx context.Context) error {
	service.deleteAllCalled = true
	if service.deleteAllFn != nil {
		return service.deleteAllFn(ctx)
	}
	return nil
}

func TestHandler_Add(t *testing.T) {
	t.Run("missing content type", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":1,"img":"b"}`))
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		require.Equal(t, "Error: Data must be json", decodeString(t, rec))
		require.False(t, service.addCalled)
	})

	t.Run("wrong field type", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":"cheap","img":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Error: Data must be json", decodeString(t, rec))
		require.False(t, service.addCalled)
	})

	t.Run("trailing bracket after object", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":1,"img":"b"}]`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Error: Data must be json", decodeString(t, rec))
		require.False(t, service.addCalled)
	})

	t.Run("missing field", func(t *testing.T) {
		service := &stubService{
			addFn: func(ctx context.Context, input cart.AddItemInput) error {
				return &cart.MissingFieldError{Field: "img"}
			},
		}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":1}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Error: Data must have a 'img' key.", decodeString(t, rec))
	})

	t.Run("internal error", func(t *testing.T) {
		service := &stubService{
			addFn: func(ctx context.Context, input cart.AddItemInput) error {
				return errors.New("boom")
			},
		}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":1,"img":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Error: unexpected error.", decodeString(t, rec))
	})

	t.Run("success", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"title":"a","price":1,"img":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Add(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, cart.MessageAdded, decodeString(t, rec))
		require.Equal(t, "a", *service.addInput.Title)
		require.Equal(t, int64(1), *service.addInput.Price)
		require.Equal(t, "b", *service.addInput.Img)
	})
}

func TestHandler_List(t *testing.T) {
	service := &stubService{
		listFn: func(ctx context.Context) ([]cart.Item, error) {
			return []cart.Item{{Title: "a", Price: 1, Img: "b"}}, nil
		},
	}
	handler := cart.NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/cart/get", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"title":"a","price":1,"img":"b"}]`, rec.Body.String())
}

func TestHandler_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		handler := cart.NewHandler(&stubService{})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/cart/get/x", nil), "id", "x")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		service := &stubService{
			getFn: func(ctx context.Context, id uint) (cart.Item, error) {
				return cart.Item{}, cart.ErrorNotFound
			},
		}
		handler := cart.NewHandler(service)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/cart/get/3", nil), "id", "3")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, cart.MessageNotFound, decodeString(t, rec))
	})

	t.Run("success", func(t *testing.T) {
		service := &stubService{
			getFn: func(ctx context.Context, id uint) (cart.Item, error) {
				return cart.Item{Title: "a", Price: 1, Img: "b"}, nil
			},
		}
		handler := cart.NewHandler(service)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/cart/get/3", nil), "id", "3")
		rec := httptest.NewRecorder()

		handler.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"title":"a","price":1,"img":"b"}`, rec.Body.String())
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		service := &stubService{
			deleteFn: func(ctx context.Context, id uint) error {
				return cart.ErrorNotFound
			},
		}
		handler := cart.NewHandler(service)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/cart/delete/3", nil), "id", "3")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/cart/delete/3", nil), "id", "3")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, cart.MessageDeleted, decodeString(t, rec))
		require.Equal(t, uint(3), service.deleteID)
	})
}

func TestHandler_Delete_InternalErrorIsLogged(t *testing.T) {
	service := &stubService{
		deleteFn: func(ctx context.Context, id uint) error {
			return errors.New("disk full")
		},
	}
	handler := cart.NewHandler(service)

	var logs bytes.Buffer
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/cart/delete/3", nil), "id", "3")
	req = req.WithContext(logging.IntoContext(req.Context(), logging.NewWithWriter(&logs, "info")))
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Error: unexpected error.", decodeString(t, rec))
	require.Contains(t, logs.String(), "cart_delete_failed")
	require.Contains(t, logs.String(), "disk full")
	require.NotContains(t, rec.Body.String(), "disk full")
}

func TestHandler_DeleteAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := &stubService{}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/cart/delete", nil)
		rec := httptest.NewRecorder()

		handler.DeleteAll(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, cart.MessageAllDeleted, decodeString(t, rec))
		require.True(t, service.deleteAllCalled)
	})

	t.Run("internal error", func(t *testing.T) {
		service := &stubService{
			deleteAllFn: func(ctx context.Context) error {
				return errors.New("boom")
			},
		}
		handler := cart.NewHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/cart/delete", nil)
		rec := httptest.NewRecorder()

		handler.DeleteAll(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeContext))
}

func decodeString(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var message string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &message))
	return message
}
