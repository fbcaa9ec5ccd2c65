package cart

import (
	"context"
	"errors"

	"github.com/Lelo88/gearshop-api/internal/logging"
)

var (
	ErrorNotFound     = errors.New("cart item not found")
	ErrorMissingField = errors.New("missing field")
)

// MissingFieldError indica qué campo requerido faltó en el alta.
type MissingFieldError struct {
	Field string
}

func (err *MissingFieldError) Error() string {
	return "missing field: " + err.Field
}

func (err *MissingFieldError) Is(target error) bool {
	return target == ErrorMissingField
}

type RepositoryAPI interface {
	Insert(ctx context.Context, record Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id uint) (Record, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Service contiene las reglas del carrito.
type Service struct {
	repository RepositoryAPI
}

func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// Add valida presencia de title, price e img (en ese orden) y persiste.
func (service *Service) Add(ctx context.Context, input AddItemInput) error {
	switch {
	case input.Title == nil:
		return &MissingFieldError{Field: "title"}
	case input.Price == nil:
		return &MissingFieldError{Field: "price"}
	case input.Img == nil:
		return &MissingFieldError{Field: "img"}
	}

	_, err := service.repository.Insert(ctx, Record{
		Title: *input.Title,
		Price: *input.Price,
		Img:   *input.Img,
	})
	return err
}

func (service *Service) List(ctx context.Context) ([]Item, error) {
	records, err := service.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(records))
	for _, record := range records {
		items = append(items, toItem(record))
	}
	return items, nil
}

func (service *Service) Get(ctx context.Context, id uint) (Item, error) {
	record, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return Item{}, err
	}
	return toItem(record), nil
}

func (service *Service) Delete(ctx context.Context, id uint) error {
	return service.repository.Delete(ctx, id)
}

// DeleteAll vacía el carrito. Un carrito vacío no es error.
func (service *Service) DeleteAll(ctx context.Context) error {
	deleted, err := service.repository.DeleteAll(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("cart_cleared", "deleted", deleted)
	return nil
}
