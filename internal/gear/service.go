package gear

import (
	"context"
	"errors"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorNotFound     = errors.New("gear item not found")
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

// RepositoryAPI es lo que el service necesita de la persistencia.
type RepositoryAPI interface {
	Insert(ctx context.Context, record Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id uint) (Record, error)
	Update(ctx context.Context, id uint, input UpdateItemInput) (Record, error)
	Delete(ctx context.Context, id uint) error
}

// Service contiene las reglas de gear items. Solo valida presencia de campos.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de gear items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// Add valida los campos en orden (title, price, description, img) y persiste.
// Strings vacíos y price 0 son válidos: solo importa que la clave venga.
func (service *Service) Add(ctx context.Context, input AddItemInput) error {
	switch {
	case input.Title == nil:
		return &MissingFieldError{Field: "title"}
	case input.Price == nil:
		return &MissingFieldError{Field: "price"}
	case input.Description == nil:
		return &MissingFieldError{Field: "description"}
	case input.Img == nil:
		return &MissingFieldError{Field: "img"}
	}

	_, err := service.repository.Insert(ctx, Record{
		Title:       *input.Title,
		Price:       *input.Price,
		Description: *input.Description,
		Img:         *input.Img,
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

// Update pisa solo los campos presentes. Un body sin campos no modifica nada
// pero igual falla con ErrorNotFound si el id no existe.
func (service *Service) Update(ctx context.Context, id uint, input UpdateItemInput) error {
	_, err := service.repository.Update(ctx, id, input)
	return err
}

func (service *Service) Delete(ctx context.Context, id uint) error {
	return service.repository.Delete(ctx, id)
}
