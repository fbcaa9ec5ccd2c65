package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository accede a la tabla cart.
type Repository struct {
	database *gorm.DB
}

func NewRepository(database *gorm.DB) *Repository {
	return &Repository{database: database}
}

func (repository *Repository) Insert(ctx context.Context, record Record) (Record, error) {
	record.ID = 0
	if err := repository.database.WithContext(ctx).Create(&record).Error; err != nil {
		return Record{}, err
	}
	return record, nil
}

func (repository *Repository) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := repository.database.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repository *Repository) GetByID(ctx context.Context, id uint) (Record, error) {
	var record Record
	if err := repository.database.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, ErrorNotFound
		}
		return Record{}, err
	}
	return record, nil
}

func (repository *Repository) Delete(ctx context.Context, id uint) error {
	result := repository.database.WithContext(ctx).Delete(&Record{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrorNotFound
	}
	return nil
}

// DeleteAll vacía la tabla en una única transacción y devuelve cuántas filas borró.
// gorm bloquea deletes sin WHERE salvo que se habilite AllowGlobalUpdate.
func (repository *Repository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := repository.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
