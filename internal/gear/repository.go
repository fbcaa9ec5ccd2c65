package gear

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository accede a la tabla gear_item.
type Repository struct {
	database *gorm.DB
}

// NewRepository crea un repositorio de gear items.
func NewRepository(database *gorm.DB) *Repository {
	return &Repository{database: database}
}

// Insert crea la fila y devuelve el registro con el id asignado por la DB.
func (repository *Repository) Insert(ctx context.Context, record Record) (Record, error) {
	record.ID = 0
	if err := repository.database.WithContext(ctx).Create(&record).Error; err != nil {
		return Record{}, err
	}
	return record, nil
}

// List devuelve todos los registros en orden de inserción.
func (repository *Repository) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := repository.database.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repository *Repository) GetByID(ctx context.Context, id uint) (Record, error) {
	var record Record
	err := repository.database.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, ErrorNotFound
		}
		return Record{}, err
	}
	return record, nil
}

// Update aplica los campos presentes dentro de una transacción (lectura + escritura).
func (repository *Repository) Update(ctx context.Context, id uint, input UpdateItemInput) (Record, error) {
	var record Record
	err := repository.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrorNotFound
			}
			return err
		}

		input.applyTo(&record)
		return tx.Save(&record).Error
	})
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// Delete borra por id. Si no afectó filas, el item no existía.
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
