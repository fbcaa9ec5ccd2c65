package gear

// Record es la fila persistida en la tabla gear_item.
// Price es un entero opaco (la unidad la decide el cliente).
type Record struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Price       int64  `gorm:"not null"`
	Description string `gorm:"not null"`
	Img         string `gorm:"not null"`
}

func (Record) TableName() string {
	return "gear_item"
}

// Item es lo que se expone por HTTP. No incluye el id.
type Item struct {
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

func toItem(record Record) Item {
	return Item{
		Title:       record.Title,
		Price:       record.Price,
		Description: record.Description,
		Img:         record.Img,
	}
}

// AddItemInput representa el payload de alta.
// Los punteros permiten distinguir "no vino" de "vino vacío".
type AddItemInput struct {
	Title       *string `json:"title"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}

// UpdateItemInput representa un update parcial: solo se aplican los campos no nil.
type UpdateItemInput struct {
	Title       *string `json:"title"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}

func (input UpdateItemInput) applyTo(record *Record) {
	if input.Title != nil {
		record.Title = *input.Title
	}
	if input.Price != nil {
		record.Price = *input.Price
	}
	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Img != nil {
		record.Img = *input.Img
	}
}
