package cart

// Record es la fila persistida en la tabla cart.
type Record struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null"`
	Price int64  `gorm:"not null"`
	Img   string `gorm:"not null"`
}

func (Record) TableName() string {
	return "cart"
}

// Item es la representación pública de un cart item.
type Item struct {
	Title string `json:"title"`
	Price int64  `json:"price"`
	Img   string `json:"img"`
}

func toItem(record Record) Item {
	return Item{Title: record.Title, Price: record.Price, Img: record.Img}
}

// AddItemInput es el payload de alta; nil significa "la clave no vino".
type AddItemInput struct {
	Title *string `json:"title"`
	Price *int64  `json:"price"`
	Img   *string `json:"img"`
}
