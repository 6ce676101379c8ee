package model

// Location is a distribution area served by one or more sellers
type Location struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `gorm:"type:text" json:"address"`

	Sellers []Seller `json:"sellers,omitempty"`
}
