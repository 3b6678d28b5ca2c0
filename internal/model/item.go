package model

import "time"

// Item — серверная модель элемента списка покупок.
// Stores и Tags хранятся в колонках как JSON-массивы (serializer:json),
// порядок значений сохраняется.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `gorm:"not null;default:0" json:"quantity"`
	Unit     string  `json:"unit"`

	// Status == nil означает «не в активном списке» (только мастер-список).
	Status *Status  `gorm:"type:text" json:"status"`
	Type   ItemType `gorm:"not null;default:grocery" json:"type"`

	Stores []string `gorm:"serializer:json" json:"stores"`
	Aisle  *string  `json:"aisle"`
	Tags   []string `gorm:"serializer:json" json:"tags"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
