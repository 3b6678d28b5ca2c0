package model

import "time"

// Статусы жизненного цикла. Отсутствие статуса (nil) означает, что элемент
// находится только в мастер-списке.
const (
	StatusPending   = "pending"
	StatusPurchased = "purchased"
	StatusSkipped   = "skipped"
)

// Item — клиентская модель элемента списка; зеркало ответа сервера.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Status    *string   `json:"status"`
	Type      string    `json:"type"`
	Stores    []string  `json:"stores"`
	Aisle     *string   `json:"aisle"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusOrNone возвращает статус или "none" для отображения.
func (it Item) StatusOrNone() string {
	if it.Status == nil {
		return "none"
	}
	return *it.Status
}

// HasStatus сообщает, совпадает ли статус элемента с указанным.
func (it Item) HasStatus(status string) bool {
	return it.Status != nil && *it.Status == status
}

// HasStore сообщает, входит ли магазин в набор магазинов элемента.
func (it Item) HasStore(store string) bool {
	for _, s := range it.Stores {
		if s == store {
			return true
		}
	}
	return false
}

// HasTag сообщает, есть ли у элемента указанный тег.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AisleOrEmpty возвращает aisle или пустую строку.
func (it Item) AisleOrEmpty() string {
	if it.Aisle == nil {
		return ""
	}
	return *it.Aisle
}

// Patch — частичное обновление полей элемента; ключи соответствуют wire-полям
// PATCH /api/items/{id}. Значение nil означает явную очистку поля.
type Patch map[string]any
