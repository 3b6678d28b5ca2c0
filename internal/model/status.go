package model

// Status — стадия жизненного цикла элемента относительно текущего похода в магазин.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPurchased Status = "purchased"
	StatusSkipped   Status = "skipped"
)

// Valid сообщает, является ли значение одним из известных статусов.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPurchased, StatusSkipped:
		return true
	}
	return false
}

// ItemType — категория элемента; используется только для фильтрации.
type ItemType string

const (
	TypeGrocery  ItemType = "grocery"
	TypeSupply   ItemType = "supply"
	TypeClothing ItemType = "clothing"
	TypeOther    ItemType = "other"
)

// Valid сообщает, является ли значение одной из известных категорий.
func (t ItemType) Valid() bool {
	switch t {
	case TypeGrocery, TypeSupply, TypeClothing, TypeOther:
		return true
	}
	return false
}

// CanTransition проверяет переход статуса from → to по документированному
// жизненному циклу. nil означает отсутствие статуса.
//
// Допустимые переходы: тот же статус; сброс в nil из любого состояния;
// nil → pending; pending ⇄ purchased; pending/purchased → skipped;
// skipped → pending.
func CanTransition(from, to *Status) bool {
	if to == nil {
		// Сброс (декремент до нуля, complete purchasing, ручной reset).
		return true
	}
	if from != nil && *from == *to {
		return true
	}
	switch *to {
	case StatusPending:
		return from == nil || *from == StatusPurchased || *from == StatusSkipped
	case StatusPurchased:
		return from != nil && *from == StatusPending
	case StatusSkipped:
		return from != nil && (*from == StatusPending || *from == StatusPurchased)
	}
	return false
}
