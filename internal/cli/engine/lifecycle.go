package engine

import (
	"fmt"

	"CartKeeper/internal/cli/model"
)

// Stats — сводка по статусам для представления review.
type Stats struct {
	Total     int
	None      int
	Pending   int
	Purchased int
	Skipped   int
}

// Summarize подсчитывает элементы по статусам; ничего не отбирает.
func Summarize(items []model.Item) Stats {
	st := Stats{Total: len(items)}
	for _, it := range items {
		switch {
		case it.Status == nil:
			st.None++
		case *it.Status == model.StatusPending:
			st.Pending++
		case *it.Status == model.StatusPurchased:
			st.Purchased++
		case *it.Status == model.StatusSkipped:
			st.Skipped++
		}
	}
	return st
}

// IncrementQuantity — патч инкремента количества в планировании:
// элемент попадает в активный список (status=pending).
func IncrementQuantity(it model.Item) model.Patch {
	return model.Patch{
		"quantity": it.Quantity + 1,
		"status":   model.StatusPending,
	}
}

// DecrementQuantity — патч декремента количества. Декремент до нуля
// снимает элемент с активного списка: status=null в паре с quantity=0.
func DecrementQuantity(it model.Item) model.Patch {
	if it.Quantity <= 1 {
		return ClearPatch()
	}
	return model.Patch{"quantity": it.Quantity - 1}
}

// TogglePurchased — переключатель покупки в shopping: pending ⇄ purchased.
func TogglePurchased(it model.Item) (model.Patch, error) {
	switch {
	case it.HasStatus(model.StatusPending):
		return model.Patch{"status": model.StatusPurchased}, nil
	case it.HasStatus(model.StatusPurchased):
		return model.Patch{"status": model.StatusPending}, nil
	}
	return nil, fmt.Errorf("item %q is not on the shopping list (status: %s)", it.Name, it.StatusOrNone())
}

// ToggleSkipped — переключатель пропуска: pending/purchased → skipped,
// skipped → pending.
func ToggleSkipped(it model.Item) (model.Patch, error) {
	switch {
	case it.HasStatus(model.StatusPending), it.HasStatus(model.StatusPurchased):
		return model.Patch{"status": model.StatusSkipped}, nil
	case it.HasStatus(model.StatusSkipped):
		return model.Patch{"status": model.StatusPending}, nil
	}
	return nil, fmt.Errorf("item %q is not on the shopping list (status: %s)", it.Name, it.StatusOrNone())
}

// ClearPatch — сброс в мастер-список: status=null в паре с quantity=0.
func ClearPatch() model.Patch {
	return model.Patch{"status": nil, "quantity": 0.0}
}
