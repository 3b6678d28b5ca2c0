package commands

import (
	"fmt"
	"strings"

	"CartKeeper/internal/cli/cache"
	"CartKeeper/internal/cli/model"
)

// splitCSV разбирает значение флага вида "a,b,c" в срез без пустых элементов.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// resolveItem находит элемент по точному id либо по имени без учёта регистра.
// Неоднозначное имя — ошибка: пользователь должен указать id.
func resolveItem(c *cache.Cache, arg string) (model.Item, error) {
	if it, ok := c.Get(arg); ok {
		return it, nil
	}
	var found []model.Item
	needle := strings.ToLower(arg)
	for _, it := range c.Items() {
		if strings.ToLower(it.Name) == needle {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return model.Item{}, fmt.Errorf("item %q not found", arg)
	}
	return model.Item{}, fmt.Errorf("name %q is ambiguous (%d items), use id", arg, len(found))
}

// resolveIDs превращает аргументы (id или имена) в срез id для bulk-операций.
func resolveIDs(c *cache.Cache, args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, a := range args {
		it, err := resolveItem(c, a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// printItems выводит элементы по одному на строку.
func printItems(items []model.Item) {
	for _, it := range items {
		printItem(it)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}

func printItem(it model.Item) {
	line := fmt.Sprintf("- %s  %s", it.ID, it.Name)
	if it.Quantity > 0 {
		line += fmt.Sprintf("  x%s", trimFloat(it.Quantity))
		if it.Unit != "" {
			line += " " + it.Unit
		}
	}
	line += fmt.Sprintf("  [%s]", it.StatusOrNone())
	if it.Aisle != nil {
		line += fmt.Sprintf("  aisle=%s", *it.Aisle)
	}
	if len(it.Stores) > 0 {
		line += fmt.Sprintf("  stores=%s", strings.Join(it.Stores, ","))
	}
	if len(it.Tags) > 0 {
		line += fmt.Sprintf("  tags=%s", strings.Join(it.Tags, ","))
	}
	fmt.Fprintln(Out, line)
}

// trimFloat печатает количество без хвостовых нулей: 2 вместо 2.000000.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
