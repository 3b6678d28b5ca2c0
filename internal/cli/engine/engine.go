// Package engine — чистые функции отбора, сортировки и жизненного цикла
// элементов. Движок не имеет побочных эффектов: каждая операция строит
// новый срез из переданной коллекции.
package engine

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"CartKeeper/internal/cli/model"
)

// View — представление, определяющее предикат видимости по статусу.
type View int

const (
	// ViewPlanning показывает все элементы.
	ViewPlanning View = iota
	// ViewShopping показывает только pending/purchased/skipped.
	ViewShopping
	// ViewReview ничего не отбирает; используется только для сводки.
	ViewReview
)

// SortKey — выбираемый ключ сортировки.
type SortKey string

const (
	SortName      SortKey = "name"
	SortType      SortKey = "type"
	SortStore     SortKey = "store"
	SortAisle     SortKey = "aisle"
	SortDateAdded SortKey = "dateAdded" // по умолчанию: новые первыми
)

// StatusNone — значение фильтра статуса, соответствующее отсутствию статуса.
const StatusNone = "none"

// Filter — активные измерения отбора. Пустое значение измерения означает
// «не фильтровать»; активные измерения объединяются через AND.
type Filter struct {
	Search string   // подстрока без учёта регистра: имя, магазины, aisle, теги
	Tags   []string // OR внутри набора
	Store  string   // точное членство в множестве магазинов
	Type   string   // точное равенство
	Status string   // точное равенство; StatusNone соответствует nil
}

// локаль-зависимый компаратор; регистр учитывается третичным уровнем,
// поэтому "Apple" < "banana"
var collator = collate.New(language.English)

// Apply отбирает и сортирует коллекцию для указанного представления.
// Исходный срез не изменяется.
func Apply(items []model.Item, f Filter, key SortKey, view View) []model.Item {
	filtered := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !visibleIn(it, view) {
			continue
		}
		if !Matches(it, f) {
			continue
		}
		filtered = append(filtered, it)
	}
	sortItems(filtered, key, view)
	return filtered
}

// Matches проверяет элемент против всех активных измерений фильтра.
func Matches(it model.Item, f Filter) bool {
	if q := strings.TrimSpace(f.Search); q != "" && !matchesSearch(it, strings.ToLower(q)) {
		return false
	}
	if len(f.Tags) > 0 && !matchesAnyTag(it, f.Tags) {
		return false
	}
	if f.Store != "" && !it.HasStore(f.Store) {
		return false
	}
	if f.Type != "" && it.Type != f.Type {
		return false
	}
	if f.Status != "" {
		if f.Status == StatusNone {
			if it.Status != nil {
				return false
			}
		} else if !it.HasStatus(f.Status) {
			return false
		}
	}
	return true
}

func matchesSearch(it model.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	for _, store := range it.Stores {
		if strings.Contains(strings.ToLower(store), q) {
			return true
		}
	}
	if it.Aisle != nil && strings.Contains(strings.ToLower(*it.Aisle), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesAnyTag(it model.Item, tags []string) bool {
	for _, tag := range tags {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}

func visibleIn(it model.Item, view View) bool {
	if view != ViewShopping {
		return true
	}
	return it.Status != nil
}

// sortRecord — элемент с заранее вычисленными ключами сортировки:
// компараторы не пересчитывают ключи на каждое сравнение.
type sortRecord struct {
	item       model.Item
	aisle      aisleKey
	nameFolded string
	statusRank int
}

// sortItems сортирует срез на месте, стабильно. В представлении shopping
// первичным ключом становится ранг статуса (pending раньше purchased,
// skipped в конце), выбранный ключ — вторичным.
func sortItems(items []model.Item, key SortKey, view View) {
	records := make([]sortRecord, len(items))
	for i, it := range items {
		records[i] = sortRecord{
			item:       it,
			aisle:      aisleKeyOf(it.Aisle),
			nameFolded: strings.ToLower(it.Name),
			statusRank: statusRank(it.Status),
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if view == ViewShopping && a.statusRank != b.statusRank {
			return a.statusRank < b.statusRank
		}
		return lessByKey(a, b, key)
	})
	for i := range records {
		items[i] = records[i].item
	}
}

func lessByKey(a, b sortRecord, key SortKey) bool {
	switch key {
	case SortName:
		return collator.CompareString(a.item.Name, b.item.Name) < 0
	case SortType:
		return collator.CompareString(a.item.Type, b.item.Type) < 0
	case SortStore:
		return collator.CompareString(firstStore(a.item), firstStore(b.item)) < 0
	case SortAisle:
		if cmp := a.aisle.compare(b.aisle); cmp != 0 {
			return cmp < 0
		}
		// внутри одного aisle — по имени без учёта регистра
		return a.nameFolded < b.nameFolded
	default: // SortDateAdded
		return a.item.CreatedAt.After(b.item.CreatedAt)
	}
}

// firstStore — ключ сортировки по магазину: лексикографически наименьший
// магазин элемента, пустая строка для пустого множества.
func firstStore(it model.Item) string {
	first := ""
	for _, s := range it.Stores {
		if first == "" || s < first {
			first = s
		}
	}
	return first
}

func statusRank(status *string) int {
	if status == nil {
		return 3
	}
	switch *status {
	case model.StatusPending:
		return 0
	case model.StatusPurchased:
		return 1
	case model.StatusSkipped:
		return 2
	}
	return 3
}

// Классы aisle в порядке следования: эмодзи-метки, числовые, текстовые,
// отсутствующее значение — всегда последним.
type aisleClass int

const (
	aisleEmoji aisleClass = iota
	aisleNumeric
	aisleText
	aisleMissing
)

// aisleKey — кортеж полного порядка для разнородных значений aisle;
// вычисляется один раз на элемент.
type aisleKey struct {
	class aisleClass
	num   float64
	text  string // в нижнем регистре
}

func aisleKeyOf(aisle *string) aisleKey {
	if aisle == nil {
		return aisleKey{class: aisleMissing}
	}
	v := strings.TrimSpace(*aisle)
	if v == "" {
		return aisleKey{class: aisleMissing}
	}
	if leadingEmoji(v) {
		return aisleKey{class: aisleEmoji, text: strings.ToLower(v)}
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return aisleKey{class: aisleNumeric, num: n}
	}
	return aisleKey{class: aisleText, text: strings.ToLower(v)}
}

func (a aisleKey) compare(b aisleKey) int {
	if a.class != b.class {
		if a.class < b.class {
			return -1
		}
		return 1
	}
	switch a.class {
	case aisleNumeric:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case aisleMissing:
		return 0
	default:
		return strings.Compare(a.text, b.text)
	}
}

// leadingEmoji: значение начинается с символьной руны вне ASCII
// (пиктограммы вроде "🥦 Produce").
func leadingEmoji(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r > unicode.MaxASCII && (unicode.IsSymbol(r) || r >= 0x1F300)
}
