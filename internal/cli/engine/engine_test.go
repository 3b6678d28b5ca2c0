package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"CartKeeper/internal/cli/model"
)

func strPtr(s string) *string { return &s }

func named(names ...string) []model.Item {
	items := make([]model.Item, 0, len(names))
	for i, n := range names {
		items = append(items, model.Item{
			ID:        n,
			Name:      n,
			CreatedAt: time.Date(2025, 1, 1, 0, i, 0, 0, time.UTC),
		})
	}
	return items
}

func namesOf(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestApply_SortByName_CaseInsensitive(t *testing.T) {
	items := named("banana", "Apple", "cherry")
	got := Apply(items, Filter{}, SortName, ViewPlanning)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, namesOf(got))
}

func TestApply_SortByName_Stable(t *testing.T) {
	// одинаковые имена сохраняют исходный порядок
	items := []model.Item{
		{ID: "1", Name: "Milk"},
		{ID: "2", Name: "Apples"},
		{ID: "3", Name: "Milk"},
	}
	got := Apply(items, Filter{}, SortName, ViewPlanning)
	assert.Equal(t, []string{"2", "1", "3"}, namesOfIDs(got))
}

func TestApply_SortByAisle_EmojiNumericTextMissing(t *testing.T) {
	mk := func(name string, aisle *string) model.Item {
		return model.Item{ID: name, Name: name, Aisle: aisle}
	}
	items := []model.Item{
		mk("d", nil),
		mk("c", strPtr("Bakery")),
		mk("b", strPtr("12")),
		mk("a", strPtr("🥦 Produce")),
	}
	got := Apply(items, Filter{}, SortAisle, ViewPlanning)
	// эмодзи, затем числовые, затем текстовые, отсутствующий aisle — последним
	assert.Equal(t, []string{"a", "b", "c", "d"}, namesOf(got))
}

func TestApply_SortByAisle_NumericComparesNumerically(t *testing.T) {
	mk := func(name, aisle string) model.Item {
		return model.Item{ID: name, Name: name, Aisle: &aisle}
	}
	items := []model.Item{mk("x", "12"), mk("y", "5"), mk("z", "100")}
	got := Apply(items, Filter{}, SortAisle, ViewPlanning)
	// 5 < 12 < 100, а не лексикографически "100" < "12" < "5"
	assert.Equal(t, []string{"y", "x", "z"}, namesOf(got))
}

func TestApply_SortByAisle_TiesBreakByName(t *testing.T) {
	aisle := "Dairy"
	items := []model.Item{
		{ID: "1", Name: "yogurt", Aisle: &aisle},
		{ID: "2", Name: "Butter", Aisle: &aisle},
		{ID: "3", Name: "cheese", Aisle: &aisle},
	}
	got := Apply(items, Filter{}, SortAisle, ViewPlanning)
	assert.Equal(t, []string{"Butter", "cheese", "yogurt"}, namesOf(got))
}

func TestApply_SortByDateAdded_NewestFirst(t *testing.T) {
	items := named("first", "second", "third") // created в порядке объявления
	got := Apply(items, Filter{}, SortDateAdded, ViewPlanning)
	assert.Equal(t, []string{"third", "second", "first"}, namesOf(got))
}

func TestApply_SortByStore_EmptySetSortsFirst(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "a", Stores: []string{"Target"}},
		{ID: "2", Name: "b"},
		{ID: "3", Name: "c", Stores: []string{"Costco", "BJ's"}},
	}
	got := Apply(items, Filter{}, SortStore, ViewPlanning)
	// пустое множество — пустая строка; затем "BJ's" < "Target"
	assert.Equal(t, []string{"b", "c", "a"}, namesOf(got))
}

func TestMatches_TagFilter_OrWithinSet(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "Milk", Tags: []string{"dairy"}},
		{ID: "2", Name: "Spinach", Tags: []string{"produce"}},
		{ID: "3", Name: "Eggs", Tags: []string{"dairy", "protein"}},
	}
	got := Apply(items, Filter{Tags: []string{"dairy"}}, SortDateAdded, ViewPlanning)
	ids := []string{got[0].ID, got[1].ID}
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"1", "3"}, ids)
}

func TestMatches_SearchAcrossFields(t *testing.T) {
	aisle := "Dairy"
	it := model.Item{
		Name:   "Greek Yogurt",
		Stores: []string{"Trader Joe's"},
		Aisle:  &aisle,
		Tags:   []string{"breakfast"},
	}
	assert.True(t, Matches(it, Filter{Search: "yogurt"}))    // имя
	assert.True(t, Matches(it, Filter{Search: "trader"}))    // магазин
	assert.True(t, Matches(it, Filter{Search: "DAIRY"}))     // aisle, без учёта регистра
	assert.True(t, Matches(it, Filter{Search: "breakfast"})) // тег
	assert.False(t, Matches(it, Filter{Search: "bacon"}))
}

func TestMatches_StatusFilter_ExplicitNone(t *testing.T) {
	pending := model.StatusPending
	withStatus := model.Item{Name: "Bread", Status: &pending}
	noStatus := model.Item{Name: "Flour"}

	assert.True(t, Matches(noStatus, Filter{Status: StatusNone}))
	assert.False(t, Matches(withStatus, Filter{Status: StatusNone}))
	assert.True(t, Matches(withStatus, Filter{Status: model.StatusPending}))
	assert.False(t, Matches(noStatus, Filter{Status: model.StatusPending}))
}

func TestMatches_DimensionsCombineWithAnd(t *testing.T) {
	it := model.Item{
		Name:   "Chicken Breast",
		Type:   "grocery",
		Stores: []string{"Costco"},
		Tags:   []string{"protein"},
	}
	assert.True(t, Matches(it, Filter{Store: "Costco", Type: "grocery", Tags: []string{"protein"}}))
	// один несовпавший предикат отклоняет элемент
	assert.False(t, Matches(it, Filter{Store: "Costco", Type: "supply"}))
	assert.False(t, Matches(it, Filter{Store: "Target", Type: "grocery"}))
}

func TestApply_ShoppingView_StatusPredicateAndRank(t *testing.T) {
	pending := model.StatusPending
	purchased := model.StatusPurchased
	skipped := model.StatusSkipped
	aisle5, aisle2 := "5", "2"

	items := []model.Item{
		{ID: "master", Name: "Flour"}, // без статуса — не в shopping
		{ID: "bought", Name: "Bread", Status: &purchased, Aisle: &aisle2},
		{ID: "todo", Name: "Milk", Status: &pending, Aisle: &aisle5},
		{ID: "later", Name: "Eggs", Status: &skipped},
	}
	got := Apply(items, Filter{}, SortAisle, ViewShopping)
	// pending раньше purchased, skipped в конце; ранг статуса первичен
	// относительно aisle (5 > 2, но pending впереди)
	assert.Equal(t, []string{"todo", "bought", "later"}, namesOfIDs(got))
}

func namesOfIDs(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestApply_PlanningViewShowsEverything(t *testing.T) {
	purchased := model.StatusPurchased
	items := []model.Item{
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b", Status: &purchased},
	}
	got := Apply(items, Filter{}, SortDateAdded, ViewPlanning)
	assert.Len(t, got, 2)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := named("b", "a", "c")
	_ = Apply(items, Filter{}, SortName, ViewPlanning)
	assert.Equal(t, []string{"b", "a", "c"}, namesOf(items))
}
