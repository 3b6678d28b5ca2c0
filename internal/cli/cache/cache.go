package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/model"
)

// ItemAPI — контракт REST-клиента, необходимый кэшу.
type ItemAPI interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	CreateItem(ctx context.Context, in api.CreateItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, id string, patch model.Patch) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// Cache держит коллекцию элементов в памяти после однократной гидрации
// и применяет мутации оптимистично: локальное состояние меняется сразу,
// при ошибке сервера элемент откатывается к последней подтверждённой копии,
// а ошибка записывается по id элемента.
type Cache struct {
	mu  sync.Mutex
	api ItemAPI

	items     []model.Item
	confirmed map[string]model.Item // последняя копия, подтверждённая сервером
	itemErrs  map[string]string
	lastErr   string
}

// New создаёт пустой кэш поверх REST-клиента.
func New(a ItemAPI) *Cache {
	return &Cache{
		api:       a,
		confirmed: make(map[string]model.Item),
		itemErrs:  make(map[string]string),
	}
}

// Load выполняет начальную гидрацию: одна выборка всей коллекции.
func (c *Cache) Load(ctx context.Context) error {
	items, err := c.api.ListItems(ctx)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return fmt.Errorf("load items: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.confirmed = make(map[string]model.Item, len(items))
	for _, it := range items {
		c.confirmed[it.ID] = it
	}
	return nil
}

// Items возвращает копию коллекции.
func (c *Cache) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get возвращает элемент по id.
func (c *Cache) Get(id string) (model.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx], true
	}
	return model.Item{}, false
}

// Add создаёт элемент на сервере и добавляет ответ в начало коллекции.
// При ошибке локальное состояние не меняется.
func (c *Cache) Add(ctx context.Context, in api.CreateItemInput) (*model.Item, error) {
	it, err := c.api.CreateItem(ctx, in)
	if err != nil {
		c.setLastErr(err)
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// сервер — источник истины для id и меток времени
	next := make([]model.Item, 0, len(c.items)+1)
	next = append(next, *it)
	next = append(next, c.items...)
	c.items = next
	c.confirmed[it.ID] = *it
	return it, nil
}

// Update применяет patch локально (оптимистично), затем отправляет PATCH.
// При ошибке элемент откатывается к последней подтверждённой копии.
func (c *Cache) Update(ctx context.Context, id string, patch model.Patch) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("item %s not found", id)
	}
	prev, hasPrev := c.confirmed[id]
	optimistic := c.items[idx]
	applyPatch(&optimistic, patch)
	optimistic.UpdatedAt = time.Now().UTC()
	c.replaceLocked(idx, optimistic)
	c.mu.Unlock()

	it, err := c.api.UpdateItem(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if j := c.indexOf(id); j >= 0 && hasPrev {
			c.replaceLocked(j, prev)
		}
		c.itemErrs[id] = err.Error()
		c.lastErr = err.Error()
		return err
	}
	delete(c.itemErrs, id)
	c.confirmed[id] = *it
	if j := c.indexOf(id); j >= 0 {
		c.replaceLocked(j, *it)
	}
	return nil
}

// Delete удаляет элемент локально, затем отправляет DELETE.
// При ошибке элемент восстанавливается на прежней позиции.
func (c *Cache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("item %s not found", id)
	}
	removed := c.items[idx]
	next := make([]model.Item, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.items = next
	c.mu.Unlock()

	err := c.api.DeleteItem(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// восстановление на прежней позиции
		pos := idx
		if pos > len(c.items) {
			pos = len(c.items)
		}
		restored := make([]model.Item, 0, len(c.items)+1)
		restored = append(restored, c.items[:pos]...)
		restored = append(restored, removed)
		restored = append(restored, c.items[pos:]...)
		c.items = restored
		c.itemErrs[id] = err.Error()
		c.lastErr = err.Error()
		return err
	}
	delete(c.confirmed, id)
	delete(c.itemErrs, id)
	return nil
}

// BulkUpdate отправляет по одному независимому PATCH на элемент, параллельно
// и без транзакционной группировки: частичный сбой оставляет часть элементов
// изменённой.
func (c *Cache) BulkUpdate(ctx context.Context, ids []string, patch model.Patch) error {
	failed := c.runParallel(ids, func(id string) error {
		return c.Update(ctx, id, patch)
	})
	if failed > 0 {
		err := fmt.Errorf("bulk update: %d of %d requests failed", failed, len(ids))
		c.setLastErr(err)
		return err
	}
	return nil
}

// BulkDelete отправляет по одному независимому DELETE на элемент, параллельно.
func (c *Cache) BulkDelete(ctx context.Context, ids []string) error {
	failed := c.runParallel(ids, func(id string) error {
		return c.Delete(ctx, id)
	})
	if failed > 0 {
		err := fmt.Errorf("bulk delete: %d of %d requests failed", failed, len(ids))
		c.setLastErr(err)
		return err
	}
	return nil
}

// LastError возвращает последнее записанное сообщение об ошибке.
func (c *Cache) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ItemError возвращает ошибку, записанную для конкретного элемента.
func (c *Cache) ItemError(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, ok := c.itemErrs[id]
	return msg, ok
}

func (c *Cache) runParallel(ids []string, op func(id string) error) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := op(id); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	return failed
}

func (c *Cache) setLastErr(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
}

// indexOf ищет позицию элемента; вызывается под мьютексом.
func (c *Cache) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceLocked заменяет элемент через свежий производный срез;
// вызывается под мьютексом.
func (c *Cache) replaceLocked(idx int, it model.Item) {
	next := make([]model.Item, len(c.items))
	copy(next, c.items)
	next[idx] = it
	c.items = next
}

// applyPatch накладывает wire-ключи patch на локальную копию элемента.
func applyPatch(it *model.Item, patch model.Patch) {
	for key, val := range patch {
		switch key {
		case "name":
			if s, ok := val.(string); ok {
				it.Name = s
			}
		case "quantity":
			if q, ok := toFloat(val); ok {
				it.Quantity = q
			}
		case "unit":
			if s, ok := val.(string); ok {
				it.Unit = s
			}
		case "status":
			if val == nil {
				it.Status = nil
			} else if s, ok := val.(string); ok {
				status := s
				it.Status = &status
			}
		case "type":
			if s, ok := val.(string); ok {
				it.Type = s
			}
		case "stores":
			if ss, ok := val.([]string); ok {
				it.Stores = ss
			} else if val == nil {
				it.Stores = nil
			}
		case "aisle":
			if val == nil {
				it.Aisle = nil
			} else if s, ok := val.(string); ok {
				aisle := s
				it.Aisle = &aisle
			}
		case "tags":
			if ss, ok := val.([]string); ok {
				it.Tags = ss
			} else if val == nil {
				it.Tags = nil
			}
		}
	}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
