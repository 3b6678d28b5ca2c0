package repo

import (
	"CartKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к items для слоя сервиса.
type ItemRepository interface {
	// ListAll возвращает все элементы, новые первыми (created_at DESC).
	ListAll(ctx context.Context) ([]model.Item, error)

	// GetByID возвращает элемент по id. Если записи нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Create вставляет новую запись.
	Create(ctx context.Context, item *model.Item) error

	// Save записывает все поля элемента; updated_at обновляется автоматически.
	Save(ctx context.Context, item *model.Item) error

	// Delete удаляет запись по id. Отсутствие записи ошибкой не считается.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item поверх GORM.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	tx := r.db.WithContext(ctx).First(&it, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) Save(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id).Error
}
