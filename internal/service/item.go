package service

import (
	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Типовые ошибки сервиса. Хендлеры отображают их в 400/422.
var (
	// ErrValidation — входные данные не прошли проверку полей.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition — запрошенный переход статуса вне жизненного цикла.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ItemService инкапсулирует бизнес-логику работы с Item:
// нормализацию полей и проверку переходов статуса перед записью.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

// NewItemService конструктор сервиса item.
func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// CreateInput — поля создания элемента. Quantity == nil означает значение по умолчанию (1).
type CreateInput struct {
	Name     string
	Quantity *float64
	Unit     string
	Status   *model.Status
	Type     model.ItemType
	Stores   []string
	Aisle    *string
	Tags     []string
}

// ItemPatch — частичное обновление. Указатель nil при взведённом Set-флаге
// означает явную очистку поля (ключ пришёл со значением null).
type ItemPatch struct {
	Name     *string
	Quantity *float64
	Unit     *string

	Status    *model.Status
	StatusSet bool

	Type *model.ItemType

	Stores    []string
	StoresSet bool

	Aisle    *string
	AisleSet bool

	Tags    []string
	TagsSet bool
}

// List возвращает все элементы, новые первыми.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListAll(ctx)
}

// Get возвращает элемент по id.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create нормализует поля и вставляет новый элемент; id и метки времени
// назначаются на сервере.
func (s *ItemService) Create(ctx context.Context, in CreateInput) (*model.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	qty := 1.0
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
	}
	typ := in.Type
	if typ == "" {
		typ = model.TypeGrocery
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrValidation, typ)
	}

	it := &model.Item{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: qty,
		Unit:     strings.TrimSpace(in.Unit),
		Status:   in.Status,
		Type:     typ,
		Stores:   dedupe(in.Stores, false),
		Aisle:    trimAisle(in.Aisle),
		Tags:     dedupe(in.Tags, true),
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	s.logger.Infow("item created", "id", it.ID, "name", it.Name)
	return it, nil
}

// Update применяет только присутствующие в patch поля. Перед записью
// проверяется переход статуса; сброс статуса принудительно обнуляет
// количество, если оно не задано явно.
func (s *ItemService) Update(ctx context.Context, id string, patch ItemPatch) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.StatusSet {
		if patch.Status != nil && !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
		}
		if !model.CanTransition(it.Status, patch.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition,
				statusLabel(it.Status), statusLabel(patch.Status))
		}
		it.Status = patch.Status
		// уход в мастер-список: количество обнуляется, если не пришло в patch
		if patch.Status == nil && patch.Quantity == nil {
			it.Quantity = 0
		}
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrValidation)
		}
		it.Name = name
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
		}
		it.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		it.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown type %q", ErrValidation, *patch.Type)
		}
		it.Type = *patch.Type
	}
	if patch.StoresSet {
		it.Stores = dedupe(patch.Stores, false)
	}
	if patch.AisleSet {
		it.Aisle = trimAisle(patch.Aisle)
	}
	if patch.TagsSet {
		it.Tags = dedupe(patch.Tags, true)
	}

	if err := s.repo.Save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete удаляет элемент. Отсутствие записи ошибкой не считается.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// dedupe убирает пустые строки и дубликаты, сохраняя порядок первого вхождения.
// При lower=true значения приводятся к нижнему регистру (теги).
func dedupe(values []string, lower bool) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// trimAisle нормализует aisle: пустая строка эквивалентна отсутствию значения.
func trimAisle(aisle *string) *string {
	if aisle == nil {
		return nil
	}
	v := strings.TrimSpace(*aisle)
	if v == "" {
		return nil
	}
	return &v
}

func statusLabel(s *model.Status) string {
	if s == nil {
		return "none"
	}
	return string(*s)
}
