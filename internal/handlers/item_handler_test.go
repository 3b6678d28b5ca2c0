package handlers_test

import (
	"CartKeeper/internal/config"
	"CartKeeper/internal/handlers"
	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"
	"CartKeeper/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Minimal mocks
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

func newItemTestRouter(t *testing.T) (http.Handler, *mockItemRepo) {
	t.Helper()
	cfg := &config.Config{BaseURL: "localhost:8081"}
	logger := zap.NewNop().Sugar()
	ir := &mockItemRepo{}

	itemSvc := service.NewItemService(ir, logger)
	h := handlers.NewHandler(itemSvc, logger, cfg)
	return h.Router, ir
}

func TestItems_List_OK(t *testing.T) {
	router, ir := newItemTestRouter(t)
	now := time.Now().UTC()
	ir.On("ListAll", mock.Anything).Return([]model.Item{
		{ID: "i1", Name: "Milk", Quantity: 1, Unit: "gallon", Type: model.TypeGrocery,
			Stores: []string{"Trader Joe's"}, Tags: []string{"dairy"}, CreatedAt: now, UpdatedAt: now},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Items []map[string]any `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	if assert.Len(t, body.Items, 1) {
		assert.Equal(t, "Milk", body.Items[0]["name"])
		assert.Nil(t, body.Items[0]["status"])
		// сериализация полей времени — snake_case
		assert.Contains(t, body.Items[0], "created_at")
		assert.Contains(t, body.Items[0], "updated_at")
	}
}

func TestItems_List_StoreFailure(t *testing.T) {
	router, ir := newItemTestRouter(t)
	ir.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
}

func TestItems_Create_Created(t *testing.T) {
	router, ir := newItemTestRouter(t)
	ir.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"name":"Bananas","quantity":3,"unit":"bunch","status":null,"type":"grocery","stores":["Costco"],"aisle":"Produce","tags":["Fruit"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp struct {
		Item model.Item `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Item.ID)
	assert.Equal(t, "Bananas", resp.Item.Name)
	assert.Equal(t, []string{"fruit"}, resp.Item.Tags) // нормализация тегов
}

func TestItems_Create_EmptyName(t *testing.T) {
	router, _ := newItemTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestItems_Create_InvalidJSON(t *testing.T) {
	router, _ := newItemTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestItems_Patch_PartialUpdate(t *testing.T) {
	router, ir := newItemTestRouter(t)
	aisle := "Dairy"
	pending := model.StatusPending
	cur := &model.Item{ID: "i1", Name: "Milk", Quantity: 1, Status: &pending, Aisle: &aisle,
		Type: model.TypeGrocery}
	ir.On("GetByID", mock.Anything, "i1").Return(cur, nil)
	ir.On("Save", mock.Anything, mock.Anything).Return(nil)

	// aisle:null — явная очистка; name отсутствует — не трогается
	body := `{"quantity":2,"aisle":null}`
	req := httptest.NewRequest(http.MethodPatch, "/api/items/i1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Item model.Item `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Milk", resp.Item.Name)
	assert.Equal(t, float64(2), resp.Item.Quantity)
	assert.Nil(t, resp.Item.Aisle)
}

func TestItems_Patch_InvalidTransition(t *testing.T) {
	router, ir := newItemTestRouter(t)
	cur := &model.Item{ID: "i1", Name: "Milk", Quantity: 1, Type: model.TypeGrocery}
	ir.On("GetByID", mock.Anything, "i1").Return(cur, nil)

	// null -> purchased вне жизненного цикла
	req := httptest.NewRequest(http.MethodPatch, "/api/items/i1", strings.NewReader(`{"status":"purchased"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid status transition")
}

func TestItems_Patch_MissingIDIsStoreFailure(t *testing.T) {
	router, ir := newItemTestRouter(t)
	ir.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/api/items/missing", strings.NewReader(`{"quantity":1}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// отдельного 4xx для отсутствующего id нет — общий ответ хранилища
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestItems_Delete_OK(t *testing.T) {
	router, ir := newItemTestRouter(t)
	ir.On("Delete", mock.Anything, "i1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/items/i1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestItems_Delete_StoreFailure(t *testing.T) {
	router, ir := newItemTestRouter(t)
	ir.On("Delete", mock.Anything, "i1").Return(errors.New("db down"))

	req := httptest.NewRequest(http.MethodDelete, "/api/items/i1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
}
