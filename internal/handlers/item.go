package handlers

import (
	"CartKeeper/internal/config"
	"CartKeeper/internal/model"
	"CartKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD-операции над элементами списка.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// createItemRequest — тело POST /api/items.
type createItemRequest struct {
	Name     string         `json:"name"`
	Quantity *float64       `json:"quantity"`
	Unit     string         `json:"unit"`
	Status   *model.Status  `json:"status"`
	Type     model.ItemType `json:"type"`
	Stores   []string       `json:"stores"`
	Aisle    *string        `json:"aisle"`
	Tags     []string       `json:"tags"`
}

// List отдаёт все элементы, новые первыми.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create создаёт новый элемент.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.ItemService.Create(r.Context(), service.CreateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Status:   req.Status,
		Type:     req.Type,
		Stores:   req.Stores,
		Aisle:    req.Aisle,
		Tags:     req.Tags,
	})
	if err != nil {
		h.writeServiceError(w, "Create", err, "failed to create item")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": it})
}

// Update применяет частичное обновление. Ключ, отсутствующий в теле,
// не трогается; ключ со значением null — явная очистка.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	patch, err := decodePatch(raw)
	if err != nil {
		h.Logger.Warnw("Update: invalid field value", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.ItemService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeServiceError(w, "Update", err, "failed to update item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": it})
}

// Delete удаляет элемент. Отсутствующий id не считается ошибкой.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// decodePatch разбирает частичное тело PATCH в сервисный ItemPatch,
// различая отсутствующий ключ и явный null.
func decodePatch(raw map[string]json.RawMessage) (service.ItemPatch, error) {
	var patch service.ItemPatch
	for key, val := range raw {
		isNull := string(val) == "null"
		switch key {
		case "name":
			if err := json.Unmarshal(val, &patch.Name); err != nil {
				return patch, err
			}
		case "quantity":
			if err := json.Unmarshal(val, &patch.Quantity); err != nil {
				return patch, err
			}
		case "unit":
			if err := json.Unmarshal(val, &patch.Unit); err != nil {
				return patch, err
			}
		case "status":
			patch.StatusSet = true
			if !isNull {
				if err := json.Unmarshal(val, &patch.Status); err != nil {
					return patch, err
				}
			}
		case "type":
			if err := json.Unmarshal(val, &patch.Type); err != nil {
				return patch, err
			}
		case "stores":
			patch.StoresSet = true
			if !isNull {
				if err := json.Unmarshal(val, &patch.Stores); err != nil {
					return patch, err
				}
			}
		case "aisle":
			patch.AisleSet = true
			if !isNull {
				if err := json.Unmarshal(val, &patch.Aisle); err != nil {
					return patch, err
				}
			}
		case "tags":
			patch.TagsSet = true
			if !isNull {
				if err := json.Unmarshal(val, &patch.Tags); err != nil {
					return patch, err
				}
			}
		}
		// неизвестные ключи игнорируются
	}
	return patch, nil
}

// writeServiceError отображает типовые ошибки сервиса в коды ответа.
func (h *ItemHandler) writeServiceError(w http.ResponseWriter, op string, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.Logger.Warnw(op+": validation error", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		h.Logger.Warnw(op+": invalid transition", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
