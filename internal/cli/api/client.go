package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"CartKeeper/internal/cli/model"
)

// Client — REST-клиент сервера CartKeeper.
type Client struct {
	baseURL string
	http    *http.Client
}

// New создаёт клиент для указанного base URL (например, http://localhost:8081).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// CreateItemInput — тело POST /api/items.
type CreateItemInput struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit"`
	Status   *string  `json:"status"`
	Type     string   `json:"type"`
	Stores   []string `json:"stores"`
	Aisle    *string  `json:"aisle,omitempty"`
	Tags     []string `json:"tags"`
}

type itemsResponse struct {
	Items []model.Item `json:"items"`
}

type itemResponse struct {
	Item model.Item `json:"item"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListItems возвращает все элементы, новые первыми.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/items", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var resp itemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return resp.Items, nil
}

// CreateItem создаёт элемент; id и метки времени назначает сервер.
func (c *Client) CreateItem(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/items", in, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var resp itemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &resp.Item, nil
}

// UpdateItem отправляет частичное обновление. В patch передаются только
// изменяемые ключи; значение nil сериализуется как null (явная очистка).
func (c *Client) UpdateItem(ctx context.Context, id string, patch model.Patch) (*model.Item, error) {
	body, err := c.do(ctx, http.MethodPatch, "/api/items/"+id, patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var resp itemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &resp.Item, nil
}

// DeleteItem удаляет элемент по id.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/items/"+id, nil, http.StatusOK)
	return err
}

// do выполняет запрос и проверяет код ответа. Для неуспешных кодов
// возвращается сообщение из тела {"error": ...}, если оно есть.
func (c *Client) do(ctx context.Context, method, path string, payload any, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, er.Error)
		}
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
