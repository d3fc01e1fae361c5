// Package api — типизированный HTTP-клиент серверного API пантри.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
)

// Error — ошибка уровня API: не-2xx ответ сервера с его сообщением.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client ходит на сервер от имени одного пользователя.
// Токен передаётся как auth cookie, если он непустой.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New создаёт клиент для baseURL (без завершающего «/»).
func New(baseURL, token string) *Client {
	return &Client{baseURL: baseURL, token: token, http: &http.Client{}}
}

// SetToken заменяет сессионный токен клиента.
func (c *Client) SetToken(token string) { c.token = token }

// doJSON выполняет запрос с JSON-телом и декодирует JSON-ответ в out.
// Не-2xx статус превращается в *Error с сообщением сервера.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Cookie", "auth_token="+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Request failed"
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// GetPantry возвращает неудалённые строки пантри пользователя.
func (c *Client) GetPantry(ctx context.Context, userID int64) ([]model.FoodItem, error) {
	var items []model.FoodItem
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/pantry", userID), nil, &items)
	return items, err
}

// AddFoodItem создаёт строку пантри и возвращает её с серверным id.
func (c *Client) AddFoodItem(ctx context.Context, userID int64, item model.FoodItem) (model.FoodItem, error) {
	var created model.FoodItem
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/pantry", userID), item, &created)
	return created, err
}

// ChangeFoodItem шлёт частичный PATCH и возвращает обновлённую строку.
func (c *Client) ChangeFoodItem(ctx context.Context, userID int64, edit model.FoodEdit) (model.FoodItem, error) {
	var updated model.FoodItem
	err := c.doJSON(ctx, http.MethodPatch,
		fmt.Sprintf("/users/%d/pantry/%d", userID, edit.ID), edit, &updated)
	return updated, err
}

// DeleteFoodItem мягко удаляет строку пантри.
func (c *Client) DeleteFoodItem(ctx context.Context, userID, itemID int64) error {
	return c.doJSON(ctx, http.MethodPatch,
		fmt.Sprintf("/users/%d/pantry/%d/delete", userID, itemID), nil, nil)
}

// GetFoodGroups возвращает группы пользователя.
func (c *Client) GetFoodGroups(ctx context.Context, userID int64) ([]model.FoodGroup, error) {
	var groups []model.FoodGroup
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/foodgroups", userID), nil, &groups)
	return groups, err
}

// AddFoodGroup создаёт группу и возвращает её с серверным id.
func (c *Client) AddFoodGroup(ctx context.Context, userID int64, name string) (model.FoodGroup, error) {
	var created model.FoodGroup
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/foodgroups", userID),
		map[string]string{"name": name}, &created)
	return created, err
}

// DeleteFoodGroup удаляет группу; ответ — полный список групп после
// серверного переиндексирования.
func (c *Client) DeleteFoodGroup(ctx context.Context, userID, groupID int64) ([]model.FoodGroup, error) {
	var groups []model.FoodGroup
	err := c.doJSON(ctx, http.MethodDelete,
		fmt.Sprintf("/users/%d/foodgroups/%d/delete", userID, groupID), nil, &groups)
	return groups, err
}

// GetFoodMap возвращает словарь канонических имён продуктов.
func (c *Client) GetFoodMap(ctx context.Context) (map[string]int64, error) {
	var foods []struct {
		ID       int64  `json:"id"`
		FoodName string `json:"food_name"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/foodmap", nil, &foods); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(foods))
	for _, f := range foods {
		out[f.FoodName] = f.ID
	}
	return out, nil
}

// OpenSession запрашивает сессионную cookie для userID и возвращает токен.
func (c *Client) OpenSession(ctx context.Context, userID int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/users/%d/session", c.baseURL, userID), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Status: resp.StatusCode, Message: "Request failed"}
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			c.token = ck.Value
			return ck.Value, nil
		}
	}
	return "", fmt.Errorf("no auth cookie in response")
}
