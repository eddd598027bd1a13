package pomotodo

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// GetTodo retrieves a single todo by UUID.
func (c *Client) GetTodo(ctx context.Context, id uuid.UUID) (*Todo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/todos/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := c.doJSON(req, http.StatusOK, &todo); err != nil {
		return nil, err
	}

	return &todo, nil
}

// ListTodos lists todos, optionally narrowed by filter. A nil filter
// returns everything the API defaults to.
func (c *Client) ListTodos(ctx context.Context, filter *TodoFilter) ([]*Todo, error) {
	path := "/todos"
	if params := filter.values(); len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var todos []*Todo
	if err := c.doJSON(req, http.StatusOK, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}

// CreateTodo creates a new todo with the given description.
func (c *Client) CreateTodo(ctx context.Context, description string, opts ...CreateTodoOption) (*Todo, error) {
	body := createTodoRequest{Description: description}
	for _, opt := range opts {
		opt(&body)
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/todos", body)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := c.doJSON(req, http.StatusCreated, &todo); err != nil {
		return nil, err
	}

	return &todo, nil
}

// UpdateTodo patches a todo. Only the fields set through options are
// sent; uuid, created_at, updated_at, and sub_todos are never sent
// because the server rejects them.
func (c *Client) UpdateTodo(ctx context.Context, id uuid.UUID, opts ...UpdateTodoOption) (*Todo, error) {
	body := updateTodoRequest{}
	for _, opt := range opts {
		opt(&body)
	}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/todos/"+id.String(), body)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := c.doJSON(req, http.StatusOK, &todo); err != nil {
		return nil, err
	}

	return &todo, nil
}

// DeleteTodo deletes a todo and its sub-todos.
func (c *Client) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/todos/"+id.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req, http.StatusNoContent)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}
