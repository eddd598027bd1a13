package pomotodo

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// subTodoPath builds the path for a parent's sub-todo collection.
func subTodoPath(parent uuid.UUID) string {
	return "/todos/" + parent.String() + "/sub_todos"
}

// ListSubTodos lists the sub-todos of a parent todo.
func (c *Client) ListSubTodos(ctx context.Context, parent uuid.UUID) ([]*SubTodo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, subTodoPath(parent), nil)
	if err != nil {
		return nil, err
	}

	var subs []*SubTodo
	if err := c.doJSON(req, http.StatusOK, &subs); err != nil {
		return nil, err
	}

	return subs, nil
}

// GetSubTodo retrieves a single sub-todo of a parent todo.
func (c *Client) GetSubTodo(ctx context.Context, parent, id uuid.UUID) (*SubTodo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, subTodoPath(parent)+"/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var sub SubTodo
	if err := c.doJSON(req, http.StatusOK, &sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// CreateSubTodo creates a sub-todo under the given parent todo.
func (c *Client) CreateSubTodo(ctx context.Context, parent uuid.UUID, description string) (*SubTodo, error) {
	body := createSubTodoRequest{Description: description}

	req, err := c.newJSONRequest(ctx, http.MethodPost, subTodoPath(parent), body)
	if err != nil {
		return nil, err
	}

	var sub SubTodo
	if err := c.doJSON(req, http.StatusCreated, &sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// UpdateSubTodo patches a sub-todo. Only the fields set through options
// are sent.
func (c *Client) UpdateSubTodo(ctx context.Context, parent, id uuid.UUID, opts ...UpdateSubTodoOption) (*SubTodo, error) {
	body := updateSubTodoRequest{}
	for _, opt := range opts {
		opt(&body)
	}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, subTodoPath(parent)+"/"+id.String(), body)
	if err != nil {
		return nil, err
	}

	var sub SubTodo
	if err := c.doJSON(req, http.StatusOK, &sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// DeleteSubTodo deletes a sub-todo of the given parent todo.
func (c *Client) DeleteSubTodo(ctx context.Context, parent, id uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, subTodoPath(parent)+"/"+id.String(), nil)
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
