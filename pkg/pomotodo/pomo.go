package pomotodo

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// GetPomo retrieves a single pomo by UUID.
func (c *Client) GetPomo(ctx context.Context, id uuid.UUID) (*Pomo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/pomos/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var pomo Pomo
	if err := c.doJSON(req, http.StatusOK, &pomo); err != nil {
		return nil, err
	}

	return &pomo, nil
}

// ListPomos lists pomos, optionally narrowed by filter. A nil filter
// returns everything the API defaults to.
func (c *Client) ListPomos(ctx context.Context, filter *PomoFilter) ([]*Pomo, error) {
	path := "/pomos"
	if params := filter.values(); len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var pomos []*Pomo
	if err := c.doJSON(req, http.StatusOK, &pomos); err != nil {
		return nil, err
	}

	return pomos, nil
}

// CreatePomo records a finished pomo. The start timestamp is required;
// the end may be given either as endedAt or, with a zero endedAt, as
// WithLength. A zero endedAt is left off the wire entirely because the
// server prefers ended_at over length whenever both are present. Pomos
// created through the API are always marked manual.
func (c *Client) CreatePomo(ctx context.Context, description string, startedAt, endedAt time.Time, opts ...CreatePomoOption) (*Pomo, error) {
	body := createPomoRequest{
		Description: description,
		StartedAt:   startedAt.UTC(),
		Manual:      true,
	}
	if !endedAt.IsZero() {
		ended := endedAt.UTC()
		body.EndedAt = &ended
	}
	for _, opt := range opts {
		opt(&body)
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/pomos", body)
	if err != nil {
		return nil, err
	}

	var pomo Pomo
	if err := c.doJSON(req, http.StatusCreated, &pomo); err != nil {
		return nil, err
	}

	return &pomo, nil
}

// UpdatePomo changes the description of a pomo. The API accepts no
// other field in a pomo patch.
func (c *Client) UpdatePomo(ctx context.Context, id uuid.UUID, description string) (*Pomo, error) {
	body := updatePomoRequest{Description: description}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/pomos/"+id.String(), body)
	if err != nil {
		return nil, err
	}

	var pomo Pomo
	if err := c.doJSON(req, http.StatusOK, &pomo); err != nil {
		return nil, err
	}

	return &pomo, nil
}

// DeletePomo deletes a pomo.
func (c *Client) DeletePomo(ctx context.Context, id uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/pomos/"+id.String(), nil)
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
