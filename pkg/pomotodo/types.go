package pomotodo

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RepeatType describes how often a todo repeats.
type RepeatType string

const (
	RepeatNone        RepeatType = "none"
	RepeatEachDay     RepeatType = "each_day"
	RepeatEachWeek    RepeatType = "each_week"
	RepeatEachTwoWeek RepeatType = "each_two_week"
	RepeatEachMonth   RepeatType = "each_month"
	RepeatEachYear    RepeatType = "each_year"
)

// Valid reports whether r is a repeat type the API accepts.
func (r RepeatType) Valid() bool {
	switch r {
	case RepeatNone, RepeatEachDay, RepeatEachWeek, RepeatEachTwoWeek, RepeatEachMonth, RepeatEachYear:
		return true
	}
	return false
}

// Account holds the account information of the token owner.
type Account struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Timezone       string    `json:"timezone"`
	RegisterTime   time.Time `json:"register_time"`
	ProExpiresTime time.Time `json:"pro_expires_time"`
}

// Pomo is a finished pomodoro work session.
//
// Pomos created through the API are always manual; the uuid and the
// created_at/updated_at timestamps are assigned by the server.
type Pomo struct {
	UUID           uuid.UUID  `json:"uuid"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Description    string     `json:"description"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        time.Time  `json:"ended_at"`
	LocalStartedAt *time.Time `json:"local_started_at,omitempty"`
	LocalEndedAt   *time.Time `json:"local_ended_at,omitempty"`
	Length         uint       `json:"length"` // seconds
	Abandoned      bool       `json:"abandoned"`
	Manual         bool       `json:"manual"`
}

// Todo is a task item.
type Todo struct {
	UUID               uuid.UUID   `json:"uuid"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	Description        string      `json:"description"`
	Notice             *string     `json:"notice,omitempty"`
	Pin                bool        `json:"pin"`
	Completed          bool        `json:"completed"`
	CompletedAt        *time.Time  `json:"completed_at,omitempty"`
	RepeatType         RepeatType  `json:"repeat_type,omitempty"`
	RemindTime         *time.Time  `json:"remind_time,omitempty"`
	EstimatedPomoCount uint        `json:"estimated_pomo_count,omitempty"`
	CostedPomoCount    uint        `json:"costed_pomo_count,omitempty"`
	SubTodos           []uuid.UUID `json:"sub_todos,omitempty"`
}

// SubTodo is a child item of a todo.
type SubTodo struct {
	UUID        uuid.UUID  `json:"uuid"`
	ParentUUID  uuid.UUID  `json:"parent_uuid"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PomoFilter narrows a ListPomos call. Nil fields are not sent.
type PomoFilter struct {
	Abandoned     *bool
	Manual        *bool
	StartedAfter  *time.Time
	StartedBefore *time.Time
	EndedAfter    *time.Time
	EndedBefore   *time.Time
}

// values converts the filter to API query parameters.
func (f *PomoFilter) values() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Abandoned != nil {
		params.Set("abandoned", strconv.FormatBool(*f.Abandoned))
	}
	if f.Manual != nil {
		params.Set("manual", strconv.FormatBool(*f.Manual))
	}
	if f.StartedAfter != nil {
		params.Set("started_later_than", formatTime(*f.StartedAfter))
	}
	if f.StartedBefore != nil {
		params.Set("started_earlier_than", formatTime(*f.StartedBefore))
	}
	if f.EndedAfter != nil {
		params.Set("ended_later_than", formatTime(*f.EndedAfter))
	}
	if f.EndedBefore != nil {
		params.Set("ended_earlier_than", formatTime(*f.EndedBefore))
	}
	return params
}

// TodoFilter narrows a ListTodos call. Nil fields are not sent.
type TodoFilter struct {
	Completed       *bool
	CompletedAfter  *time.Time
	CompletedBefore *time.Time
}

// values converts the filter to API query parameters.
func (f *TodoFilter) values() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Completed != nil {
		params.Set("completed", strconv.FormatBool(*f.Completed))
	}
	if f.CompletedAfter != nil {
		params.Set("completed_later_than", formatTime(*f.CompletedAfter))
	}
	if f.CompletedBefore != nil {
		params.Set("completed_earlier_than", formatTime(*f.CompletedBefore))
	}
	return params
}

// formatTime renders a timestamp the way the API expects query
// parameters: RFC 3339 in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Bool returns a pointer to v, for use in filters.
func Bool(v bool) *bool { return &v }

// Uint returns a pointer to v.
func Uint(v uint) *uint { return &v }

// Time returns a pointer to v, for use in filters.
func Time(v time.Time) *time.Time { return &v }

// createPomoRequest is the JSON request body for creating a pomo.
// The server rejects uuid/created_at/updated_at, so they are never sent,
// and manual is forced to true.
type createPomoRequest struct {
	Description    string     `json:"description"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	LocalStartedAt *time.Time `json:"local_started_at,omitempty"`
	LocalEndedAt   *time.Time `json:"local_ended_at,omitempty"`
	Length         *uint      `json:"length,omitempty"`
	Abandoned      *bool      `json:"abandoned,omitempty"`
	Manual         bool       `json:"manual"`
}

// updatePomoRequest is the JSON request body for updating a pomo.
// Only the description is patchable.
type updatePomoRequest struct {
	Description string `json:"description"`
}

// createTodoRequest is the JSON request body for creating a todo.
type createTodoRequest struct {
	Description        string      `json:"description"`
	Notice             *string     `json:"notice,omitempty"`
	Pin                *bool       `json:"pin,omitempty"`
	RepeatType         *RepeatType `json:"repeat_type,omitempty"`
	RemindTime         *time.Time  `json:"remind_time,omitempty"`
	EstimatedPomoCount *uint       `json:"estimated_pomo_count,omitempty"`
}

// updateTodoRequest is the JSON request body for updating a todo.
type updateTodoRequest struct {
	Description *string     `json:"description,omitempty"`
	Notice      *string     `json:"notice,omitempty"`
	Pin         *bool       `json:"pin,omitempty"`
	Completed   *bool       `json:"completed,omitempty"`
	RepeatType  *RepeatType `json:"repeat_type,omitempty"`
	RemindTime  *time.Time  `json:"remind_time,omitempty"`
}

// createSubTodoRequest is the JSON request body for creating a sub-todo.
type createSubTodoRequest struct {
	Description string `json:"description"`
}

// updateSubTodoRequest is the JSON request body for updating a sub-todo.
type updateSubTodoRequest struct {
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
