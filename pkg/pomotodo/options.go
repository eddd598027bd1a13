package pomotodo

import (
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *http.Client
}

// defaultClientConfig returns the default client configuration.
func defaultClientConfig() *clientConfig {
	return &clientConfig{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   30 * time.Second,
	}
}

// WithBaseURL sets the API base URL. Useful for tests and proxies.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client. WithTimeout is ignored when
// a custom client is supplied.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.http = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// CreatePomoOption configures a CreatePomo call.
type CreatePomoOption func(*createPomoRequest)

// WithLength sets the pomo length in seconds. The server drops and
// recalculates it when ended_at is also present.
func WithLength(seconds uint) CreatePomoOption {
	return func(r *createPomoRequest) {
		r.Length = &seconds
	}
}

// WithAbandoned marks the recorded pomo as abandoned.
func WithAbandoned(abandoned bool) CreatePomoOption {
	return func(r *createPomoRequest) {
		r.Abandoned = &abandoned
	}
}

// WithLocalStartedAt sets the wall-clock start time in the user's timezone.
func WithLocalStartedAt(t time.Time) CreatePomoOption {
	return func(r *createPomoRequest) {
		r.LocalStartedAt = &t
	}
}

// WithLocalEndedAt sets the wall-clock end time in the user's timezone.
func WithLocalEndedAt(t time.Time) CreatePomoOption {
	return func(r *createPomoRequest) {
		r.LocalEndedAt = &t
	}
}

// CreateTodoOption configures a CreateTodo call.
type CreateTodoOption func(*createTodoRequest)

// WithNotice sets the todo notice text.
func WithNotice(notice string) CreateTodoOption {
	return func(r *createTodoRequest) {
		r.Notice = &notice
	}
}

// WithPin pins the todo to the top of the list.
func WithPin(pin bool) CreateTodoOption {
	return func(r *createTodoRequest) {
		r.Pin = &pin
	}
}

// WithRepeatType sets how often the todo repeats.
func WithRepeatType(rt RepeatType) CreateTodoOption {
	return func(r *createTodoRequest) {
		r.RepeatType = &rt
	}
}

// WithRemindTime sets the reminder time.
func WithRemindTime(t time.Time) CreateTodoOption {
	return func(r *createTodoRequest) {
		r.RemindTime = &t
	}
}

// WithEstimatedPomoCount sets the estimated number of pomos.
func WithEstimatedPomoCount(count uint) CreateTodoOption {
	return func(r *createTodoRequest) {
		r.EstimatedPomoCount = &count
	}
}

// UpdateTodoOption configures an UpdateTodo call.
type UpdateTodoOption func(*updateTodoRequest)

// WithUpdateDescription sets the todo description for update.
func WithUpdateDescription(desc string) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.Description = &desc
	}
}

// WithUpdateNotice sets the todo notice for update.
func WithUpdateNotice(notice string) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.Notice = &notice
	}
}

// WithUpdatePin sets the pin flag for update.
func WithUpdatePin(pin bool) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.Pin = &pin
	}
}

// WithUpdateCompleted sets the completion state. The server records
// completed_at itself when a todo transitions to completed.
func WithUpdateCompleted(completed bool) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.Completed = &completed
	}
}

// WithUpdateRepeatType sets the repeat type for update.
func WithUpdateRepeatType(rt RepeatType) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.RepeatType = &rt
	}
}

// WithUpdateRemindTime sets the reminder time for update.
func WithUpdateRemindTime(t time.Time) UpdateTodoOption {
	return func(r *updateTodoRequest) {
		r.RemindTime = &t
	}
}

// UpdateSubTodoOption configures an UpdateSubTodo call.
type UpdateSubTodoOption func(*updateSubTodoRequest)

// WithSubTodoDescription sets the sub-todo description for update.
func WithSubTodoDescription(desc string) UpdateSubTodoOption {
	return func(r *updateSubTodoRequest) {
		r.Description = &desc
	}
}

// WithSubTodoCompleted sets the sub-todo completion state for update.
func WithSubTodoCompleted(completed bool) UpdateSubTodoOption {
	return func(r *updateSubTodoRequest) {
		r.Completed = &completed
	}
}
