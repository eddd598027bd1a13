// Package pomotodo provides an unofficial Go client for the Pomotodo
// REST API (https://pomotodo.com), a task and pomodoro tracking service.
//
// # Getting Started
//
// Grab an access token from the Pomotodo account settings page, then
// create a client:
//
//	client, err := pomotodo.NewClient(token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Verify the token and fetch account information:
//
//	account, err := client.Account(ctx)
//
// # Pomos
//
// A pomo is a finished pomodoro work session. Record one manually:
//
//	pomo, err := client.CreatePomo(ctx, "Write report",
//	    startedAt, endedAt,
//	)
//
// List pomos with filtering:
//
//	pomos, err := client.ListPomos(ctx, &pomotodo.PomoFilter{
//	    Abandoned:    pomotodo.Bool(false),
//	    StartedAfter: pomotodo.Time(yesterday),
//	})
//
// # Todos
//
// Create a todo:
//
//	todo, err := client.CreateTodo(ctx, "Plan sprint",
//	    pomotodo.WithPin(true),
//	    pomotodo.WithEstimatedPomoCount(3),
//	)
//
// Complete it later:
//
//	todo, err = client.UpdateTodo(ctx, todo.UUID,
//	    pomotodo.WithUpdateCompleted(true),
//	)
//
// Sub-todos hang off a parent todo:
//
//	sub, err := client.CreateSubTodo(ctx, todo.UUID, "Draft outline")
//
// # Error Handling
//
// API failures are returned as *Error with helper predicates:
//
//	account, err := client.Account(ctx)
//	if err != nil {
//	    if pomotodo.IsUnauthorized(err) {
//	        // bad or expired token
//	    } else if pomotodo.IsRateLimited(err) {
//	        // back off
//	    }
//	}
//
// # Configuration Options
//
// Client options:
//
//	pomotodo.WithBaseURL(url)        // Optional: API base URL (default: https://api.pomotodo.com/1)
//	pomotodo.WithHTTPClient(hc)      // Optional: custom *http.Client
//	pomotodo.WithTimeout(duration)   // Optional: HTTP timeout (default: 30s)
//	pomotodo.WithUserAgent(ua)       // Optional: User-Agent header
package pomotodo
