// Package handler provides HTTP request handlers for the EventMate API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the service it needs to serve
// requests for a specific resource (events, guests, vendors).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service interface
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to status codes by MapServiceError
//
// # Response Format
//
// Every endpoint responds with the same JSON envelope:
//
//	{
//	    "success": true,
//	    "data": { ... },
//	    "message": "Guest added successfully",
//	    "errors": ["Name cannot exceed 100 characters"],
//	    "count": 3
//	}
//
// data, message, errors and count are all optional; collections carry
// count, failures carry message and (for validation) errors.
//
// # Example Usage
//
//	handler := NewEventHandler(eventService)
//	mux.HandleFunc("GET /events", handler.ListEvents)
//	mux.HandleFunc("POST /events", handler.CreateEvent)
package handler
