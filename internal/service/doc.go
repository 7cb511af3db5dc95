// Package service implements the business logic layer for the EventMate API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts repository dependencies
//   - Methods implement business operations with proper validation
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific sentinel errors defined in errors.go:
//
//	var (
//	    ErrEventNotFound = errors.New("event not found")
//	    ErrGuestNotFound = errors.New("guest not found")
//	)
//
// Field-constraint violations are returned as *model.APIError carrying
// one message per violated field.
//
// # Example Usage
//
//	svc := NewGuestService(guestRepo, eventRepo)
//	guest, err := svc.AddGuest(ctx, &model.GuestRequest{
//	    EventID: "event:gala",
//	    Name:    "Amy",
//	})
package service
