// Package jobs implements background tasks for the EventMate API.
//
// The jobs package contains scheduled work that runs independently of
// HTTP request handling.
//
// # Job Types
//
//   - CounterReconciler: periodic repair of the denormalized guestCount
//     and vendorCount fields on events
//
// # Lifecycle
//
// Jobs are started from main and stopped on shutdown:
//
//	reconciler := jobs.NewCounterReconciler(eventRepo, time.Hour)
//	reconciler.Start()
//	defer reconciler.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application.
package jobs
