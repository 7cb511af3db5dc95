package jobs

import (
	"context"
	"log"
	"sync"
	"time"
)

// CounterStore recomputes denormalized event counters from the live tables.
type CounterStore interface {
	ReconcileCounters(ctx context.Context) error
}

// CounterReconciler periodically repairs guestCount and vendorCount drift
// caused by writes that bypass the API.
type CounterReconciler struct {
	store    CounterStore
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewCounterReconciler creates a new counter reconciler job
func NewCounterReconciler(store CounterStore, interval time.Duration) *CounterReconciler {
	if interval == 0 {
		interval = 1 * time.Hour // Default check every hour
	}
	return &CounterReconciler{
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the reconciler job
func (c *CounterReconciler) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.run()
	log.Printf("Counter reconciler started (interval: %v)", c.interval)
}

// Stop gracefully stops the reconciler job
func (c *CounterReconciler) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	close(c.stopCh)
	c.wg.Wait()
	log.Println("Counter reconciler stopped")
}

// run is the main loop
func (c *CounterReconciler) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.reconcile()
		case <-c.stopCh:
			return
		}
	}
}

func (c *CounterReconciler) reconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := c.store.ReconcileCounters(ctx); err != nil {
		log.Printf("Error reconciling event counters: %v", err)
	}
}

// RunOnce runs the reconciliation once (for testing or manual trigger)
func (c *CounterReconciler) RunOnce(ctx context.Context) error {
	return c.store.ReconcileCounters(ctx)
}

// IsRunning returns whether the reconciler is running
func (c *CounterReconciler) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
