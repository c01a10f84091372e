// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn their goroutines internally and
// stop when the context supplied at construction is cancelled.
type Worker interface {
	Run()
}

// IdleLocker relocks sections whose idle timeout has elapsed.
// Implemented by the unlock keeper.
type IdleLocker interface {
	EnforceIdleTimeout()
}

// Sweeper drops expired one-time codes and reset tokens and reports how many
// entries were removed. Implemented by the reset service.
type Sweeper interface {
	Sweep() int
}
