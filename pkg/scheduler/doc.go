// Package scheduler implements a worker pool for executing work with futures.
//
// The scheduler manages a fixed pool of workers. Work is submitted via AddWork
// and returns a Future that can be used to retrieve the result or cancel the
// work. Queued work is dispatched in submission order, so a scheduler created
// with a single worker is a serial executor: each work item runs to completion
// before the next one starts. The record manager relies on this to process
// user commands one at a time, whatever goroutine they arrive from.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                 Work Queue (FIFO)                       │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        AddWork(fn) / Do(ctx, s, fn)                 │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Futures
//
//   - C() receives exactly one Result when the work completes
//   - Stop() cancels the work's context
//
// Do wraps AddWork for typed, blocking use:
//
//	model, err := scheduler.Do(ctx, s, func(ctx context.Context) (models.RenderModel, error) {
//	    return m.apply(ctx, cmd)
//	})
//
// Do never abandons work that has started: if ctx ends while fn is still
// queued, fn is skipped and ctx.Err() is returned; once fn runs, Do waits
// for it and returns its result.
//
// # Shutdown
//
// Close cancels the main context, fails queued work with context.Canceled,
// waits for in-flight work to return and stops the run loop. AddWork after
// Close returns a future already holding context.Canceled.
//
// Panics inside work are recovered and reported as errors.
package scheduler
