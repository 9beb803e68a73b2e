// Package async provides generic helpers for running computations
// asynchronously and waiting for their completion.
//
// A Future represents the eventual result of an operation. Async starts the
// supplied function in its own goroutine and returns immediately; Resolved
// wraps a value that is already known. Callers wait with Await, AwaitContext
// or AwaitWithTimeout, poll with IsComplete, or select on Done.
//
// If the context passed to Async is already cancelled the function is not
// run and the Future completes with the context error.
//
//	future := async.Async(ctx, msg, func(ctx context.Context, m Message) (Outcome, error) {
//	    return send(ctx, m)
//	})
//	outcome, err := future.Await()
package async
