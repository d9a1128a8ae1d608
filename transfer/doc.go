// Package transfer moves bytes from a reader to a writer in fixed-size
// chunks.
//
// Copy honours context cancellation between chunks and can be throttled to
// a byte rate with golang.org/x/time/rate. Pipe additionally owns both ends
// and closes them, reporting the destination's close error so a caller
// knows the data was flushed.
//
//	n, err := transfer.Pipe(ctx, dst, src, transfer.WithRateLimit(64<<20))
package transfer
