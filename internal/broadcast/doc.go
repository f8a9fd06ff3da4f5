// Package broadcast fans auction payloads out to every connected viewer.
//
// The coordinator hands each payload to [Hub.Publish], which only enqueues it.
// A single goroutine started with [Hub.Run] drains the queue and copies every
// payload onto each subscriber's buffered channel. Delivery is best effort: a
// full queue or a full subscriber channel drops the payload instead of
// blocking. Every payload is a complete snapshot carrying a version number, so
// a viewer that missed one converges on the next.
package broadcast
