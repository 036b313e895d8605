// Package renderer implements progressive accumulation for an interactive
// gpu ray tracer.
//
// Every frame the sample generator renders one new sample per pixel and
// blends it into a persistent floating point render target with weight
// n/(n+1), where n is the number of samples accumulated so far. Camera
// drags, bounce count changes and viewport resizes reset n to zero.
//
// The package assumes a single thread: window events are delivered
// synchronously while the frame loop polls for them, and they mutate the
// accumulation and camera state directly. None of the types are safe for
// concurrent use; a port that delivers events from another goroutine must
// add its own synchronization.
package renderer
