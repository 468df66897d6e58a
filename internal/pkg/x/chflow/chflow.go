// Package chflow holds channel helpers that give up as soon as a context is done.
package chflow

import "context"

// Receive returns the next value of ch. ok is false when ch is closed or ctx
// is done first.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// Send delivers v on ch and reports false when ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// Broadcast delivers v on every channel of outs, in order. It stops and
// reports false at the first send interrupted by ctx.
func Broadcast[T any](ctx context.Context, outs []chan<- T, v T) bool {
	for _, out := range outs {
		if !Send(ctx, out, v) {
			return false
		}
	}
	return true
}
