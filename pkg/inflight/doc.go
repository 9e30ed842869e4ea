// Package inflight provides expiring per-key locks that refuse a second
// holder while the first is still working.
//
// The contact handler takes a lock keyed by form ID around each send, so a
// double post of the same form is answered without a second relay call.
// Memory serves a single instance; Redis (SET NX PX plus a compare-and-
// delete release) serves several.
//
//	release, err := locker.Acquire(ctx, formID)
//	if errors.Is(err, inflight.ErrLocked) {
//		// already sending
//	}
//	defer release(context.WithoutCancel(ctx))
package inflight
