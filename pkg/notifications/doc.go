// Package notifications displays transient, typed, single-slot
// notifications.
//
// A Notifier holds at most one notification. Notify replaces whatever is on
// display without an exit transition and schedules an automatic dismissal.
// Close and auto-dismiss both remove a notification in two phases: it is
// marked leaving, then removed after the exit delay. Every notification
// carries a generation number; timers scheduled for an older generation are
// no-ops, so an explicit close racing the auto-dismiss timer is harmless.
//
//	surface := notifications.NewBroadcastSurface(16)
//	n := notifications.NewNotifier(surface,
//	    notifications.WithAutoDismiss(5*time.Second),
//	    notifications.WithExitDelay(300*time.Millisecond),
//	)
//	note := n.Notify(ctx, "Message sent successfully!", notifications.TypeSuccess)
//	n.Close(ctx, note.Generation)
//
// Rendering is delegated to a Surface. MemorySurface records state for tests,
// BroadcastSurface publishes Events to subscribers such as an SSE stream, and
// MultiSurface fans out to several surfaces.
package notifications
