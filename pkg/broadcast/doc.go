// Package broadcast provides type-safe one-to-many message fan-out.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// The memory implementation removes a subscriber when its context is
// cancelled, when its buffer is full, or when the broadcaster is closed.
package broadcast
