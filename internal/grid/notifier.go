package grid

// SelectionFunc is called with the new selected index after it changes.
type SelectionFunc func(c *Controller, index int)

// LaunchFunc is called with the index of the item being launched.
type LaunchFunc func(c *Controller, index int)

// notifier is a plain ordered fan-out. Callbacks run synchronously in
// registration order; mutating the subscriber set from inside a callback is
// not supported.
type notifier[F any] struct {
	subs []F
}

func (n *notifier[F]) add(fn F) {
	n.subs = append(n.subs, fn)
}

func (n *notifier[F]) each(call func(F)) {
	for _, fn := range n.subs {
		call(fn)
	}
}
