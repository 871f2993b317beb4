package catalog

import (
	"github.com/asaskevich/EventBus"
)

const topicCatalogUpdated = "catalog:updated"

// Notifier broadcasts a payload-free "catalog changed" signal after every
// mutating operation. In-process subscribers fire synchronously; the web layer
// relays the same signal to browser tabs over a server-sent event stream.
// Subscribers reload their entire working set from the store — there is no
// delta.
type Notifier struct {
	bus EventBus.Bus
}

func NewNotifier() *Notifier {
	return &Notifier{bus: EventBus.New()}
}

func (n *Notifier) Notify() {
	n.bus.Publish(topicCatalogUpdated)
}

// Subscribe registers fn to run synchronously on every catalog change. The
// same function value must be passed to Unsubscribe.
func (n *Notifier) Subscribe(fn func()) error {
	return n.bus.Subscribe(topicCatalogUpdated, fn)
}

func (n *Notifier) Unsubscribe(fn func()) error {
	return n.bus.Unsubscribe(topicCatalogUpdated, fn)
}
