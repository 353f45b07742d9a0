package fuel

import "github.com/inovacc/fuelr/internal/model"

// ProgressSink receives each record as it is fetched. Delivery is
// best-effort: a failing or blocked sink never affects the refresh.
type ProgressSink interface {
	Notify(m model.FuelModel)
}

// ProgressFunc adapts a function to a ProgressSink.
type ProgressFunc func(m model.FuelModel)

// Notify implements ProgressSink.
func (f ProgressFunc) Notify(m model.FuelModel) { f(m) }

// ChannelSink adapts a channel to a ProgressSink. Sends never block: a
// full channel drops the record and a closed channel is tolerated.
func ChannelSink(ch chan<- model.FuelModel) ProgressSink {
	return ProgressFunc(func(m model.FuelModel) {
		defer func() { _ = recover() }()

		select {
		case ch <- m:
		default:
		}
	})
}

// notify delivers m to sink, swallowing a nil sink and any panic.
func notify(sink ProgressSink, m model.FuelModel) {
	if sink == nil {
		return
	}

	defer func() { _ = recover() }()

	sink.Notify(m)
}
