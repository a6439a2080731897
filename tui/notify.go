package tui

// channelNotifier adapts the submitter's Notifier collaborator to the
// event loop: messages are pushed onto a buffered channel and drained
// by a waiting command, so the submitter never blocks on the UI.
type channelNotifier struct {
	ch chan string
}

func newChannelNotifier() channelNotifier {
	// Small buffer — at most one submission is in flight, so toasts
	// can never pile up faster than the loop drains them.
	return channelNotifier{ch: make(chan string, 4)}
}

// Notify implements models.Notifier. Fire-and-forget: if the program
// has been torn down and nothing drains the channel, the buffered send
// is simply inert.
func (n channelNotifier) Notify(message string) {
	select {
	case n.ch <- message:
	default:
	}
}
