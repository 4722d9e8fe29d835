package crawler

const (
	TransactionConfirmed EventType = iota
	TransactionUnconfirmed
)

type EventType int

func (et EventType) String() string {
	switch et {
	case TransactionConfirmed:
		return "TransactionConfirmed"
	case TransactionUnconfirmed:
		return "TransactionUnconfirmed"
	default:
		return "Unknown"
	}
}

// TransactionEvent is emitted every time the status of a watched
// transaction is polled.
type TransactionEvent struct {
	TxID      string
	EventType EventType
}
