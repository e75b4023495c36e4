package publisher

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"bills_fetcher/internal/domain"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
)

// BillMessage is the JSON body of a bill change event.
type BillMessage struct {
	Action    string            `json:"action"`
	Bill      domain.BillChange `json:"bill"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewBillMessage(change *domain.BillChange, now time.Time) BillMessage {
	action := ActionUpdate
	if change.Created {
		action = ActionCreate
	}
	return BillMessage{
		Action:    action,
		Bill:      *change,
		Timestamp: now.UTC(),
	}
}

// RoutingKey is "<prefix>.<kind>.<stage>", so consumers can bind to one
// kind of bill or one stage with a topic pattern.
func RoutingKey(prefix string, change *domain.BillChange) string {
	kind := change.Kind
	if kind == "" {
		kind = domain.KindLey
	}
	return prefix + "." + string(kind) + "." + string(change.Stage)
}

func headers(msg BillMessage) amqp.Table {
	return amqp.Table{
		"action":      msg.Action,
		"kind":        string(msg.Bill.Kind),
		"stage":       string(msg.Bill.Stage),
		"legislatura": msg.Bill.Legislatura,
	}
}
