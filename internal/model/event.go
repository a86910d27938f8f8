package model

import "encoding/json"

// Ledger event types, as published to off-chain observers. Every mutation of
// ledger state enqueues one of these into the transactional outbox.
const (
	EventCourseCreated      = "course.created"
	EventCoursePriceUpdated = "course.price_updated"
	EventCourseBought       = "course.bought"
	EventProtocolFeeUpdated = "protocol.fee_updated"
	EventReceiptIssued      = "receipt.issued"
)

// LedgerEvent is the outbox envelope. Payload holds one of the *Event
// structs below, serialized as JSON.
type LedgerEvent struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// NewLedgerEvent wraps an event payload in an outbox envelope.
func NewLedgerEvent(eventType string, payload any) (*LedgerEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &LedgerEvent{EventType: eventType, Payload: raw}, nil
}

type CourseCreatedEvent struct {
	CourseID     int64  `json:"course_id"`
	ActorAddress string `json:"actor_address"`
	PriceCents   int64  `json:"price_cents"`
	ContentRef   string `json:"content_ref"`
}

type CoursePriceUpdatedEvent struct {
	CourseID   int64 `json:"course_id"`
	PriceCents int64 `json:"price_cents"`
}

type CourseBoughtEvent struct {
	CourseID     int64  `json:"course_id"`
	BuyerAddress string `json:"buyer_address"`
	AmountCents  int64  `json:"amount_cents"`
	FeeCents     int64  `json:"fee_cents"`
}

type ProtocolFeeUpdatedEvent struct {
	FeeBps int32 `json:"fee_bps"`
}

// ReceiptIssuedEvent mirrors a transfer-style event with an empty "from",
// denoting issuance rather than movement between holders.
type ReceiptIssuedEvent struct {
	CourseID    int64  `json:"course_id"`
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Quantity    int64  `json:"quantity"`
}
