package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/pgmq"
	"app/internal/repository"
)

// DLQService persists ledger events that exhausted their publish retries so
// operators can inspect and redrive them.
type DLQService interface {
	ProcessAndSave(ctx context.Context, req *dto.PubSubPushRequest) error
	ListUnprocessed(ctx context.Context, limit int) ([]model.DeadLetterMessage, error)
	// Redrive puts a dead-lettered event back onto the outbox queue so the
	// orchestrator retries its publication, and marks the message processed.
	Redrive(ctx context.Context, id string) error
}

type dlqService struct {
	repo        repository.DLQRepository
	queue       *pgmq.Client
	eventsQueue string
}

func NewDLQService(repo repository.DLQRepository, queue *pgmq.Client, eventsQueue string) DLQService {
	return &dlqService{repo: repo, queue: queue, eventsQueue: eventsQueue}
}

func (s *dlqService) ProcessAndSave(ctx context.Context, req *dto.PubSubPushRequest) error {
	// Decode the base64-encoded payload
	decodedPayload, err := base64.StdEncoding.DecodeString(req.Message.Data)
	if err != nil {
		// If we can't even decode it, save the raw data
		decodedPayload = []byte(req.Message.Data)
	}

	// Marshal attributes to a JSON string, if they exist
	var attributesJSON *string
	if len(req.Message.Attributes) > 0 {
		attrBytes, err := json.Marshal(req.Message.Attributes)
		if err == nil {
			attrStr := string(attrBytes)
			attributesJSON = &attrStr
		}
	}

	dbMessage := &model.DeadLetterMessage{
		SubscriptionName: req.Subscription,
		MessageID:        req.Message.MessageID,
		Payload:          string(decodedPayload),
		Attributes:       attributesJSON,
		Status:           "unprocessed",
	}
	return s.repo.Create(ctx, dbMessage)
}

func (s *dlqService) ListUnprocessed(ctx context.Context, limit int) ([]model.DeadLetterMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListUnprocessed(ctx, limit)
}

func (s *dlqService) Redrive(ctx context.Context, id string) error {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrDLQMessageNotFound
	}
	if err := s.queue.Send(ctx, s.eventsQueue, []byte(msg.Payload)); err != nil {
		return err
	}
	return s.repo.MarkProcessed(ctx, id)
}
