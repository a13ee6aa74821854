package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

//go:generate mockgen -source=employer.go -destination=employer_mock.go -package=services

// ErrEmptyMessage is returned by SendMessage for blank text.
var ErrEmptyMessage = errors.New("message text is required")

// employerSender labels messages sent from the employer dashboard.
const employerSender = "Employer"

// HireStore holds the employer's hired workers.
type HireStore interface {
	List(ctx context.Context) ([]models.User, error)
	Replace(ctx context.Context, workers []models.User) error
}

// MessageStore holds the employer conversation.
type MessageStore interface {
	List(ctx context.Context) ([]models.Message, error)
	Append(ctx context.Context, msg models.Message) ([]models.Message, error)
}

// EmployerService implements the employer dashboard: hiring and messaging.
type EmployerService struct {
	users    UserReader
	hires    HireStore
	messages MessageStore
	events   EventPublisher
	now      func() time.Time
}

// NewEmployerService creates a new EmployerService. events may be nil.
func NewEmployerService(users UserReader, hires HireStore, messages MessageStore, events EventPublisher) *EmployerService {
	return &EmployerService{
		users:    users,
		hires:    hires,
		messages: messages,
		events:   events,
		now:      time.Now,
	}
}

// HireWorkers replaces the hired set with the workers among ids. Unknown ids,
// duplicates and non-workers are skipped. Order follows ids.
func (svc *EmployerService) HireWorkers(ctx context.Context, ids []int) ([]models.User, error) {
	hired := make([]models.User, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		u, err := svc.users.GetByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get user", "id", id, "err", err)
			return nil, err
		}
		if u == nil || !u.IsWorker() {
			continue
		}
		hired = append(hired, *u)
	}

	if err := svc.hires.Replace(ctx, hired); err != nil {
		logger.Log.Errorw("failed to store hired workers", "count", len(hired), "err", err)
		return nil, err
	}

	hiredIDs := make([]int, 0, len(hired))
	for _, u := range hired {
		hiredIDs = append(hiredIDs, u.ID)
	}
	publish(ctx, svc.events, models.EventWorkersHired, 0, hiredIDs)

	return hired, nil
}

// HiredWorkers returns the current hired set.
func (svc *EmployerService) HiredWorkers(ctx context.Context) ([]models.User, error) {
	return svc.hires.List(ctx)
}

// SendMessage appends an employer message and returns the whole conversation.
func (svc *EmployerService) SendMessage(ctx context.Context, text string) ([]models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	msgs, err := svc.messages.Append(ctx, models.Message{
		From: employerSender,
		Text: text,
		Time: svc.now().Format(models.MessageTimeLayout),
	})
	if err != nil {
		logger.Log.Errorw("failed to store message", "err", err)
		return nil, err
	}
	return msgs, nil
}

// Messages returns the conversation in send order.
func (svc *EmployerService) Messages(ctx context.Context) ([]models.Message, error) {
	return svc.messages.List(ctx)
}
