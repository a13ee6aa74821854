package services

import (
	"context"

	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
)

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=services

// WorkerSettings stores the worker dashboard state.
type WorkerSettings interface {
	GetAvailability(ctx context.Context) (bool, bool, error)
	SetAvailability(ctx context.Context, available bool) error
	GetSkillVideo(ctx context.Context) (string, bool, error)
	SetSkillVideo(ctx context.Context, dataURI string) error
	RemoveSkillVideo(ctx context.Context) error
}

// WorkerService manages the worker's availability and skill video.
type WorkerService struct {
	settings WorkerSettings
}

// NewWorkerService creates a new WorkerService.
func NewWorkerService(settings WorkerSettings) *WorkerService {
	return &WorkerService{settings: settings}
}

// Available reports the worker's availability. Defaults to true.
func (svc *WorkerService) Available(ctx context.Context) (bool, error) {
	available, ok, err := svc.settings.GetAvailability(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read availability", "err", err)
		return false, err
	}
	if !ok {
		return true, nil
	}
	return available, nil
}

// ToggleAvailability flips availability and returns the new value.
func (svc *WorkerService) ToggleAvailability(ctx context.Context) (bool, error) {
	available, err := svc.Available(ctx)
	if err != nil {
		return false, err
	}

	if err := svc.settings.SetAvailability(ctx, !available); err != nil {
		logger.Log.Errorw("failed to store availability", "err", err)
		return false, err
	}
	return !available, nil
}

// SkillVideo returns the stored data URI and whether one exists.
func (svc *WorkerService) SkillVideo(ctx context.Context) (string, bool, error) {
	return svc.settings.GetSkillVideo(ctx)
}

// SetSkillVideo stores a base64 data URI video.
func (svc *WorkerService) SetSkillVideo(ctx context.Context, dataURI string) error {
	if err := models.ValidateSkillVideo(dataURI); err != nil {
		return err
	}
	if err := svc.settings.SetSkillVideo(ctx, dataURI); err != nil {
		logger.Log.Errorw("failed to store skill video", "size", len(dataURI), "err", err)
		return err
	}
	return nil
}

// RemoveSkillVideo deletes the stored video. Removing a missing video is a no-op.
func (svc *WorkerService) RemoveSkillVideo(ctx context.Context) error {
	return svc.settings.RemoveSkillVideo(ctx)
}
