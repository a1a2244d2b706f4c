package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/pkg/entity"
)

// Fasts shorter than this are snacks, not fasts.
const minRecordedFast = time.Hour

var protocolHours = map[entity.FastingProtocol]float64{
	entity.Protocol12x12: 12,
	entity.Protocol14x10: 14,
	entity.Protocol16x8:  16,
	entity.Protocol18x6:  18,
	entity.Protocol20x4:  20,
}

type FastingService struct {
	fasting repository.FastingRepositoryI
	logs    repository.DailyLogsRepositoryI
	clock   Clock
}

func NewFastingService(fastingRepo repository.FastingRepositoryI, logsRepo repository.DailyLogsRepositoryI, clock Clock) *FastingService {
	if fastingRepo == nil {
		log.Fatal("provided nil fastingRepo")
	}
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	return &FastingService{
		fasting: fastingRepo,
		logs:    logsRepo,
		clock:   clock,
	}
}

func (fs *FastingService) GetFastingState(ctx context.Context, uid uuid.UUID) (*entity.FastingState, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	state, err := fs.fasting.GetState(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if state == nil {
		def := entity.DefaultFastingState()
		return &def, nil
	}
	return state, nil
}

func (fs *FastingService) UpdateFastingConfig(ctx context.Context, uid uuid.UUID, req FastingConfigRequest) (*entity.FastingState, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	hours, ok := protocolHours[req.Protocol]
	if !ok {
		if req.CustomHours <= 0 {
			return nil, errors.Join(errorvalues.ErrValidation, errors.New("custom protocol needs positive hours"))
		}
		hours = req.CustomHours
	}
	state, err := fs.GetFastingState(ctx, uid)
	if err != nil {
		return nil, err
	}
	state.Config = entity.FastingConfig{
		Protocol:        req.Protocol,
		TargetFastHours: hours,
	}
	if err = fs.fasting.SaveState(ctx, uid, state); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return state, nil
}

func (fs *FastingService) GetFastingHistory(ctx context.Context, uid uuid.UUID) ([]entity.FastingEntry, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrNotAuthenticated
	}
	history, err := fs.fasting.GetHistory(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if history == nil {
		history = []entity.FastingEntry{}
	}
	return history, nil
}

// RecordMeal ends the running fast at `at` and starts a new one.
// Returns the completed fast, or nil when there was no fast long enough to keep.
func (fs *FastingService) RecordMeal(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.FastingEntry, error) {
	state, err := fs.GetFastingState(ctx, uid)
	if err != nil {
		return nil, err
	}
	var entry *entity.FastingEntry
	if state.LastAteTime != nil && at.Sub(*state.LastAteTime) >= minRecordedFast {
		hours := at.Sub(*state.LastAteTime).Hours()
		entry = &entity.FastingEntry{
			ID:            uuid.New(),
			StartTime:     *state.LastAteTime,
			EndTime:       at,
			DurationHours: hours,
			IsSuccess:     hours >= state.Config.TargetFastHours,
		}
		if err = fs.fasting.AddEntry(ctx, uid, entry); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if err = fs.raiseMaxFasting(ctx, uid, fs.clock.DateOf(at), hours); err != nil {
			return nil, err
		}
	}
	if state.LastAteTime == nil || at.After(*state.LastAteTime) {
		ate := at
		state.LastAteTime = &ate
		if err = fs.fasting.SaveState(ctx, uid, state); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	return entry, nil
}

func (fs *FastingService) raiseMaxFasting(ctx context.Context, uid uuid.UUID, date string, hours float64) error {
	dl, err := fs.logs.Get(ctx, uid, date)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if dl == nil {
		dl = emptyLog(date)
	}
	if dl.MaxFastingHours != nil && *dl.MaxFastingHours >= hours {
		return nil
	}
	dl.MaxFastingHours = &hours
	if err = fs.logs.Save(ctx, uid, dl); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func emptyLog(date string) *entity.DailyLog {
	return &entity.DailyLog{
		Date:     date,
		Items:    []entity.FoodLogItem{},
		Workouts: []entity.WorkoutItem{},
	}
}
