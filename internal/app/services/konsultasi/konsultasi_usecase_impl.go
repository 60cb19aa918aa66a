package konsultasi

import (
	"context"
	"fmt"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"pandacare-gateway/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

const scheduleTimeLayout = "15:04"

var weekdays = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

type konsultasiUsecase struct {
	client contracts.KonsultasiClient
	log    *zap.Logger
	nowFn  func() time.Time
}

var (
	konsultasiUsecaseInstance *konsultasiUsecase
	onceKonsultasiUsecase     sync.Once
)

func NewKonsultasiUsecase(client contracts.KonsultasiClient, logger *zap.Logger) contracts.KonsultasiUsecase {
	onceKonsultasiUsecase.Do(func() {
		konsultasiUsecaseInstance = &konsultasiUsecase{
			client: client,
			log:    logger,
			nowFn:  time.Now,
		}
	})
	return konsultasiUsecaseInstance
}

func (u *konsultasiUsecase) FindConsultations(ctx context.Context, token string, query *requests.ConsultationQuery) ([]responses.Consultation, error) {
	consultations, err := u.client.FindAllByUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return filterConsultations(consultations, query), nil
}

func (u *konsultasiUsecase) BookConsultation(ctx context.Context, token string, request *requests.CreateConsultation) (*responses.Consultation, error) {
	return u.client.CreateConsultation(ctx, token, request)
}

func (u *konsultasiUsecase) RescheduleConsultation(ctx context.Context, token, consultationID string, request *requests.RescheduleConsultation) (*responses.Consultation, error) {
	return u.client.RescheduleConsultation(ctx, token, consultationID, request)
}

func (u *konsultasiUsecase) CancelConsultation(ctx context.Context, token, consultationID string) error {
	return u.client.CancelConsultation(ctx, token, consultationID)
}

func (u *konsultasiUsecase) PublishSchedule(ctx context.Context, token string, request *requests.GenerateSchedule) (*responses.SchedulePublished, error) {
	slots, err := generateScheduleSlots(request, u.nowFn())
	if err != nil {
		return nil, err
	}
	if err := u.client.CreateScheduleSlots(ctx, token, slots); err != nil {
		return nil, err
	}
	u.log.Info("konsultasiUsecase.PublishSchedule",
		zap.String("weekday", request.Weekday),
		zap.Int("slot_count", len(slots)),
	)
	return &responses.SchedulePublished{SlotCount: len(slots)}, nil
}

// filterConsultations narrows a list by status and by start-time window.
// Zero-valued query fields are no-ops; the full list passes through an
// empty query untouched.
func filterConsultations(consultations []responses.Consultation, query *requests.ConsultationQuery) []responses.Consultation {
	if query == nil {
		return consultations
	}
	filtered := make([]responses.Consultation, 0, len(consultations))
	for _, consultation := range consultations {
		if query.Status != "" && consultation.Status != query.Status {
			continue
		}
		if !query.From.IsZero() && consultation.StartTime.Before(query.From) {
			continue
		}
		if !query.To.IsZero() && consultation.StartTime.After(query.To) {
			continue
		}
		filtered = append(filtered, consultation)
	}
	return filtered
}

// generateScheduleSlots expands a weekly availability window into concrete
// bookable slots for the coming weeks. Only whole slots are emitted; a
// window not divisible by the slot duration loses its tail.
func generateScheduleSlots(request *requests.GenerateSchedule, now time.Time) ([]requests.ScheduleSlot, error) {
	weekday, ok := weekdays[request.Weekday]
	if !ok {
		return nil, exceptions.WrapWithError(
			fmt.Errorf("unknown weekday: %q", request.Weekday),
			constvars.StatusBadRequest,
			"weekday must be a valid day name",
			constvars.ErrDevValidationFailed,
		)
	}
	start, err := time.Parse(scheduleTimeLayout, request.StartTime)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusBadRequest, "startTime must be in HH:MM format", constvars.ErrDevValidationFailed)
	}
	end, err := time.Parse(scheduleTimeLayout, request.EndTime)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusBadRequest, "endTime must be in HH:MM format", constvars.ErrDevValidationFailed)
	}
	if !end.After(start) {
		return nil, exceptions.WrapWithError(
			fmt.Errorf("endTime %s is not after startTime %s", request.EndTime, request.StartTime),
			constvars.StatusBadRequest,
			"endTime must be after startTime",
			constvars.ErrDevValidationFailed,
		)
	}

	duration := time.Duration(request.SlotDurationInMinute) * time.Minute
	firstDay := nextWeekday(now, weekday)

	var slots []requests.ScheduleSlot
	for week := 0; week < request.WeeksAhead; week++ {
		day := firstDay.AddDate(0, 0, 7*week)
		slotStart := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, now.Location())
		for !slotStart.Add(duration).After(windowEnd) {
			slots = append(slots, requests.ScheduleSlot{
				StartTime: slotStart,
				EndTime:   slotStart.Add(duration),
			})
			slotStart = slotStart.Add(duration)
		}
	}
	return slots, nil
}

// nextWeekday returns the next occurrence of the weekday strictly after the
// given day, so a schedule published on a Monday starts next Monday.
func nextWeekday(now time.Time, weekday time.Weekday) time.Time {
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}
