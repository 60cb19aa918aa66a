package konsultasi

import (
	"context"
	"testing"
	"time"

	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockKonsultasiClient struct {
	mock.Mock
}

func (m *mockKonsultasiClient) FindAllByUser(ctx context.Context, token string) ([]responses.Consultation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Consultation), args.Error(1)
}

func (m *mockKonsultasiClient) CreateConsultation(ctx context.Context, token string, request *requests.CreateConsultation) (*responses.Consultation, error) {
	args := m.Called(ctx, token, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Consultation), args.Error(1)
}

func (m *mockKonsultasiClient) RescheduleConsultation(ctx context.Context, token, consultationID string, request *requests.RescheduleConsultation) (*responses.Consultation, error) {
	args := m.Called(ctx, token, consultationID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Consultation), args.Error(1)
}

func (m *mockKonsultasiClient) CancelConsultation(ctx context.Context, token, consultationID string) error {
	args := m.Called(ctx, token, consultationID)
	return args.Error(0)
}

func (m *mockKonsultasiClient) CreateScheduleSlots(ctx context.Context, token string, slots []requests.ScheduleSlot) error {
	args := m.Called(ctx, token, slots)
	return args.Error(0)
}

func day(dayOfMonth, hour int) time.Time {
	return time.Date(2025, 5, dayOfMonth, hour, 0, 0, 0, time.UTC)
}

func TestFilterConsultations(t *testing.T) {
	consultations := []responses.Consultation{
		{ID: "c1", Status: "REQUESTED", StartTime: day(10, 9)},
		{ID: "c2", Status: "CONFIRMED", StartTime: day(12, 9)},
		{ID: "c3", Status: "CONFIRMED", StartTime: day(14, 9)},
		{ID: "c4", Status: "DONE", StartTime: day(20, 9)},
	}

	ids := func(list []responses.Consultation) []string {
		var out []string
		for _, c := range list {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, filterConsultations(consultations, &requests.ConsultationQuery{}), 4)
		assert.Len(t, filterConsultations(consultations, nil), 4)
	})

	t.Run("by status", func(t *testing.T) {
		filtered := filterConsultations(consultations, &requests.ConsultationQuery{Status: "CONFIRMED"})
		assert.Equal(t, []string{"c2", "c3"}, ids(filtered))
	})

	t.Run("by window", func(t *testing.T) {
		filtered := filterConsultations(consultations, &requests.ConsultationQuery{From: day(11, 0), To: day(15, 0)})
		assert.Equal(t, []string{"c2", "c3"}, ids(filtered))
	})

	t.Run("status and window combined", func(t *testing.T) {
		filtered := filterConsultations(consultations, &requests.ConsultationQuery{Status: "DONE", From: day(11, 0)})
		assert.Equal(t, []string{"c4"}, ids(filtered))
	})
}

func TestGenerateScheduleSlots(t *testing.T) {
	// 2025-05-20 is a Tuesday
	now := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	t.Run("expands weekly window into slots", func(t *testing.T) {
		slots, err := generateScheduleSlots(&requests.GenerateSchedule{
			Weekday:              "WEDNESDAY",
			StartTime:            "09:00",
			EndTime:              "11:00",
			SlotDurationInMinute: 30,
			WeeksAhead:           2,
		}, now)
		require.NoError(t, err)
		require.Len(t, slots, 8)

		assert.Equal(t, time.Date(2025, 5, 21, 9, 0, 0, 0, time.UTC), slots[0].StartTime)
		assert.Equal(t, time.Date(2025, 5, 21, 9, 30, 0, 0, time.UTC), slots[0].EndTime)
		assert.Equal(t, time.Date(2025, 5, 21, 10, 30, 0, 0, time.UTC), slots[3].StartTime)
		// second week lands exactly seven days later
		assert.Equal(t, time.Date(2025, 5, 28, 9, 0, 0, 0, time.UTC), slots[4].StartTime)
	})

	t.Run("same weekday starts next week", func(t *testing.T) {
		slots, err := generateScheduleSlots(&requests.GenerateSchedule{
			Weekday:              "TUESDAY",
			StartTime:            "09:00",
			EndTime:              "10:00",
			SlotDurationInMinute: 60,
			WeeksAhead:           1,
		}, now)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, time.Date(2025, 5, 27, 9, 0, 0, 0, time.UTC), slots[0].StartTime)
	})

	t.Run("partial tail slot is dropped", func(t *testing.T) {
		slots, err := generateScheduleSlots(&requests.GenerateSchedule{
			Weekday:              "FRIDAY",
			StartTime:            "09:00",
			EndTime:              "10:10",
			SlotDurationInMinute: 30,
			WeeksAhead:           1,
		}, now)
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := generateScheduleSlots(&requests.GenerateSchedule{
			Weekday:              "MONDAY",
			StartTime:            "11:00",
			EndTime:              "09:00",
			SlotDurationInMinute: 30,
			WeeksAhead:           1,
		}, now)
		assert.Error(t, err)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		_, err := generateScheduleSlots(&requests.GenerateSchedule{
			Weekday:              "MONDAY",
			StartTime:            "nine",
			EndTime:              "10:00",
			SlotDurationInMinute: 30,
			WeeksAhead:           1,
		}, now)
		assert.Error(t, err)
	})
}

func TestPublishSchedule_SendsSlotsToBackend(t *testing.T) {
	ctx := context.Background()
	client := new(mockKonsultasiClient)
	usecase := &konsultasiUsecase{
		client: client,
		log:    zap.NewNop(),
		nowFn: func() time.Time {
			return time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
		},
	}

	client.On("CreateScheduleSlots", mock.Anything, "token-1", mock.MatchedBy(func(slots []requests.ScheduleSlot) bool {
		return len(slots) == 4
	})).Return(nil)

	published, err := usecase.PublishSchedule(ctx, "token-1", &requests.GenerateSchedule{
		Weekday:              "WEDNESDAY",
		StartTime:            "09:00",
		EndTime:              "11:00",
		SlotDurationInMinute: 30,
		WeeksAhead:           1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, published.SlotCount)
	client.AssertExpectations(t)
}

func TestFindConsultations_AppliesFilter(t *testing.T) {
	ctx := context.Background()
	client := new(mockKonsultasiClient)
	usecase := &konsultasiUsecase{client: client, log: zap.NewNop(), nowFn: time.Now}

	client.On("FindAllByUser", mock.Anything, "token-1").Return([]responses.Consultation{
		{ID: "c1", Status: "REQUESTED", StartTime: day(10, 9)},
		{ID: "c2", Status: "CONFIRMED", StartTime: day(12, 9)},
	}, nil)

	consultations, err := usecase.FindConsultations(ctx, "token-1", &requests.ConsultationQuery{Status: "CONFIRMED"})
	require.NoError(t, err)
	require.Len(t, consultations, 1)
	assert.Equal(t, "c2", consultations[0].ID)
}
