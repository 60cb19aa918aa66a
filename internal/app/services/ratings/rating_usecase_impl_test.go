package ratings

import (
	"context"
	"testing"

	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRatingClient struct {
	mock.Mock
}

func (m *mockRatingClient) SubmitRating(ctx context.Context, token string, request *requests.SubmitRating) (*responses.Rating, error) {
	args := m.Called(ctx, token, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Rating), args.Error(1)
}

func (m *mockRatingClient) FindRatingsByDoctor(ctx context.Context, token, doctorID string) ([]responses.Rating, error) {
	args := m.Called(ctx, token, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Rating), args.Error(1)
}

func (m *mockRatingClient) DeleteRating(ctx context.Context, token, ratingID string) error {
	args := m.Called(ctx, token, ratingID)
	return args.Error(0)
}

func TestAggregateRatings(t *testing.T) {
	t.Run("averages scores", func(t *testing.T) {
		summary := aggregateRatings("dok-1", []responses.Rating{
			{ID: "r1", Score: 5},
			{ID: "r2", Score: 4},
			{ID: "r3", Score: 2},
		})
		assert.Equal(t, "dok-1", summary.CaregiverID)
		assert.Equal(t, 3, summary.Total)
		assert.InDelta(t, 3.6666, summary.Average, 0.001)
	})

	t.Run("empty list yields zero average", func(t *testing.T) {
		summary := aggregateRatings("dok-2", nil)
		assert.Equal(t, 0, summary.Total)
		assert.Equal(t, 0.0, summary.Average)
		assert.NotNil(t, summary.Ratings)
	})
}

func TestFindDoctorRatings(t *testing.T) {
	ctx := context.Background()
	client := new(mockRatingClient)
	usecase := &ratingUsecase{client: client, log: zap.NewNop()}

	client.On("FindRatingsByDoctor", mock.Anything, "token-1", "dok-1").Return([]responses.Rating{
		{ID: "r1", Score: 4},
		{ID: "r2", Score: 5},
	}, nil)

	summary, err := usecase.FindDoctorRatings(ctx, "token-1", "dok-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.InDelta(t, 4.5, summary.Average, 0.001)
	client.AssertExpectations(t)
}
