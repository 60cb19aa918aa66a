package ratings

import (
	"context"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type ratingUsecase struct {
	client contracts.RatingClient
	log    *zap.Logger
}

var (
	ratingUsecaseInstance *ratingUsecase
	onceRatingUsecase     sync.Once
)

func NewRatingUsecase(client contracts.RatingClient, logger *zap.Logger) contracts.RatingUsecase {
	onceRatingUsecase.Do(func() {
		ratingUsecaseInstance = &ratingUsecase{
			client: client,
			log:    logger,
		}
	})
	return ratingUsecaseInstance
}

func (u *ratingUsecase) SubmitRating(ctx context.Context, token string, request *requests.SubmitRating) (*responses.Rating, error) {
	return u.client.SubmitRating(ctx, token, request)
}

func (u *ratingUsecase) FindDoctorRatings(ctx context.Context, token, doctorID string) (*responses.DoctorRatings, error) {
	ratings, err := u.client.FindRatingsByDoctor(ctx, token, doctorID)
	if err != nil {
		return nil, err
	}
	return aggregateRatings(doctorID, ratings), nil
}

func (u *ratingUsecase) DeleteRating(ctx context.Context, token, ratingID string) error {
	return u.client.DeleteRating(ctx, token, ratingID)
}

// aggregateRatings folds individual ratings into the doctor-level summary
// the UI shows. An empty list yields a zero average, not NaN.
func aggregateRatings(doctorID string, ratings []responses.Rating) *responses.DoctorRatings {
	summary := &responses.DoctorRatings{
		CaregiverID: doctorID,
		Total:       len(ratings),
		Ratings:     ratings,
	}
	if len(ratings) == 0 {
		summary.Ratings = []responses.Rating{}
		return summary
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Score
	}
	summary.Average = float64(sum) / float64(len(ratings))
	return summary
}
