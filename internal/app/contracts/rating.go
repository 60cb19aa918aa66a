package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
)

type RatingClient interface {
	SubmitRating(ctx context.Context, token string, request *requests.SubmitRating) (*responses.Rating, error)
	FindRatingsByDoctor(ctx context.Context, token, doctorID string) ([]responses.Rating, error)
	DeleteRating(ctx context.Context, token, ratingID string) error
}

type RatingUsecase interface {
	SubmitRating(ctx context.Context, token string, request *requests.SubmitRating) (*responses.Rating, error)
	FindDoctorRatings(ctx context.Context, token, doctorID string) (*responses.DoctorRatings, error)
	DeleteRating(ctx context.Context, token, ratingID string) error
}
