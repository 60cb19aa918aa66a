package ratings

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/services/shared/backend"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ratingClient struct {
	caller *backend.Caller
}

var (
	ratingClientInstance *ratingClient
	onceRatingClient     sync.Once
)

func NewRatingClient(internalConfig *config.InternalConfig, invalidator contracts.SessionInvalidator, logger *zap.Logger) contracts.RatingClient {
	onceRatingClient.Do(func() {
		ratingClientInstance = &ratingClient{
			caller: &backend.Caller{
				Service: constvars.ServiceRating,
				BaseUrl: internalConfig.Services.RatingBaseUrl,
				HTTPClient: &http.Client{
					Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
				},
				Invalidator: invalidator,
				Log:         logger,
			},
		}
	})
	return ratingClientInstance
}

func (c *ratingClient) SubmitRating(ctx context.Context, token string, request *requests.SubmitRating) (*responses.Rating, error) {
	rating := new(responses.Rating)
	if err := c.caller.Do(ctx, constvars.MethodPost, "/ratings", token, request, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (c *ratingClient) FindRatingsByDoctor(ctx context.Context, token, doctorID string) ([]responses.Rating, error) {
	var ratings []responses.Rating
	path := fmt.Sprintf("/ratings/doctor/%s", url.PathEscape(doctorID))
	if err := c.caller.Do(ctx, constvars.MethodGet, path, token, nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (c *ratingClient) DeleteRating(ctx context.Context, token, ratingID string) error {
	path := fmt.Sprintf("/ratings/%s", url.PathEscape(ratingID))
	return c.caller.Do(ctx, constvars.MethodDelete, path, token, nil, nil)
}
