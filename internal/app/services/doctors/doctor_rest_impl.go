package doctors

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/services/shared/backend"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type doctorClient struct {
	caller *backend.Caller
}

var (
	doctorClientInstance *doctorClient
	onceDoctorClient     sync.Once
)

func NewDoctorClient(internalConfig *config.InternalConfig, invalidator contracts.SessionInvalidator, logger *zap.Logger) contracts.DoctorClient {
	onceDoctorClient.Do(func() {
		doctorClientInstance = &doctorClient{
			caller: &backend.Caller{
				Service: constvars.ServiceDoctorList,
				BaseUrl: internalConfig.Services.DoctorListBaseUrl,
				HTTPClient: &http.Client{
					Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
				},
				Invalidator: invalidator,
				Log:         logger,
			},
		}
	})
	return doctorClientInstance
}

func (c *doctorClient) SearchDoctors(ctx context.Context, token string, query *contracts.DoctorSearchQuery) ([]responses.Doctor, error) {
	params := url.Values{}
	if query != nil {
		if query.Name != "" {
			params.Set("name", query.Name)
		}
		if query.Speciality != "" {
			params.Set("speciality", query.Speciality)
		}
		if query.WorkingDay != "" {
			params.Set("workingDay", query.WorkingDay)
		}
	}
	path := "/doctors"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var doctors []responses.Doctor
	if err := c.caller.Do(ctx, constvars.MethodGet, path, token, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *doctorClient) FindDoctorByID(ctx context.Context, token, doctorID string) (*responses.Doctor, error) {
	doctor := new(responses.Doctor)
	path := fmt.Sprintf("/doctors/%s", url.PathEscape(doctorID))
	if err := c.caller.Do(ctx, constvars.MethodGet, path, token, nil, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}
