package konsultasi

import (
	"context"
	"fmt"
	"net/http"
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

type konsultasiClient struct {
	caller *backend.Caller
}

var (
	konsultasiClientInstance *konsultasiClient
	onceKonsultasiClient     sync.Once
)

func NewKonsultasiClient(internalConfig *config.InternalConfig, invalidator contracts.SessionInvalidator, logger *zap.Logger) contracts.KonsultasiClient {
	onceKonsultasiClient.Do(func() {
		konsultasiClientInstance = &konsultasiClient{
			caller: &backend.Caller{
				Service: constvars.ServiceKonsultasi,
				BaseUrl: internalConfig.Services.KonsultasiBaseUrl,
				HTTPClient: &http.Client{
					Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
				},
				Invalidator: invalidator,
				Log:         logger,
			},
		}
	})
	return konsultasiClientInstance
}

func (c *konsultasiClient) FindAllByUser(ctx context.Context, token string) ([]responses.Consultation, error) {
	var consultations []responses.Consultation
	if err := c.caller.Do(ctx, constvars.MethodGet, "/consultations", token, nil, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

func (c *konsultasiClient) CreateConsultation(ctx context.Context, token string, request *requests.CreateConsultation) (*responses.Consultation, error) {
	consultation := new(responses.Consultation)
	if err := c.caller.Do(ctx, constvars.MethodPost, "/consultations", token, request, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (c *konsultasiClient) RescheduleConsultation(ctx context.Context, token, consultationID string, request *requests.RescheduleConsultation) (*responses.Consultation, error) {
	consultation := new(responses.Consultation)
	path := fmt.Sprintf("/consultations/%s/reschedule", consultationID)
	if err := c.caller.Do(ctx, constvars.MethodPatch, path, token, request, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (c *konsultasiClient) CancelConsultation(ctx context.Context, token, consultationID string) error {
	path := fmt.Sprintf("/consultations/%s", consultationID)
	return c.caller.Do(ctx, constvars.MethodDelete, path, token, nil, nil)
}

func (c *konsultasiClient) CreateScheduleSlots(ctx context.Context, token string, slots []requests.ScheduleSlot) error {
	return c.caller.Do(ctx, constvars.MethodPost, "/schedules/slots", token, slots, nil)
}
