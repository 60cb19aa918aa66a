package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
)

type KonsultasiClient interface {
	FindAllByUser(ctx context.Context, token string) ([]responses.Consultation, error)
	CreateConsultation(ctx context.Context, token string, request *requests.CreateConsultation) (*responses.Consultation, error)
	RescheduleConsultation(ctx context.Context, token, consultationID string, request *requests.RescheduleConsultation) (*responses.Consultation, error)
	CancelConsultation(ctx context.Context, token, consultationID string) error
	CreateScheduleSlots(ctx context.Context, token string, slots []requests.ScheduleSlot) error
}

type KonsultasiUsecase interface {
	FindConsultations(ctx context.Context, token string, query *requests.ConsultationQuery) ([]responses.Consultation, error)
	BookConsultation(ctx context.Context, token string, request *requests.CreateConsultation) (*responses.Consultation, error)
	RescheduleConsultation(ctx context.Context, token, consultationID string, request *requests.RescheduleConsultation) (*responses.Consultation, error)
	CancelConsultation(ctx context.Context, token, consultationID string) error
	PublishSchedule(ctx context.Context, token string, request *requests.GenerateSchedule) (*responses.SchedulePublished, error)
}
