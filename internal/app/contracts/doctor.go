package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/dto/responses"
)

// DoctorSearchQuery mirrors the doctor-directory service's search params.
type DoctorSearchQuery struct {
	Name       string
	Speciality string
	WorkingDay string
}

type DoctorClient interface {
	SearchDoctors(ctx context.Context, token string, query *DoctorSearchQuery) ([]responses.Doctor, error)
	FindDoctorByID(ctx context.Context, token, doctorID string) (*responses.Doctor, error)
}
