package responses

import "time"

type Rating struct {
	ID             string    `json:"id"`
	ConsultationID string    `json:"consultationId"`
	CaregiverID    string    `json:"caregiverId"`
	PacilianID     string    `json:"pacilianId"`
	Score          int       `json:"score"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DoctorRatings struct {
	CaregiverID string   `json:"caregiverId"`
	Average     float64  `json:"average"`
	Total       int      `json:"total"`
	Ratings     []Rating `json:"ratings"`
}
