package responses

import "time"

type Consultation struct {
	ID            string    `json:"id"`
	CaregiverID   string    `json:"caregiverId"`
	CaregiverName string    `json:"caregiverName"`
	PacilianID    string    `json:"pacilianId"`
	Status        string    `json:"status"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Note          string    `json:"note,omitempty"`
}

type SchedulePublished struct {
	SlotCount int `json:"slotCount"`
}
