package requests

import "time"

type CreateConsultation struct {
	CaregiverID string `json:"caregiverId" validate:"required"`
	ScheduleID  string `json:"scheduleId" validate:"required"`
	Note        string `json:"note" validate:"max=500"`
}

type RescheduleConsultation struct {
	NewScheduleID string `json:"newScheduleId" validate:"required"`
}

// ConsultationQuery narrows a consultation list on the gateway side. All
// fields are optional; zero values mean "no filter".
type ConsultationQuery struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Status string    `json:"status" validate:"omitempty,oneof=REQUESTED CONFIRMED RESCHEDULED REJECTED DONE"`
}

// GenerateSchedule describes a weekly availability window a caregiver wants
// expanded into concrete bookable slots.
type GenerateSchedule struct {
	Weekday              string `json:"weekday" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime            string `json:"startTime" validate:"required"`
	EndTime              string `json:"endTime" validate:"required"`
	SlotDurationInMinute int    `json:"slotDurationInMinute" validate:"required,gte=15,lte=120"`
	WeeksAhead           int    `json:"weeksAhead" validate:"required,gte=1,lte=12"`
}

type ScheduleSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
