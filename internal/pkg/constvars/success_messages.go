package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	ProfileGetSuccess = "get profile successfully"

	// Consultation messages
	ConsultationListSuccess       = "get consultations successfully"
	ConsultationCreatedSuccess    = "consultation successfully booked"
	ConsultationRescheduleSuccess = "consultation successfully rescheduled"
	ConsultationCancelSuccess     = "consultation successfully cancelled"
	SchedulePublishSuccess        = "schedule slots successfully published"

	// Doctor directory messages
	DoctorListSuccess    = "get doctors successfully"
	DoctorProfileSuccess = "get doctor profile successfully"

	// Rating messages
	RatingSubmitSuccess = "rating successfully submitted"
	RatingListSuccess   = "get ratings successfully"

	// Chat messages
	ChatRoomListSuccess    = "get chat rooms successfully"
	ChatMessageListSuccess = "get chat messages successfully"
	ChatMessageSentSuccess = "chat message successfully sent"
)
