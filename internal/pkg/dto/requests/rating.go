package requests

type SubmitRating struct {
	ConsultationID string `json:"consultationId" validate:"required"`
	Score          int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment        string `json:"comment" validate:"max=1000"`
}
