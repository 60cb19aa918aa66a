package requests

type SendChatMessage struct {
	Content string `json:"content" validate:"required,max=2000"`
}
