package responses

import "time"

type ChatRoom struct {
	ID              string    `json:"id"`
	CounterpartID   string    `json:"counterpartId"`
	CounterpartName string    `json:"counterpartName"`
	LastMessage     string    `json:"lastMessage,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ChatMessage struct {
	ID      string    `json:"id"`
	RoomID  string    `json:"roomId"`
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

type ChatMessagePage struct {
	Messages []ChatMessage `json:"messages"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Total    int           `json:"total"`
}
