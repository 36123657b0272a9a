package send

type MessageRequest struct {
	Text    string `json:"text" binding:"required"`
	Webhook string `json:"webhook" binding:"required"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
