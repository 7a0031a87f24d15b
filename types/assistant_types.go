package types

type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversationId"`
}

type ChatToolCall struct {
	Tool      string `json:"tool"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
}

type ChatResponse struct {
	Reply          string         `json:"reply"`
	ConversationID string         `json:"conversationId"`
	ToolCalls      []ChatToolCall `json:"toolCalls,omitempty"`
}
