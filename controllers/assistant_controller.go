package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wayfarer-app/api-go/llm"
	"github.com/wayfarer-app/api-go/places"
	"github.com/wayfarer-app/api-go/types"
)

const (
	maxAssistantTurns     = 6
	maxAssistantToolCalls = 8
)

const assistantSystemPrompt = "You are a place discovery assistant. Use the find_places tool " +
	"to answer questions about places; never invent place details. Keep answers short."

// AssistantController exposes the chat endpoint. The model may call the
// find_places tool; tool arguments are routed through the same orchestration
// engine as the direct search endpoint.
type AssistantController struct {
	LLM    *llm.Client
	Places *places.Service
	Logger zerolog.Logger
}

func NewAssistantController(client *llm.Client, service *places.Service, logger zerolog.Logger) *AssistantController {
	return &AssistantController{LLM: client, Places: service, Logger: logger}
}

// Chat godoc
// @Summary Converse with the place assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body types.ChatRequest true "User message"
// @Success 200 {object} types.ChatResponse
// @Router /assistant/chat [post]
func (ac *AssistantController) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	messages := []llm.Message{
		{Role: "system", Content: assistantSystemPrompt},
		{Role: "user", Content: req.Message},
	}

	reply, toolCalls, err := ac.runToolLoop(c.Request.Context(), messages)
	if err != nil {
		ac.Logger.Error().Err(err).Str("conversation_id", conversationID).Msg("Assistant conversation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable", "success": false})
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Reply:          reply,
		ConversationID: conversationID,
		ToolCalls:      toolCalls,
	})
}

// runToolLoop alternates between the model and tool execution until the model
// produces a plain answer or a cap is hit.
func (ac *AssistantController) runToolLoop(ctx context.Context, messages []llm.Message) (string, []types.ChatToolCall, error) {
	tools := []llm.Tool{llm.FindPlacesTool()}
	var executed []types.ChatToolCall

	for turn := 0; turn < maxAssistantTurns; turn++ {
		msg, err := ac.LLM.ChatCompletion(ctx, messages, tools)
		if err != nil {
			return "", nil, err
		}

		if len(msg.ToolCalls) == 0 {
			return msg.Content, executed, nil
		}

		messages = append(messages, *msg)
		for _, call := range msg.ToolCalls {
			if len(executed) >= maxAssistantToolCalls {
				return "", nil, fmt.Errorf("exceeded maximum tool calls (%d)", maxAssistantToolCalls)
			}

			result := ac.executeToolCall(ctx, call)
			executed = append(executed, types.ChatToolCall{
				Tool:      call.Function.Name,
				Arguments: call.Function.Arguments,
				Result:    result,
			})
			messages = append(messages, llm.Message{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return "", nil, fmt.Errorf("exceeded maximum turns (%d)", maxAssistantTurns)
}

// executeToolCall runs one find_places call and returns its JSON result. Tool
// failures are reported back to the model as text so it can recover or
// apologize instead of aborting the conversation.
func (ac *AssistantController) executeToolCall(ctx context.Context, call llm.ToolCall) string {
	if call.Function.Name != llm.FindPlacesToolName {
		return `{"error":"unknown tool"}`
	}

	req, err := llm.DecodeFindPlacesArgs(call.Function.Arguments)
	if err != nil {
		return `{"error":"invalid arguments"}`
	}

	result, err := ac.Places.Find(ctx, req)
	if err != nil {
		ac.Logger.Warn().Err(err).Msg("Assistant tool call failed")
		payload, _ := json.Marshal(gin.H{"error": err.Error()})
		return string(payload)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return `{"error":"failed to encode result"}`
	}
	return string(payload)
}
