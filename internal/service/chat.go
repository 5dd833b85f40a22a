package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alok-2331/NutriSnap/internal/gateway"
	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

// ChatFallbackMessage is appended as a model turn whenever the stream fails,
// so the conversation stays consistent and the user can keep chatting.
const ChatFallbackMessage = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment."

// SendChatMessage appends the user's turn to the persisted history, streams
// the assistant reply through onChunk while accumulating it, and appends the
// final model turn. On any mid-stream failure the partial reply is discarded
// and the fixed fallback message is appended instead - history always grows
// by exactly two messages. The returned error is the stream failure (nil on
// success); the fallback has already been committed when it is non-nil.
func SendChatMessage(ctx context.Context, st *store.Store, streamer gateway.ChatStreamer, text string, onChunk func(chunk string) error) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, fmt.Errorf("message text is required")
	}

	state := st.State()
	userMsg := model.ChatMessage{
		Role:      model.RoleUser,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	history := append(state.ChatHistory, userMsg)
	if err := st.UpdateChatHistory(history); err != nil {
		return model.ChatMessage{}, err
	}

	var reply strings.Builder
	streamErr := streamer.StreamChat(ctx, history, state.Profile, func(chunk string) error {
		reply.WriteString(chunk)
		if onChunk != nil {
			return onChunk(chunk)
		}
		return nil
	})

	modelMsg := model.ChatMessage{
		Role:      model.RoleModel,
		Text:      reply.String(),
		Timestamp: time.Now().UnixMilli(),
	}
	if streamErr != nil {
		modelMsg.Text = ChatFallbackMessage
	}

	if err := st.UpdateChatHistory(append(history, modelMsg)); err != nil {
		return model.ChatMessage{}, err
	}
	return modelMsg, streamErr
}
