package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/service"
)

// scriptedStreamer emits chunks, then optionally fails mid-stream.
type scriptedStreamer struct {
	chunks      []string
	failAfter   int // -1 never fails
	seenHistory []model.ChatMessage
}

func (s *scriptedStreamer) StreamChat(ctx context.Context, history []model.ChatMessage, profile model.UserProfile, onChunk func(string) error) error {
	s.seenHistory = history
	for i, c := range s.chunks {
		if s.failAfter >= 0 && i == s.failAfter {
			return errors.New("connection reset")
		}
		if err := onChunk(c); err != nil {
			return err
		}
	}
	if s.failAfter >= 0 && s.failAfter >= len(s.chunks) {
		return errors.New("connection reset")
	}
	return nil
}

func TestSendChatMessageAppendsUserAndModelTurns(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	streamer := &scriptedStreamer{chunks: []string{"Drink ", "water."}, failAfter: -1}
	var streamed string
	reply, err := service.SendChatMessage(context.Background(), st, streamer, "Any tips?", func(chunk string) error {
		streamed += chunk
		return nil
	})
	if err != nil {
		t.Fatalf("send chat message: %v", err)
	}
	if reply.Role != model.RoleModel || reply.Text != "Drink water." {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if streamed != "Drink water." {
		t.Fatalf("expected incremental delivery, got %q", streamed)
	}

	history := st.State().ChatHistory
	if len(history) != 2 {
		t.Fatalf("expected history length 2, got %d", len(history))
	}
	if history[0].Role != model.RoleUser || history[0].Text != "Any tips?" {
		t.Fatalf("unexpected user turn: %+v", history[0])
	}
	if history[1].Text != "Drink water." {
		t.Fatalf("unexpected model turn: %+v", history[1])
	}

	// The streamer sees the history including the new user turn.
	if len(streamer.seenHistory) != 1 || streamer.seenHistory[0].Text != "Any tips?" {
		t.Fatalf("unexpected history passed to streamer: %+v", streamer.seenHistory)
	}
}

func TestSendChatMessageStreamFailureAppendsFallback(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.UpdateChatHistory([]model.ChatMessage{
		{Role: model.RoleUser, Text: "hello", Timestamp: 1},
		{Role: model.RoleModel, Text: "hi!", Timestamp: 2},
	}); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	before := len(st.State().ChatHistory)

	// Fails after delivering one chunk: the partial reply must be discarded.
	streamer := &scriptedStreamer{chunks: []string{"Well, "}, failAfter: 1}
	reply, err := service.SendChatMessage(context.Background(), st, streamer, "And protein?", nil)
	if err == nil {
		t.Fatalf("expected stream error to be reported")
	}
	if reply.Role != model.RoleModel || reply.Text != service.ChatFallbackMessage {
		t.Fatalf("expected fallback model turn, got %+v", reply)
	}

	history := st.State().ChatHistory
	if len(history) != before+2 {
		t.Fatalf("expected history to grow by exactly 2, got %d -> %d", before, len(history))
	}
	fallbacks := 0
	for _, m := range history {
		if m.Text == service.ChatFallbackMessage {
			fallbacks++
		}
	}
	if fallbacks != 1 {
		t.Fatalf("expected exactly one fallback message, got %d", fallbacks)
	}
}

func TestSendChatMessageRejectsEmptyText(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := service.SendChatMessage(context.Background(), st, &scriptedStreamer{failAfter: -1}, "   ", nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if got := len(st.State().ChatHistory); got != 0 {
		t.Fatalf("expected untouched history, got %d messages", got)
	}
}
