// Package gateway defines the contract the app consumes from the external
// generative-AI service: one-shot food-image analysis, one-shot diet-plan
// generation, and a streaming chat turn. The model itself is an external
// collaborator; everything it returns is treated as untrusted input.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Alok-2331/NutriSnap/internal/model"
)

type Analyzer interface {
	// AnalyzeFoodImage submits a JPEG payload plus a profile-derived prompt
	// and returns the structured nutrition breakdown. Failures (transport,
	// non-2xx, unparsable content) surface as *AnalysisError.
	AnalyzeFoodImage(ctx context.Context, imageJPEG []byte, profile model.UserProfile) (model.NutritionData, error)
}

type Planner interface {
	// GenerateDietPlan returns a markdown-formatted 7-day plan.
	GenerateDietPlan(ctx context.Context, profile model.UserProfile) (string, error)
}

type ChatStreamer interface {
	// StreamChat sends the role-tagged history and delivers the reply as an
	// ordered sequence of text fragments to onChunk. The context cancels the
	// stream; a non-nil error from onChunk aborts it. Returns only after the
	// stream ends.
	StreamChat(ctx context.Context, history []model.ChatMessage, profile model.UserProfile, onChunk func(chunk string) error) error
}

// Client is the full gateway surface.
type Client interface {
	Analyzer
	Planner
	ChatStreamer
}

// AnalysisError marks a failed or unparsable AI analysis. Callers show a
// retryable message instead of propagating it; no partial state is
// committed.
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// DecodeNutritionData parses a model response into NutritionData. The
// payload may be wrapped in a markdown code fence; fields may be missing.
// Missing or negative numerics become 0 and missing sequences become empty -
// the result is always safe to consume.
func DecodeNutritionData(raw string) (model.NutritionData, error) {
	cleaned := StripCodeFence(raw)
	if strings.TrimSpace(cleaned) == "" {
		return model.NutritionData{}, &AnalysisError{Op: "decode nutrition data", Err: fmt.Errorf("empty response")}
	}

	var data model.NutritionData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return model.NutritionData{}, &AnalysisError{Op: "decode nutrition data", Err: err}
	}

	for _, v := range []*float64{&data.Calories, &data.Protein, &data.Carbs, &data.Fats, &data.Fiber, &data.Sugar} {
		if *v < 0 {
			*v = 0
		}
	}
	if data.Vitamins == nil {
		data.Vitamins = []model.NutrientInfo{}
	}
	for i := range data.Vitamins {
		if data.Vitamins[i].Percent < 0 {
			data.Vitamins[i].Percent = 0
		}
	}
	if data.Minerals == nil {
		data.Minerals = []model.NutrientInfo{}
	}
	for i := range data.Minerals {
		if data.Minerals[i].Percent < 0 {
			data.Minerals[i].Percent = 0
		}
	}
	if data.HealthAdvice.WhoShouldAvoid == nil {
		data.HealthAdvice.WhoShouldAvoid = []string{}
	}
	if data.Alternatives.Healthier == nil {
		data.Alternatives.Healthier = []string{}
	}
	if data.Alternatives.Similar == nil {
		data.Alternatives.Similar = []string{}
	}
	return data, nil
}

// StripCodeFence removes a surrounding ```json ... ``` fence if present.
// Models in JSON mode mostly return bare JSON, but fenced output still
// shows up.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
