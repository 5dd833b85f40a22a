// Package gemini implements the AI gateway on Google's Gemini models via
// langchaingo.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"github.com/Alok-2331/NutriSnap/internal/gateway"
	"github.com/Alok-2331/NutriSnap/internal/model"
)

const DefaultModel = "gemini-3-flash-preview"

type Client struct {
	llm llms.Model
}

// New builds a gateway client. The API key comes from process configuration
// and is never stored.
func New(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing Gemini API key (set GEMINI_API_KEY)")
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = DefaultModel
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Client{llm: llm}, nil
}

// NewWithModel wires an arbitrary llms.Model; used by tests.
func NewWithModel(llm llms.Model) *Client {
	return &Client{llm: llm}
}

func (c *Client) AnalyzeFoodImage(ctx context.Context, imageJPEG []byte, profile model.UserProfile) (model.NutritionData, error) {
	if len(imageJPEG) == 0 {
		return model.NutritionData{}, &gateway.AnalysisError{Op: "analyze food image", Err: fmt.Errorf("empty image payload")}
	}

	prompt := fmt.Sprintf(`Analyze this food item for a user with the following profile:
Age: %d, Gender: %s, Weight: %.0fkg, Height: %.0fcm, Goal: %s.
Provide detailed nutritional information including the percentage of recommended daily intake for vitamins and minerals based on the user's specific demographics.
Provide health advice and healthier alternatives in a structured JSON format.

Respond with a single JSON object using exactly these fields:
name (string), calories, protein, carbs, fats, fiber, sugar (numbers),
vitamins and minerals (arrays of {"name": string, "percent": number}),
healthAdvice {"isHealthy": boolean, "reasoning": string, "whoShouldAvoid": [string], "bestTimeToEat": string, "portionRecommendation": string},
alternatives {"healthier": [string], "similar": [string]}.`,
		profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm, profile.Goal)

	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart("image/jpeg", imageJPEG),
				llms.TextPart(prompt),
			},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, content, llms.WithJSONMode())
	if err != nil {
		return model.NutritionData{}, &gateway.AnalysisError{Op: "analyze food image", Err: err}
	}
	text, err := firstChoice(resp)
	if err != nil {
		return model.NutritionData{}, &gateway.AnalysisError{Op: "analyze food image", Err: err}
	}
	return gateway.DecodeNutritionData(text)
}

func (c *Client) GenerateDietPlan(ctx context.Context, profile model.UserProfile) (string, error) {
	prompt := fmt.Sprintf(`Generate a personalized 7-day diet plan for a user:
Age: %d, Gender: %s, Weight: %.0fkg, Height: %.0fcm, Goal: %s.
Focus on balanced nutrition, easy-to-find ingredients, and calorie goals suitable for their %s objective.
Format the output in professional markdown with clear daily sections.`,
		profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm, profile.Goal, profile.Goal)

	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		return "", fmt.Errorf("generate diet plan: %w", err)
	}
	return firstChoice(resp)
}

func (c *Client) StreamChat(ctx context.Context, history []model.ChatMessage, profile model.UserProfile, onChunk func(string) error) error {
	system := fmt.Sprintf(`You are NutriSnap AI Assistant, a world-class certified nutritionist and fitness coach.
User Profile: Name: %s, Goal: %s, Weight: %.0fkg, Age: %d.
Be encouraging, professional, and concise. Provide actionable advice based on science.
If asked for medical diagnosis, kindly suggest consulting a doctor.
Use markdown for formatting (bold, lists) but keep responses relatively short.`,
		profile.Name, profile.Goal, profile.WeightKg, profile.Age)

	content := make([]llms.MessageContent, 0, len(history)+1)
	content = append(content, llms.TextParts(schema.ChatMessageTypeSystem, system))
	for _, msg := range history {
		role := schema.ChatMessageTypeHuman
		if msg.Role == model.RoleModel {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Text))
	}

	_, err := c.llm.GenerateContent(ctx, content,
		llms.WithTemperature(0.7),
		llms.WithTopP(0.95),
		llms.WithTopK(40),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if len(chunk) == 0 {
				return nil
			}
			return onChunk(string(chunk))
		}),
	)
	if err != nil {
		return fmt.Errorf("stream chat response: %w", err)
	}
	return nil
}

func firstChoice(resp *llms.ContentResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}
