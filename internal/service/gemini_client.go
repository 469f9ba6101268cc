package service

import (
	"context"
	"errors"
	"time"
	"training-plan-server/config"
	"training-plan-server/internal/util"

	"google.golang.org/genai"
)

// GeminiGenerator : TextGenerator поверх Gemini API
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("[GeminiGenerator] GEMINI_API_KEY не задан")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, util.LogError("[GeminiGenerator] ошибка создания клиента", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// GenerateJSON : один вызов модели без повторов
func (g *GeminiGenerator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", util.LogError("[GeminiGenerator] ошибка запроса к модели", err)
	}

	return resp.Text(), nil
}
