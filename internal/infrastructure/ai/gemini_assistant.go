package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tractus/internal/infrastructure/metrics"
	"tractus/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyResponse = errors.New("empty response from model")
)

const (
	promptCorrigir = "Você revisa textos técnicos em português do Brasil de uma empresa de manutenção de máquinas pesadas. " +
		"Corrija ortografia, acentuação, pontuação e concordância. Mantenha o sentido, os termos técnicos, números e medidas. " +
		"Responda apenas com o texto corrigido, sem comentários."
	promptResumir = "Você resume anotações de relacionamento com clientes de uma empresa de máquinas pesadas. " +
		"Produza um resumo objetivo em português do Brasil, em no máximo 5 frases, destacando pendências e próximos passos. " +
		"Responda apenas com o resumo."
)

// generator is the slice of the genai client the assistant needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant implements the text assistant on the Gemini API.
type GeminiAssistant struct {
	models  generator
	model   string
	metrics *metrics.Metrics
}

var _ interfaces.ITextAssistant = (*GeminiAssistant)(nil)

func NewGeminiAssistant(ctx context.Context, apiKey, model string, m *metrics.Metrics) (*GeminiAssistant, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGeminiAssistant(client.Models, model, m), nil
}

func newGeminiAssistant(models generator, model string, m *metrics.Metrics) *GeminiAssistant {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiAssistant{models: models, model: model, metrics: m}
}

func (a *GeminiAssistant) Corrigir(ctx context.Context, texto string) (string, error) {
	return a.generate(ctx, "corrigir", promptCorrigir, texto)
}

func (a *GeminiAssistant) Resumir(ctx context.Context, textos []string) (string, error) {
	var b strings.Builder
	for i, t := range textos {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(t))
	}
	return a.generate(ctx, "resumir", promptResumir, b.String())
}

func (a *GeminiAssistant) generate(ctx context.Context, op, instruction, input string) (string, error) {
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(input), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	})
	if err != nil {
		a.metrics.RecordAI(op, "error")
		return "", fmt.Errorf("gemini %s: %w", op, err)
	}
	out := ""
	if resp != nil {
		out = strings.TrimSpace(resp.Text())
	}
	if out == "" {
		a.metrics.RecordAI(op, "empty")
		return "", ErrEmptyResponse
	}
	a.metrics.RecordAI(op, "ok")
	zap.L().Debug("gemini call done", zap.String("scope", "ai"), zap.String("operation", op), zap.Int("input_len", len(input)), zap.Int("output_len", len(out)))
	return out, nil
}
