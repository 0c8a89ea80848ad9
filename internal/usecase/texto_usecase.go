package usecase

import (
	"context"
	"errors"
	"strings"
	"tractus/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrTextoVazio      = errors.New("texto is required")
	ErrTextoMuitoLongo = errors.New("texto exceeds 5000 characters")
)

const maxTextoLen = 5000

// CorrecaoTexto reports whether the provider actually changed the text.
type CorrecaoTexto struct {
	Original  string
	Corrigido string
	Alterado  bool
}

type ITextoUseCase interface {
	Corrigir(ctx context.Context, texto string) (CorrecaoTexto, error)
}

// TextoUseCase wraps the generative-language provider as a best-effort dependency:
// any provider failure yields the original text.
type TextoUseCase struct {
	assistant interfaces.ITextAssistant
}

var _ ITextoUseCase = (*TextoUseCase)(nil)

// NewTextoUseCase accepts a nil assistant (no API key configured).
func NewTextoUseCase(assistant interfaces.ITextAssistant) *TextoUseCase {
	return &TextoUseCase{assistant: assistant}
}

func (u *TextoUseCase) Corrigir(ctx context.Context, texto string) (CorrecaoTexto, error) {
	if err := validateTexto(texto); err != nil {
		return CorrecaoTexto{}, err
	}
	corrigido := corrigirComFallback(ctx, u.assistant, texto)
	return CorrecaoTexto{Original: texto, Corrigido: corrigido, Alterado: corrigido != texto}, nil
}

func validateTexto(texto string) error {
	if strings.TrimSpace(texto) == "" {
		return ErrTextoVazio
	}
	if len([]rune(texto)) > maxTextoLen {
		return ErrTextoMuitoLongo
	}
	return nil
}

func corrigirComFallback(ctx context.Context, assistant interfaces.ITextAssistant, texto string) string {
	if assistant == nil {
		return texto
	}
	out, err := assistant.Corrigir(ctx, texto)
	if err != nil {
		zap.L().Warn("text correction failed; returning original", zap.String("scope", "ai"), zap.Error(err))
		return texto
	}
	if strings.TrimSpace(out) == "" {
		return texto
	}
	return strings.TrimSpace(out)
}

// resumirComFallback returns the notes joined by newline when no summary is available.
func resumirComFallback(ctx context.Context, assistant interfaces.ITextAssistant, textos []string) (string, bool) {
	original := strings.Join(textos, "\n")
	if assistant == nil {
		return original, false
	}
	out, err := assistant.Resumir(ctx, textos)
	if err != nil {
		zap.L().Warn("summary failed; returning notes", zap.String("scope", "ai"), zap.Error(err))
		return original, false
	}
	if strings.TrimSpace(out) == "" {
		return original, false
	}
	return strings.TrimSpace(out), true
}
