package interfaces

import "context"

// ITextAssistant abstracts the generative-language provider.
//
// Implementations may fail freely; callers treat every error as "not corrected".
type ITextAssistant interface {
	Corrigir(ctx context.Context, texto string) (string, error)
	Resumir(ctx context.Context, textos []string) (string, error)
}
