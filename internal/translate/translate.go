// internal/translate/translate.go
//
// Translation assistance for admin editors.
//
// Context
// -------
// The admin UI lets an editor draft content in one language and request
// a machine-generated starting point for the other two.  Suggestions
// are advisory; the editor reviews and saves the final text, so nothing
// here writes to storage.
//
// Workflow
// --------
//     svc := translate.New(provider)
//     out := svc.Assist(ctx, text, locale.Portuguese, locale.English)
//
// Assist never fails: any provider error is logged and counted, and the
// original text comes back unchanged so the editor can translate by
// hand.
package translate

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/metrics"
)

// Translator produces a translation of text from one supported language
// to another.
type Translator interface {
	Translate(ctx context.Context, text string, from, to locale.Language) (string, error)
}

// Service wraps a Translator with the degrade-to-original policy.
type Service struct {
	provider Translator
}

// New wraps provider.  A nil provider is allowed; Assist then always
// returns the original text.
func New(provider Translator) *Service {
	return &Service{provider: provider}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool { return s.provider != nil }

// Assist returns a suggested translation of text, or text unchanged
// when no provider is configured, the languages match, or the provider
// fails.
func (s *Service) Assist(ctx context.Context, text string, from, to locale.Language) string {
	if s.provider == nil || from == to || strings.TrimSpace(text) == "" {
		return text
	}

	metrics.TranslateRequestsTotal.Inc()

	out, err := s.provider.Translate(ctx, text, from, to)
	if err != nil {
		metrics.TranslateErrorsTotal.Inc()
		zap.S().Errorw("translate failed, returning original text",
			"from", string(from),
			"to", string(to),
			"error", err,
		)
		return text
	}
	if strings.TrimSpace(out) == "" {
		metrics.TranslateErrorsTotal.Inc()
		zap.S().Errorw("translate returned empty suggestion, returning original text",
			"from", string(from),
			"to", string(to),
		)
		return text
	}
	return out
}
