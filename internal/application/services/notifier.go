package services

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

// Notifier renders toasts in the owner's language and hands them to a sink
type Notifier struct {
	sink       providers.NotificationSink
	translator *Translator
	language   func() entities.Language
}

// NewNotifier creates a notifier. language is consulted on every toast so
// preference changes apply immediately.
func NewNotifier(sink providers.NotificationSink, translator *Translator, language func() entities.Language) *Notifier {
	if language == nil {
		language = func() entities.Language { return entities.LanguageEnglish }
	}
	return &Notifier{
		sink:       sink,
		translator: translator,
		language:   language,
	}
}

// Language returns the current display language
func (n *Notifier) Language() entities.Language {
	return n.language()
}

// Text translates key in the current language
func (n *Notifier) Text(key string, args ...interface{}) string {
	if len(args) == 0 {
		return n.translator.Translate(n.language(), key)
	}
	return n.translator.Translatef(n.language(), key, args...)
}

// Info emits a default toast
func (n *Notifier) Info(ctx context.Context, titleKey, descriptionKey string, args ...interface{}) {
	n.emit(ctx, entities.SeverityDefault, titleKey, descriptionKey, args...)
}

// Alert emits a destructive toast
func (n *Notifier) Alert(ctx context.Context, titleKey, descriptionKey string, args ...interface{}) {
	n.emit(ctx, entities.SeverityDestructive, titleKey, descriptionKey, args...)
}

func (n *Notifier) emit(ctx context.Context, severity entities.NotificationSeverity, titleKey, descriptionKey string, args ...interface{}) {
	if n == nil || n.sink == nil {
		return
	}
	n.sink.Notify(ctx, entities.Notification{
		Title:       n.Text(titleKey),
		Description: n.Text(descriptionKey, args...),
		Severity:    severity,
	})
}
