package handlers

import (
	"net/http"

	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// TranslationHandler serves the bilingual text table
type TranslationHandler struct {
	translator *services.Translator
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(translator *services.Translator) *TranslationHandler {
	return &TranslationHandler{translator: translator}
}

// GetTranslations handles GET /api/translations?lang=bn&key=...
// Without a key the whole table is returned.
func (h *TranslationHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lang := entities.ParseLanguage(query.Get("lang"))

	if key := query.Get("key"); key != "" {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"lang":  lang,
			"key":   key,
			"text":  h.translator.Translate(lang, key),
			"found": h.translator.Has(key),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"lang":         lang,
		"translations": h.translator.All(lang),
	})
}
