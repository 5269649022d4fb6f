package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"news-hub/domain"
)

func TestAIHandler_Translate(t *testing.T) {
	t.Run("should bind target_language and source_language", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.ai.EXPECT().Translate(gomock.Any(), "hello", "uk", "en").
			Return(&domain.Translation{Text: "привіт", OriginalLang: "en", TranslatedLang: "uk"}, nil)

		body := `{"text":"hello","target_language":"uk","source_language":"en"}`
		rec := doJSON(e, http.MethodPost, "/translate", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"translated_lang":"uk"`)
	})

	t.Run("should answer 400 when target_language is missing", func(t *testing.T) {
		e, _ := handlerTestSetup(t)

		rec := doJSON(e, http.MethodPost, "/translate", `{"text":"hello"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
