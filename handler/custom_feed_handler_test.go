package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"news-hub/domain"
)

func TestCustomFeedHandler_Create(t *testing.T) {
	t.Run("should create a feed and answer 201", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		filters := map[string][]string{"tags": {"tech"}}
		m.customFeeds.EXPECT().Create(gomock.Any(), int64(777), "tech daily", filters).
			Return(int64(9), nil)

		body := `{"user_id":777,"feed_name":"tech daily","filters":{"tags":["tech"]}}`
		rec := doJSON(e, http.MethodPost, "/custom_feeds/create", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"feed_id":9}`, rec.Body.String())
	})

	t.Run("should answer 409 for a duplicate feed name", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.customFeeds.EXPECT().Create(gomock.Any(), int64(777), "tech daily", gomock.Any()).
			Return(int64(0), domain.ErrDuplicateFeedName)

		body := `{"user_id":777,"feed_name":"tech daily"}`
		rec := doJSON(e, http.MethodPost, "/custom_feeds/create", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "CONFLICT_ERROR")
	})

	t.Run("should answer 400 for an unknown filter kind", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.customFeeds.EXPECT().Create(gomock.Any(), int64(777), "odd", gomock.Any()).
			Return(int64(0), domain.ErrInvalidFeedFilter)

		body := `{"user_id":777,"feed_name":"odd","filters":{"moods":["happy"]}}`
		rec := doJSON(e, http.MethodPost, "/custom_feeds/create", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomFeedHandler_Switch(t *testing.T) {
	t.Run("should switch the active feed", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.customFeeds.EXPECT().Switch(gomock.Any(), int64(777), int64(9)).Return(nil)

		rec := doJSON(e, http.MethodPost, "/custom_feeds/switch", `{"user_id":777,"feed_id":9}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should answer 403 when the feed belongs to someone else", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.customFeeds.EXPECT().Switch(gomock.Any(), int64(777), int64(9)).
			Return(domain.ErrFeedNotOwned)

		rec := doJSON(e, http.MethodPost, "/custom_feeds/switch", `{"user_id":777,"feed_id":9}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN_ERROR")
	})

	t.Run("should clear the selection with feed id zero", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.customFeeds.EXPECT().Switch(gomock.Any(), int64(777), int64(0)).Return(nil)

		rec := doJSON(e, http.MethodPost, "/custom_feeds/switch", `{"user_id":777}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
