package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInteractionHandler_AddComment(t *testing.T) {
	t.Run("should bind parent_comment_id for threaded replies", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.interactions.EXPECT().AddComment(gomock.Any(), int64(777), int64(42), gomock.Any(), "I was there").
			DoAndReturn(func(_ any, _, _ int64, parentID *int64, _ string) (int64, error) {
				require.NotNil(t, parentID)
				require.Equal(t, int64(11), *parentID)
				return 12, nil
			})

		body := `{"user_id":777,"news_id":42,"parent_comment_id":11,"content":"I was there"}`
		rec := doJSON(e, http.MethodPost, "/comments/add", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"comment_id":12,"status":"pending"}`, rec.Body.String())
	})

	t.Run("should leave the parent nil for top-level comments", func(t *testing.T) {
		e, m := handlerTestSetup(t)

		m.interactions.EXPECT().AddComment(gomock.Any(), int64(777), int64(42), gomock.Any(), "first").
			DoAndReturn(func(_ any, _, _ int64, parentID *int64, _ string) (int64, error) {
				require.Nil(t, parentID)
				return 13, nil
			})

		body := `{"user_id":777,"news_id":42,"content":"first"}`
		rec := doJSON(e, http.MethodPost, "/comments/add", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
