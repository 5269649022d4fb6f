package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-hub/domain"
	"news-hub/service"
	"news-hub/test/mocks"
)

func moderationTestSetup(t *testing.T) (service.ModerationService, *mocks.MockUserRepository, *mocks.MockModerationRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	moderation := mocks.NewMockModerationRepository(ctrl)

	return service.NewModerationService(users, moderation, testLogger()), users, moderation
}

func TestModerationService_Moderate(t *testing.T) {
	admin := &domain.User{ID: 1, ChatID: 999}

	t.Run("should reject unknown actions before any lookup", func(t *testing.T) {
		svc, _, _ := moderationTestSetup(t)

		err := svc.Moderate(context.Background(), 999, "promote_news", 10, nil)
		assert.ErrorIs(t, err, domain.ErrUnknownModerationAction)
	})

	t.Run("should map each action to its repository write", func(t *testing.T) {
		cases := []struct {
			action string
			expect func(m *mocks.MockModerationRepository)
		}{
			{
				action: service.ActionApproveNews,
				expect: func(m *mocks.MockModerationRepository) {
					m.EXPECT().SetNewsStatus(gomock.Any(), int64(1), int64(10), domain.ModerationApproved).Return(nil)
				},
			},
			{
				action: service.ActionRejectNews,
				expect: func(m *mocks.MockModerationRepository) {
					m.EXPECT().SetNewsStatus(gomock.Any(), int64(1), int64(10), domain.ModerationRejected).Return(nil)
				},
			},
			{
				action: service.ActionApproveComment,
				expect: func(m *mocks.MockModerationRepository) {
					m.EXPECT().SetCommentStatus(gomock.Any(), int64(1), int64(10), domain.ModerationApproved).Return(nil)
				},
			},
			{
				action: service.ActionRejectComment,
				expect: func(m *mocks.MockModerationRepository) {
					m.EXPECT().SetCommentStatus(gomock.Any(), int64(1), int64(10), domain.ModerationRejected).Return(nil)
				},
			},
			{
				action: service.ActionUnblockSource,
				expect: func(m *mocks.MockModerationRepository) {
					m.EXPECT().SetSourceStatus(gomock.Any(), int64(1), int64(10), domain.SourceActive, "").Return(nil)
				},
			},
		}

		for _, tc := range cases {
			t.Run(tc.action, func(t *testing.T) {
				svc, users, moderation := moderationTestSetup(t)

				users.EXPECT().GetByChatID(gomock.Any(), int64(999)).Return(admin, nil)
				tc.expect(moderation)

				require.NoError(t, svc.Moderate(context.Background(), 999, tc.action, 10, nil))
			})
		}
	})

	t.Run("should carry the reason through to source blocks", func(t *testing.T) {
		svc, users, moderation := moderationTestSetup(t)

		users.EXPECT().GetByChatID(gomock.Any(), int64(999)).Return(admin, nil)
		moderation.EXPECT().
			SetSourceStatus(gomock.Any(), int64(1), int64(10), domain.SourceBlocked, "spam").
			Return(nil)

		details := map[string]any{"reason": "spam"}
		require.NoError(t, svc.Moderate(context.Background(), 999, service.ActionBlockSource, 10, details))
	})

	t.Run("should propagate an unknown admin", func(t *testing.T) {
		svc, users, _ := moderationTestSetup(t)

		users.EXPECT().GetByChatID(gomock.Any(), int64(999)).Return(nil, domain.ErrUserNotFound)

		err := svc.Moderate(context.Background(), 999, service.ActionApproveNews, 10, nil)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
