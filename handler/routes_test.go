// ABOUTME: This file holds the shared handler test harness
// ABOUTME: Spins up the full route table with mocked services and the real error handler
package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"news-hub/config"
	"news-hub/handler"
	"news-hub/middleware"
	"news-hub/test/mocks"
)

type serviceMocks struct {
	users         *mocks.MockUserService
	ingestion     *mocks.MockIngestionService
	feeds         *mocks.MockFeedService
	filters       *mocks.MockFilterService
	customFeeds   *mocks.MockCustomFeedService
	interactions  *mocks.MockInteractionService
	subscriptions *mocks.MockSubscriptionService
	ai            *mocks.MockAIService
	referrals     *mocks.MockReferralService
	sources       *mocks.MockSourceService
	moderation    *mocks.MockModerationService
}

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error {
	return p.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// handlerTestSetup wires the full route table against mocked services,
// with the production error handler installed.
func handlerTestSetup(t *testing.T) (*echo.Echo, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:         mocks.NewMockUserService(ctrl),
		ingestion:     mocks.NewMockIngestionService(ctrl),
		feeds:         mocks.NewMockFeedService(ctrl),
		filters:       mocks.NewMockFilterService(ctrl),
		customFeeds:   mocks.NewMockCustomFeedService(ctrl),
		interactions:  mocks.NewMockInteractionService(ctrl),
		subscriptions: mocks.NewMockSubscriptionService(ctrl),
		ai:            mocks.NewMockAIService(ctrl),
		referrals:     mocks.NewMockReferralService(ctrl),
		sources:       mocks.NewMockSourceService(ctrl),
		moderation:    mocks.NewMockModerationService(ctrl),
	}

	logger := testLogger()

	e := echo.New()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(logger)

	h := &handler.Handlers{
		User:         handler.NewUserHandler(m.users, logger),
		News:         handler.NewNewsHandler(m.ingestion, m.feeds, logger),
		Filter:       handler.NewFilterHandler(m.filters, logger),
		CustomFeed:   handler.NewCustomFeedHandler(m.customFeeds, logger),
		Interaction:  handler.NewInteractionHandler(m.interactions, logger),
		Subscription: handler.NewSubscriptionHandler(m.subscriptions, logger),
		AI:           handler.NewAIHandler(m.ai, logger),
		Invite:       handler.NewInviteHandler(m.referrals, logger),
		Source:       handler.NewSourceHandler(m.sources, logger),
		Admin:        handler.NewAdminHandler(m.moderation, logger),
		Health:       handler.NewHealthHandler(&stubPinger{}, logger),
	}

	handler.RegisterRoutes(e, h, config.AuthConfig{Enabled: false}, nil, logger)

	return e, m
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	return doJSON(e, http.MethodGet, path, "")
}
