// ABOUTME: This file wires every HTTP route onto the Echo instance
// ABOUTME: Admin routes sit behind the service-token guard
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-hub/config"
	"news-hub/metrics"
	"news-hub/middleware"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	User         *UserHandler
	News         *NewsHandler
	Filter       *FilterHandler
	CustomFeed   *CustomFeedHandler
	Interaction  *InteractionHandler
	Subscription *SubscriptionHandler
	AI           *AIHandler
	Invite       *InviteHandler
	Source       *SourceHandler
	Admin        *AdminHandler
	Health       *HealthHandler
}

// RegisterRoutes attaches all endpoints. The collector may be nil when
// metrics are disabled.
func RegisterRoutes(e *echo.Echo, h *Handlers, authCfg config.AuthConfig, collector *metrics.Collector, logger *slog.Logger) {
	// Users
	e.POST("/users/register", h.User.HandleRegister)
	e.GET("/users/:user_id/profile", h.User.HandleProfile)
	e.GET("/users/:user_id/gamification_stats", h.User.HandleGamificationStats)
	e.GET("/analytics/:user_id", h.User.HandleAnalytics)

	// News and feeds. /news/search must register before /news/:user_id so
	// the literal segment wins.
	e.POST("/news/add", h.News.HandleSubmit)
	e.GET("/news/search", h.News.HandleSearch)
	e.GET("/news/:user_id", h.News.HandleFeed)
	e.GET("/digest/:user_id", h.News.HandleDigest)
	e.GET("/recommend/:user_id", h.News.HandleRecommend)
	e.GET("/trending", h.News.HandleTrending)
	e.GET("/api/news", h.News.HandlePublic)

	// Filters and blocks
	e.POST("/filters/update", h.Filter.HandleUpdate)
	e.GET("/filters/:user_id", h.Filter.HandleGet)
	e.DELETE("/filters/reset/:user_id", h.Filter.HandleReset)
	e.POST("/block", h.Filter.HandleBlock)

	// Custom feeds
	e.POST("/custom_feeds/create", h.CustomFeed.HandleCreate)
	e.GET("/custom_feeds/:user_id", h.CustomFeed.HandleList)
	e.POST("/custom_feeds/switch", h.CustomFeed.HandleSwitch)

	// Interactions
	e.POST("/log_user_activity", h.Interaction.HandleLogActivity)
	e.POST("/rate", h.Interaction.HandleRate)
	e.POST("/bookmarks/add", h.Interaction.HandleAddBookmark)
	e.GET("/bookmarks/:user_id", h.Interaction.HandleListBookmarks)
	e.POST("/comments/add", h.Interaction.HandleAddComment)
	e.GET("/comments/:news_id", h.Interaction.HandleListComments)
	e.POST("/report", h.Interaction.HandleReport)
	e.POST("/feedback", h.Interaction.HandleFeedback)
	e.POST("/polls/submit", h.Interaction.HandleSubmitPoll)

	// Subscriptions
	e.POST("/subscriptions/update", h.Subscription.HandleSubscribe)
	e.POST("/subscriptions/unsubscribe", h.Subscription.HandleUnsubscribe)

	// AI
	e.POST("/summary", h.AI.HandleSummary)
	e.POST("/translate", h.AI.HandleTranslate)
	e.GET("/verify/:news_id", h.AI.HandleVerdict)
	e.POST("/ai/rewrite_headline", h.AI.HandleRewriteHeadline)

	// Referrals
	e.POST("/invite/generate", h.Invite.HandleGenerate)
	e.POST("/invite/accept", h.Invite.HandleAccept)

	// Sources
	e.POST("/sources/add", h.Source.HandleAdd)
	e.GET("/sources", h.Source.HandleList)

	// Admin, behind the service-token guard
	admin := e.Group("/admin", middleware.ServiceAuth(authCfg, logger))
	admin.POST("/moderate", h.Admin.HandleModerate)

	// Operational
	e.GET("/v1/health", h.Health.HandleHealth)
	if collector != nil {
		e.GET("/metrics", func(c echo.Context) error {
			data, err := collector.ExportJSON()
			if err != nil {
				return err
			}
			return c.JSONBlob(http.StatusOK, data)
		})
		e.GET("/metrics/prometheus", func(c echo.Context) error {
			return c.String(http.StatusOK, collector.ExportPrometheus())
		})
	}
}
