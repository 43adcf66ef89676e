package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"

	clubHTTP "github.com/robertwachen/fritterfrontend/internal/club/delivery/http"
	clubRepository "github.com/robertwachen/fritterfrontend/internal/club/repository"
	clubUsecase "github.com/robertwachen/fritterfrontend/internal/club/usecase"
	discourseHTTP "github.com/robertwachen/fritterfrontend/internal/discourse/delivery/http"
	discourseRepository "github.com/robertwachen/fritterfrontend/internal/discourse/repository"
	discourseUsecase "github.com/robertwachen/fritterfrontend/internal/discourse/usecase"
	feedHTTP "github.com/robertwachen/fritterfrontend/internal/feed/delivery/http"
	feedRepository "github.com/robertwachen/fritterfrontend/internal/feed/repository"
	feedUsecase "github.com/robertwachen/fritterfrontend/internal/feed/usecase"
	freetHTTP "github.com/robertwachen/fritterfrontend/internal/freet/delivery/http"
	freetRepository "github.com/robertwachen/fritterfrontend/internal/freet/repository"
	freetUsecase "github.com/robertwachen/fritterfrontend/internal/freet/usecase"
	userHTTP "github.com/robertwachen/fritterfrontend/internal/user/delivery/http"
	userRepository "github.com/robertwachen/fritterfrontend/internal/user/repository"
	userUsecase "github.com/robertwachen/fritterfrontend/internal/user/usecase"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
	"github.com/robertwachen/fritterfrontend/pkg/observability"
)

// newRouter wires every domain onto /api.
func newRouter(db bun.IDB, log logger.Logger, reg *prometheus.Registry) *gin.Engine {
	users := userRepository.NewUserRepository(db, log)
	clubs := clubRepository.NewClubRepository(db, log)
	freets := freetRepository.NewFreetRepository(db, log)
	discourses := discourseRepository.NewDiscourseRepository(db, log)
	feeds := feedRepository.NewFeedRepository(db, log)

	router := httpserver.NewRouter(log, reg)
	api := router.Group("/api")

	feedHTTP.NewFeedHandler(feedUsecase.NewFeedUsecase(feeds, log, observability.NewFeedMetrics(reg)), log).RegisterRoutes(api)
	userHTTP.NewUserHandler(userUsecase.NewUserUsecase(users, log), log).RegisterRoutes(api)
	clubHTTP.NewClubHandler(clubUsecase.NewClubUsecase(clubs, log), log).RegisterRoutes(api)
	freetHTTP.NewFreetHandler(freetUsecase.NewFreetUsecase(freets, clubs, log), log).RegisterRoutes(api)
	discourseHTTP.NewDiscourseHandler(discourseUsecase.NewDiscourseUsecase(discourses, clubs, log), log).RegisterRoutes(api)
	return router
}
