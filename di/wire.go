//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/infras/ws"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	authService "lodge/internal/domains/auth/service"

	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"

	facilityRepository "lodge/internal/domains/facility/repository"
	facilityService "lodge/internal/domains/facility/service"

	inquiryRepository "lodge/internal/domains/inquiry/repository"
	inquiryService "lodge/internal/domains/inquiry/service"

	reviewRepository "lodge/internal/domains/review/repository"
	reviewService "lodge/internal/domains/review/service"

	notificationService "lodge/internal/domains/notification/service"

	adminHandler "lodge/internal/handlers/admin"
	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	facilityHandler "lodge/internal/handlers/facility"
	healthHandler "lodge/internal/handlers/health"
	inquiryHandler "lodge/internal/handlers/inquiry"
	reviewHandler "lodge/internal/handlers/review"
	roomHandler "lodge/internal/handlers/room"
	userHandler "lodge/internal/handlers/user"
	wsHandler "lodge/internal/handlers/ws"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	ws.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
	notificationService.NewRelay,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	facilityDomain,
	inquiryDomain,
	reviewDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	adminHandler.New,
	roomHandler.New,
	bookingHandler.New,
	facilityHandler.New,
	inquiryHandler.New,
	reviewHandler.New,
	wsHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
