//go:build wireinject
// +build wireinject

package di

import (
	"wishnest/config"
	"wishnest/infras/jwt"
	"wishnest/infras/kafka"
	"wishnest/infras/otel"
	"wishnest/infras/postgres"
	"wishnest/infras/redis"
	"wishnest/infras/s3"
	"wishnest/shared/cache"
	"wishnest/transport/http"
	"wishnest/transport/http/middleware"
	"wishnest/transport/http/router"

	wishHandler "wishnest/internal/handlers/wish"

	wishRepository "wishnest/internal/domains/wish/repository"
	wishService "wishnest/internal/domains/wish/service"

	"github.com/google/wire"

	authService "wishnest/internal/domains/auth/service"
	userRepository "wishnest/internal/domains/user/repository"
	authHandler "wishnest/internal/handlers/auth"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var wishDomain = wire.NewSet(
	wishRepository.New,
	wishService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	wishDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	wishHandler.New,
	authHandler.New,
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
