package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/wish_mock.go -package=mocks

import (
	"context"
	"wishnest/infras/otel"
	"wishnest/infras/postgres"
	"wishnest/internal/domains/wish/model"
	gDto "wishnest/shared/dto"
	gRepo "wishnest/shared/repository"
)

type Wish interface {
	Insert(ctx context.Context, model model.Wish) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Wish, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Wish, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Wish]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Wish {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Wish](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
