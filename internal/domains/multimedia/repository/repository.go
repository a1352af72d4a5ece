package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"multimedia/infras/otel"
	"multimedia/infras/postgres"
	"multimedia/internal/domains/multimedia/model"
	gDto "multimedia/shared/dto"
	gRepo "multimedia/shared/repository"
)

type Entry interface {
	Insert(ctx context.Context, model model.Entry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Entry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
}

func New(db *postgres.Connection, otel otel.Otel) Entry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
