package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"multimedia/config"
	"multimedia/infras/otel"
	"multimedia/infras/s3"
	"multimedia/internal/domains/multimedia/model"
	"multimedia/internal/domains/multimedia/model/dto"
	"multimedia/internal/domains/multimedia/repository"
	"multimedia/shared"
	"multimedia/shared/cache"
	"multimedia/shared/constant"
	gDto "multimedia/shared/dto"
	"multimedia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllEntry = "entry:get_all"
	cacheCountEntry  = "entry:count"
)

var (
	ErrForeignImageURL = errors.New("image url is not served by this bucket")
)

type Multimedia interface {
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, imageURL string) error
	Save(ctx context.Context, entry model.Entry) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Entry
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Entry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Multimedia {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) directory() string {
	if s.cfg.External.S3.Directory != "" {
		return s.cfg.External.S3.Directory
	}

	return model.EntityName
}

// UploadImage stores the image under the configured directory and returns its public URL.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, s.directory(), req.Image.Name, req.Image.MIMEType, req.Image.Bytes)
	if err != nil {
		log.Error().Err(err).Str("fileName", req.Image.Name).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	res.FromModel(url, req.Image.Name)

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, imageURL string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := s.s3.GetObjectKeyFromURL(imageURL)
	if objectKey == constant.Empty {
		log.Warn().Str("url", imageURL).Msg("failed to extract object key from URL")

		return fmt.Errorf("%w: %s", ErrForeignImageURL, imageURL)
	}

	if err = s.s3.DeleteObject(ctx, s.cfg.External.S3.BucketName, objectKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func (s *serviceImpl) Save(ctx context.Context, entry model.Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("id", entry.ID).Msg("failed to save entry")

		return fmt.Errorf("failed to save entry: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	entry, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return failure.NotFound("entry not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete entry")

		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for entries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	entries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get entries")

		return res, fmt.Errorf("failed to get entries: %w", err)
	}

	res.FromModels(entries, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for entry count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count entries")

		return total, fmt.Errorf("failed to count entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save entry count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEntry)
		shared.InvalidateCaches(c, s.cache, cacheCountEntry)
	}()
}
