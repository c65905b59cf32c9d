package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"wishnest/config"
	"wishnest/infras/kafka"
	"wishnest/infras/otel"
	"wishnest/infras/s3"
	"wishnest/internal/domains/wish/model"
	"wishnest/internal/domains/wish/model/dto"
	"wishnest/internal/domains/wish/repository"
	"wishnest/shared"
	"wishnest/shared/base64"
	"wishnest/shared/cache"
	"wishnest/shared/constant"
	gDto "wishnest/shared/dto"
	"wishnest/shared/failure"
	"wishnest/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	eventWishCreated           = "wish.created"
	eventWishUpdated           = "wish.updated"
	eventWishDeleted           = "wish.deleted"
	eventWishVisibilityChanged = "wish.visibility_changed"
)

type Wish interface {
	Create(ctx context.Context, req dto.CreateWishRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListWishesRequest) (dto.GetWishesResponse, error)
	Get(ctx context.Context, id string) (dto.WishResponse, error)
	Update(ctx context.Context, req dto.UpdateWishRequest, id string) error
	Delete(ctx context.Context, id string) error
	SetVisibility(ctx context.Context, req dto.SetVisibilityRequest, id string) error
	GetShared(ctx context.Context, id string) (dto.WishResponse, error)
}

type serviceImpl struct {
	repo  repository.Wish
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
	kafka kafka.Client
}

func New(repo repository.Wish, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, kafka kafka.Client) Wish {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
		kafka: kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWishRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return failure.Unauthorized("authentication required")
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload wish image")

		return fmt.Errorf("failed to upload wish image: %w", err)
	}

	wish := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, wish); err != nil {
		log.Error().Err(err).Msg("failed to create wish")

		return fmt.Errorf("failed to create wish: %w", err)
	}

	s.publishEvent(ctx, eventWishCreated, wish.ID, user)

	return nil
}

// GetAll lists the caller's wishes. An anonymous caller gets an empty list
// rather than an error.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListWishesRequest) (res dto.GetWishesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		res.FromModels(nil, 0, params.Limit)

		return res, nil
	}

	if params.SortBy == "" {
		params.SortBy = constant.DefaultValueSortBy
	}

	if params.SortDir == "" {
		params.SortDir = constant.DefaultValueSortDir
	}

	filter := req.ToFilter(user)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count wishes")

		return res, fmt.Errorf("failed to count wishes: %w", err)
	}

	wishes, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishes")

		return res, fmt.Errorf("failed to get wishes: %w", err)
	}

	res.FromModels(wishes, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return res, failure.Unauthorized("authentication required")
	}

	wish, err := s.repo.Get(ctx, s.ownerFilter(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get wish")

		return res, fmt.Errorf("failed to get wish: %w", err)
	}

	if wish.ID == "" {
		return res, failure.NotFound("wish not found")
	}

	res.FromModel(wish)

	return res, nil
}

// Update rewrites a wish's editable fields through a single owner-scoped
// UPDATE. A wish that does not exist or belongs to someone else matches zero
// rows and the call still succeeds, so callers learn nothing about foreign
// wishes.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateWishRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return failure.Unauthorized("authentication required")
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload wish image")

		return fmt.Errorf("failed to upload wish image: %w", err)
	}

	if err = s.repo.Update(ctx, req.ToUpdateFields(imageURL), s.ownerFilter(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to update wish")

		return fmt.Errorf("failed to update wish: %w", err)
	}

	s.invalidateShared(ctx, id)
	s.publishEvent(ctx, eventWishUpdated, id, user)

	return nil
}

// Delete looks the wish up owner-scoped first, so the stored image can be
// removed from S3, then deletes the row.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return failure.Unauthorized("authentication required")
	}

	wish, err := s.repo.Get(ctx, s.ownerFilter(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get wish")

		return fmt.Errorf("failed to get wish: %w", err)
	}

	if wish.ID == "" {
		return failure.NotFound("wish not found or you do not have permission to delete it")
	}

	if err = s.repo.Delete(ctx, s.ownerFilter(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to delete wish")

		return fmt.Errorf("failed to delete wish: %w", err)
	}

	if wish.ImageURL != nil {
		s.deleteImage(ctx, *wish.ImageURL)
	}

	s.invalidateShared(ctx, id)
	s.publishEvent(ctx, eventWishDeleted, id, user)

	return nil
}

// SetVisibility flips the public flag owner-scoped. Setting the same value
// twice is a no-op, as is targeting a wish the caller does not own.
func (s *serviceImpl) SetVisibility(ctx context.Context, req dto.SetVisibilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetVisibility")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return failure.Unauthorized("authentication required")
	}

	fields := map[string]any{
		model.FieldIsPublic:     *req.IsPublic,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, s.ownerFilter(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to update wish visibility")

		return fmt.Errorf("failed to update wish visibility: %w", err)
	}

	s.invalidateShared(ctx, id)
	s.publishEvent(ctx, eventWishVisibilityChanged, id, user)

	return nil
}

// GetShared serves the public view of a wish without authentication. It fails
// closed: any store error is reported as not found.
func (s *serviceImpl) GetShared(ctx context.Context, id string) (res dto.WishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetShared")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeySharedWish, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shared wish")

		return res, nil
	} else if !errors.Is(err, cache.Nil) {
		// An unreadable entry would otherwise shadow the store until its
		// TTL runs out.
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("dropping unreadable shared wish cache entry")

		if delErr := s.cache.Delete(ctx, cacheKey); delErr != nil {
			log.Error().Err(delErr).Str("cacheKey", cacheKey).Msg("failed to drop shared wish cache entry")
		}
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsPublic,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	wish, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get shared wish")

		return dto.WishResponse{}, failure.NotFound("wish not found")
	}

	if wish.ID == "" {
		return dto.WishResponse{}, failure.NotFound("wish not found")
	}

	res = dto.WishResponse{}
	res.FromModel(wish)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save shared wish to cache")
	}

	return res, nil
}

func (s *serviceImpl) ownerFilter(id, user string) gDto.FilterGroup {
	return shared.FilterByIDAndOwner(id, user, model.FieldID, model.FieldUserID, model.TableName)
}

// uploadImage stores a base64 data URI in S3 and returns the public URL, or
// nil when no image was sent.
func (s *serviceImpl) uploadImage(ctx context.Context, image string) (*string, error) {
	if image == "" {
		return nil, nil
	}

	data, err := base64.Decode(image)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	contentType := base64.GetContentType(image)
	fileName := uuid.NewString() + base64.ExtensionForContentType(contentType)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
	if objectName == constant.Empty {
		log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
	}
}

func (s *serviceImpl) invalidateShared(ctx context.Context, id string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeySharedWish, id))
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType, wishID, userID string) {
	message := kafka.Message{
		Key: wishID,
		Value: dto.WishEvent{
			Type:       eventType,
			WishID:     wishID,
			UserID:     userID,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		},
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.WishEvents, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("wishID", wishID).Msg("failed to publish wish event")
	}
}
