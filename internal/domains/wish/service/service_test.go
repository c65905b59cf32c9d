package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wishnest/config"
	kafkaMocks "wishnest/infras/kafka/mocks"
	"wishnest/infras/otel/mocks"
	s3Mocks "wishnest/infras/s3/mocks"
	wishMocks "wishnest/internal/domains/wish/mocks"
	"wishnest/internal/domains/wish/model"
	"wishnest/internal/domains/wish/model/dto"
	"wishnest/internal/domains/wish/service"
	"wishnest/shared/cache"
	cacheMocks "wishnest/shared/cache/mocks"
	"wishnest/shared/constant"
	gDto "wishnest/shared/dto"
	"wishnest/shared/failure"
	gModel "wishnest/shared/model"
	"wishnest/shared/timezone"
)

type serviceMocks struct {
	repo  *wishMocks.MockWish
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	kafka *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Wish, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:  wishMocks.NewMockWish(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3, m.kafka)

	return svc, m
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func ownedWish() model.Wish {
	now := timezone.Now()

	return model.Wish{
		ID:       "wish-1",
		UserID:   "user-1",
		ItemName: "Telescope",
		Priority: constant.PriorityHigh,
		Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

func TestWishService_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		svc, m := newService(t)

		var inserted model.Wish
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, wish model.Wish) error {
				inserted = wish
				return nil
			})

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Create(authedCtx("user-1"), dto.CreateWishRequest{ItemName: "Telescope"})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", inserted.UserID)
		assert.Equal(t, constant.PriorityMedium, inserted.Priority)
		assert.False(t, inserted.IsPublic)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Create(context.Background(), dto.CreateWishRequest{ItemName: "Telescope"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("insert failure surfaces and no event is published", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.Create(authedCtx("user-1"), dto.CreateWishRequest{ItemName: "Telescope"})

		assert.Error(t, err)
	})

	t.Run("image is uploaded before insert", func(t *testing.T) {
		svc, m := newService(t)

		url := "https://cdn.example.com/wish/abc.png"

		m.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), "image/png", []byte("hello")).
			Return(url, nil)

		var inserted model.Wish
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, wish model.Wish) error {
				inserted = wish
				return nil
			})

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Create(authedCtx("user-1"), dto.CreateWishRequest{
			ItemName: "Telescope",
			Image:    "data:image/png;base64,aGVsbG8=",
		})

		assert.NoError(t, err)
		assert.NotNil(t, inserted.ImageURL)
		assert.Equal(t, url, *inserted.ImageURL)
	})

	t.Run("malformed image is a bad request", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Create(authedCtx("user-1"), dto.CreateWishRequest{
			ItemName: "Telescope",
			Image:    "not-a-data-uri",
		})

		assert.Error(t, err)
	})
}

func TestWishService_GetAll(t *testing.T) {
	t.Run("anonymous caller gets empty list", func(t *testing.T) {
		svc, _ := newService(t)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, dto.ListWishesRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, res.Wishes)
		assert.Len(t, res.Wishes, 0)
		assert.Equal(t, 0, res.TotalData)
	})

	t.Run("lists owner wishes most recent first by default", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Wish, error) {
				assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
				assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

				return []model.Wish{ownedWish(), ownedWish()}, nil
			})

		res, err := svc.GetAll(authedCtx("user-1"), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListWishesRequest{})

		assert.NoError(t, err)
		assert.Len(t, res.Wishes, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("explicit sort field keeps the default direction", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Wish, error) {
				assert.Equal(t, model.FieldDueDate, params.SortBy)
				assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

				return []model.Wish{ownedWish()}, nil
			})

		params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldDueDate}
		res, err := svc.GetAll(authedCtx("user-1"), params, dto.ListWishesRequest{})

		assert.NoError(t, err)
		assert.Len(t, res.Wishes, 1)
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("db down"))

		_, err := svc.GetAll(authedCtx("user-1"), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListWishesRequest{})

		assert.Error(t, err)
	})
}

func TestWishService_Get(t *testing.T) {
	t.Run("returns own wish", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedWish(), nil)

		res, err := svc.Get(authedCtx("user-1"), "wish-1")

		assert.NoError(t, err)
		assert.Equal(t, "wish-1", res.ID)
	})

	t.Run("missing or foreign wish is not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Wish{}, nil)

		_, err := svc.Get(authedCtx("user-1"), "wish-1")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Get(context.Background(), "wish-1")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestWishService_Update(t *testing.T) {
	req := dto.UpdateWishRequest{
		ItemName: "Telescope",
		Priority: constant.PriorityLow,
	}

	t.Run("successful update", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Telescope", fields[model.FieldItemName])
				assert.Equal(t, constant.PriorityLow, fields[model.FieldPriority])
				assert.Contains(t, fields, model.FieldDueDate)
				assert.Contains(t, fields, model.FieldDescription)

				return nil
			})

		m.cache.EXPECT().
			Clear(gomock.Any(), "wish:shared:wish-1*").
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(authedCtx("user-1"), req, "wish-1")

		assert.NoError(t, err)
	})

	t.Run("foreign or missing wish is a silent no-op", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(authedCtx("someone-else"), req, "wish-1")

		assert.NoError(t, err)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(context.Background(), req, "wish-1")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.Update(authedCtx("user-1"), req, "wish-1")

		assert.Error(t, err)
	})
}

func TestWishService_Delete(t *testing.T) {
	t.Run("deletes wish and its stored image", func(t *testing.T) {
		svc, m := newService(t)

		wish := ownedWish()
		imageURL := "https://cdn.example.com/wish/abc.png"
		wish.ImageURL = &imageURL

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(wish, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.s3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), imageURL).
			Return("abc.png")

		m.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "abc.png").
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), "wish:shared:wish-1*").
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(authedCtx("user-1"), "wish-1")

		assert.NoError(t, err)
	})

	t.Run("foreign or missing wish is not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Wish{}, nil)

		err := svc.Delete(authedCtx("user-1"), "wish-1")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Delete(context.Background(), "wish-1")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestWishService_SetVisibility(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	t.Run("publishes wish and fires refresh signals", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsPublic])
				assert.Contains(t, fields, constant.FieldUpdatedAt)

				return nil
			})

		m.cache.EXPECT().
			Clear(gomock.Any(), "wish:shared:wish-1*").
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.SetVisibility(authedCtx("user-1"), dto.SetVisibilityRequest{IsPublic: boolPtr(true)}, "wish-1")

		assert.NoError(t, err)
	})

	t.Run("setting the same visibility twice stays a success", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		req := dto.SetVisibilityRequest{IsPublic: boolPtr(false)}

		assert.NoError(t, svc.SetVisibility(authedCtx("user-1"), req, "wish-1"))
		assert.NoError(t, svc.SetVisibility(authedCtx("user-1"), req, "wish-1"))
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.SetVisibility(context.Background(), dto.SetVisibilityRequest{IsPublic: boolPtr(true)}, "wish-1")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestWishService_GetShared(t *testing.T) {
	t.Run("serves public wish and caches it", func(t *testing.T) {
		svc, m := newService(t)

		wish := ownedWish()
		wish.IsPublic = true

		m.cache.EXPECT().
			Get(gomock.Any(), "wish:shared:wish-1", gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(wish, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), "wish:shared:wish-1", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.GetShared(context.Background(), "wish-1")

		assert.NoError(t, err)
		assert.Equal(t, "wish-1", res.ID)
		assert.True(t, res.IsPublic)
	})

	t.Run("serves from cache on hit", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), "wish:shared:wish-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.WishResponse)
				res.ID = "wish-1"
				res.IsPublic = true

				return nil
			})

		res, err := svc.GetShared(context.Background(), "wish-1")

		assert.NoError(t, err)
		assert.Equal(t, "wish-1", res.ID)
	})

	t.Run("unreadable cache entry is dropped and the store serves", func(t *testing.T) {
		svc, m := newService(t)

		wish := ownedWish()
		wish.IsPublic = true

		m.cache.EXPECT().
			Get(gomock.Any(), "wish:shared:wish-1", gomock.Any()).
			Return(errors.New("unmarshal wish response: unexpected end of JSON input"))

		m.cache.EXPECT().
			Delete(gomock.Any(), "wish:shared:wish-1").
			Return(nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(wish, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), "wish:shared:wish-1", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.GetShared(context.Background(), "wish-1")

		assert.NoError(t, err)
		assert.Equal(t, "wish-1", res.ID)
	})

	t.Run("private or missing wish is not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Wish{}, nil)

		_, err := svc.GetShared(context.Background(), "wish-1")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("store failure fails closed as not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Wish{}, errors.New("db down"))

		_, err := svc.GetShared(context.Background(), "wish-1")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}
