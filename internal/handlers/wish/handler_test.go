package wish_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wishnest/infras/jwt"
	jwtMocks "wishnest/infras/jwt/mocks"
	"wishnest/infras/otel/mocks"
	"wishnest/internal/domains/wish/model/dto"
	serviceMocks "wishnest/internal/domains/wish/service/mocks"
	"wishnest/internal/handlers/wish"
	"wishnest/shared/constant"
	gDto "wishnest/shared/dto"
	"wishnest/shared/failure"
	"wishnest/transport/http/middleware"
)

type handlerMocks struct {
	service *serviceMocks.MockWish
	jwt     *jwtMocks.MockJWT
}

func newRouter(t *testing.T) (chi.Router, handlerMocks) {
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		service: serviceMocks.NewMockWish(ctrl),
		jwt:     jwtMocks.NewMockJWT(ctrl),
	}

	otl := mocks.NewOtel()
	handler := wish.New(m.service, middleware.NewAuthMiddleware(m.jwt, otl), otl)

	router := chi.NewRouter()
	handler.Router(router)

	return router, m
}

func validClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:  "user-1",
		Email:   "user@example.com",
		TokenID: "token-1",
	}
}

func TestWishHandler_GetWishes(t *testing.T) {
	t.Run("anonymous request returns empty list", func(t *testing.T) {
		router, m := newRouter(t)

		m.service.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), dto.ListWishesRequest{}).
			Return(dto.GetWishesResponse{Wishes: []dto.WishResponse{}}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/wishes", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"wishes":[]`)
	})

	t.Run("authenticated request carries identity and filters", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		m.service.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), dto.ListWishesRequest{Query: "bike", Priority: constant.PriorityHigh, Status: "pending"}).
			DoAndReturn(func(ctx context.Context, _ gDto.QueryParams, _ dto.ListWishesRequest) (dto.GetWishesResponse, error) {
				userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
				assert.Equal(t, "user-1", userID)

				return dto.GetWishesResponse{Wishes: []dto.WishResponse{}}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/wishes?q=bike&priority=High&status=pending", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown sort column is rejected before any query", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		target := "/wishes?sort_by=" + url.QueryEscape("(SELECT password FROM users LIMIT 1)")
		request := httptest.NewRequest(http.MethodGet, target, nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("sorting by a known column is accepted", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		m.service.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), dto.ListWishesRequest{}).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ dto.ListWishesRequest) (dto.GetWishesResponse, error) {
				assert.Equal(t, "due_date", params.SortBy)

				return dto.GetWishesResponse{Wishes: []dto.WishResponse{}}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/wishes?sort_by=due_date", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid token is ignored on the list endpoint", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("bad-token", jwt.AccessToken).
			Return(nil, jwt.ErrInvalidToken)

		m.service.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), dto.ListWishesRequest{}).
			Return(dto.GetWishesResponse{Wishes: []dto.WishResponse{}}, nil)

		request := httptest.NewRequest(http.MethodGet, "/wishes", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer bad-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestWishHandler_CreateWish(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		m.service.EXPECT().
			Create(gomock.Any(), dto.CreateWishRequest{ItemName: "New bike"}).
			Return(nil)

		request := httptest.NewRequest(http.MethodPost, "/wishes", strings.NewReader(`{"item_name":"New bike"}`))
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("missing token is rejected before the service", func(t *testing.T) {
		router, _ := newRouter(t)

		request := httptest.NewRequest(http.MethodPost, "/wishes", strings.NewReader(`{"item_name":"New bike"}`))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid body fails validation", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		request := httptest.NewRequest(http.MethodPost, "/wishes", strings.NewReader(`{"priority":"High"}`))
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestWishHandler_SetWishVisibility(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newRouter(t)

		isPublic := true

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		m.service.EXPECT().
			SetVisibility(gomock.Any(), dto.SetVisibilityRequest{IsPublic: &isPublic}, "wish-1").
			Return(nil)

		request := httptest.NewRequest(http.MethodPatch, "/wishes/wish-1/visibility", strings.NewReader(`{"is_public":true}`))
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing is_public fails validation", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		request := httptest.NewRequest(http.MethodPatch, "/wishes/wish-1/visibility", strings.NewReader(`{}`))
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestWishHandler_DeleteWish(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router, m := newRouter(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(validClaims(), nil)

		m.service.EXPECT().
			Delete(gomock.Any(), "missing").
			Return(failure.NotFound("wish"))

		request := httptest.NewRequest(http.MethodDelete, "/wishes/missing", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestWishHandler_GetSharedWish(t *testing.T) {
	t.Run("public wish is served without authentication", func(t *testing.T) {
		router, m := newRouter(t)

		m.service.EXPECT().
			GetShared(gomock.Any(), "wish-1").
			Return(dto.WishResponse{ID: "wish-1", ItemName: "New bike", IsPublic: true}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/shared/wish-1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data dto.WishResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "wish-1", body.Data.ID)
		assert.True(t, body.Data.IsPublic)
	})

	t.Run("private wish is not disclosed", func(t *testing.T) {
		router, m := newRouter(t)

		m.service.EXPECT().
			GetShared(gomock.Any(), "wish-1").
			Return(dto.WishResponse{}, failure.NotFound("wish"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/shared/wish-1", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
