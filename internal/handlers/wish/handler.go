package wish

import (
	"net/http"
	"wishnest/infras/otel"
	"wishnest/internal/domains/wish/model"
	"wishnest/internal/domains/wish/model/dto"
	"wishnest/internal/domains/wish/service"
	"wishnest/shared/constant"
	"wishnest/shared/failure"
	gDto "wishnest/shared/dto"
	"wishnest/shared/validator"
	"wishnest/transport/http/middleware"
	"wishnest/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Wish
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Wish, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wishes", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.OptionalAuth).Get("/", handler.GetWishes)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.Auth)
			protected.Post("/", handler.CreateWish)
			protected.Get("/{id}", handler.GetWishByID)
			protected.Put("/{id}", handler.UpdateWish)
			protected.Patch("/{id}/visibility", handler.SetWishVisibility)
			protected.Delete("/{id}", handler.DeleteWish)
		})
	})

	router.Get("/shared/{id}", handler.GetSharedWish)
}

// CreateWish handles the creation of a new wish.
// @Summary Create a new wish
// @Description Create a new wish with the provided details. Images are sent as base64 data URIs.
// @Tags Wish
// @Accept json
// @Produce json
// @Param request body dto.CreateWishRequest true "Create Wish Request"
// @Success 201 {object} response.Message "Wish created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes [post]
// @Security BearerAuth
func (handler *Handler) CreateWish(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWish")
	defer scope.End()

	req := dto.CreateWishRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create wish")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Wish created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Wish created successfully")
}

// GetWishes retrieves the caller's wishes based on query parameters.
// Anonymous callers receive an empty list.
// @Summary Get all wishes
// @Description Retrieve the authenticated user's wishes with optional filtering and pagination.
// @Tags Wish
// @Accept json
// @Produce json
// @Param q query string false "Search in item name and description"
// @Param priority query string false "Filter by priority (High, Medium, Low)"
// @Param status query string false "Filter by status (pending, completed)"
// @Success 200 {object} dto.GetWishesResponse "List of wishes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes [get]
// @Security BearerAuth
func (handler *Handler) GetWishes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWishes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy != "" && !model.IsSortableField(queryParams.SortBy) {
		err := failure.BadRequestFromString("unsupported sort_by field")
		scope.TraceError(err)
		log.Error().Str("sort_by", queryParams.SortBy).Msg("rejected sort field")

		response.WithError(w, err)

		return
	}

	req := dto.ListWishesRequest{
		Query:    r.URL.Query().Get(constant.RequestParamQuery),
		Priority: r.URL.Query().Get(constant.RequestParamPriority),
		Status:   r.URL.Query().Get(constant.RequestParamStatus),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query filters")

		response.WithError(w, err)

		return
	}

	wishes, err := handler.service.GetAll(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wishes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wishes retrieved successfully")

	response.WithJSON(w, http.StatusOK, wishes)
}

// GetWishByID retrieves one of the caller's wishes by its ID.
// @Summary Get a wish by ID
// @Description Retrieve a wish owned by the authenticated user.
// @Tags Wish
// @Accept json
// @Produce json
// @Param id path string true "Wish ID"
// @Success 200 {object} dto.WishResponse "Wish details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetWishByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWishByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	wish, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wish by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wish retrieved successfully")

	response.WithJSON(w, http.StatusOK, wish)
}

// UpdateWish replaces an existing wish's editable fields.
// @Summary Update a wish by ID
// @Description Update the details of an existing wish. Omitted optional fields are cleared.
// @Tags Wish
// @Accept json
// @Produce json
// @Param id path string true "Wish ID"
// @Param request body dto.UpdateWishRequest true "Update Wish Request"
// @Success 200 {object} response.Message "Wish updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateWish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWish")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateWishRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update wish")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Wish updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Wish updated successfully")
}

// SetWishVisibility toggles whether a wish is publicly shareable.
// @Summary Set wish visibility
// @Description Mark a wish as public or private. Public wishes are reachable through the shared endpoint.
// @Tags Wish
// @Accept json
// @Produce json
// @Param id path string true "Wish ID"
// @Param request body dto.SetVisibilityRequest true "Set Visibility Request"
// @Success 200 {object} response.Message "Wish visibility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes/{id}/visibility [patch]
// @Security BearerAuth
func (handler *Handler) SetWishVisibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWishVisibility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetVisibilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetVisibility(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set wish visibility")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Wish visibility updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Wish visibility updated successfully")
}

// DeleteWish deletes a wish by its ID.
// @Summary Delete a wish by ID
// @Description Delete a wish owned by the authenticated user. Attached images are removed from storage.
// @Tags Wish
// @Accept json
// @Produce json
// @Param id path string true "Wish ID"
// @Success 200 {object} response.Message "Wish deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wishes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteWish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWish")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete wish")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Wish deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Wish deleted successfully")
}

// GetSharedWish retrieves a publicly shared wish without authentication.
// @Summary Get a shared wish
// @Description Retrieve a wish that its owner has marked as public.
// @Tags Wish
// @Accept json
// @Produce json
// @Param id path string true "Wish ID"
// @Success 200 {object} dto.WishResponse "Shared wish details"
// @Failure 404 {object} response.Error
// @Router /v1/shared/{id} [get]
func (handler *Handler) GetSharedWish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSharedWish")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	wish, err := handler.service.GetShared(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("wish_id", id).Msg("failed to get shared wish")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shared wish retrieved successfully")

	response.WithJSON(w, http.StatusOK, wish)
}
