package impl

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/errors"
	"hub/internal/usecase"
	"hub/internal/validation"
)

const (
	minCategories = 1
	maxCategories = 3
)

// resourceService implements the ResourceUsecase interface.
type resourceService struct {
	resourceRepo repository.ResourceRepository
	logger       *slog.Logger
}

// ResourceServiceParams holds dependencies for resourceService, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	ResourceRepo repository.ResourceRepository
	Logger       *slog.Logger
}

// NewResourceService is the constructor for resourceService.
func NewResourceService(params ResourceServiceParams) usecase.ResourceUsecase {
	return &resourceService{
		resourceRepo: params.ResourceRepo,
		logger:       params.Logger,
	}
}

func (srv *resourceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates and persists a new resource shared by the given uploader.
func (srv *resourceService) Create(ctx context.Context, uploaderID primitive.ObjectID, input usecase.CreateResourceInput) (*entity.Resource, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resource title is required")
	}
	if len(input.Categories) < minCategories || len(input.Categories) > maxCategories {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resource requires 1 to 3 categories")
	}
	if !validation.IsValidFileType(input.FileType) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown file type")
	}
	// A resource must point somewhere: an uploaded file, an external link, or both.
	if input.FileURL == "" && input.ExternalLink == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resource requires a file or an external link")
	}

	resource := &entity.Resource{
		Title:        input.Title,
		Description:  input.Description,
		Categories:   input.Categories,
		FileType:     input.FileType,
		FileURL:      input.FileURL,
		ExternalLink: input.ExternalLink,
		UploaderID:   uploaderID,
		BookmarkedBy: []primitive.ObjectID{},
		Rating:       0,
	}

	if err := srv.resourceRepo.Create(ctx, resource); err != nil {
		srv.log(ctx).Error("Failed to create resource", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create resource")
	}

	srv.log(ctx).Debug("Resource created",
		slog.String("resourceID", resource.ID.Hex()), slog.String("uploaderID", uploaderID.Hex()))

	return resource, nil
}

// List returns resources matching the filter, newest first.
func (srv *resourceService) List(ctx context.Context, filter repository.ResourceFilter) ([]*entity.Resource, error) {
	resources, err := srv.resourceRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	return resources, nil
}

// Get returns a single resource by id.
func (srv *resourceService) Get(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error) {
	resource, err := srv.resourceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("resource lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find resource by id")
	}

	return resource, nil
}
