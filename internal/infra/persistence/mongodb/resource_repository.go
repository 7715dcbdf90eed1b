package mongodb

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"
)

// resourceRepository implements the domain.ResourceRepository interface using the MongoDB driver.
type resourceRepository struct {
	resources *mongo.Collection
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *mongo.Database) repository.ResourceRepository {
	return &resourceRepository{
		resources: db.Collection(resourcesCollection),
	}
}

// FindByID retrieves a single resource by its unique ID.
func (repo *resourceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error) {
	var resourceM model.ResourceModel
	err := repo.resources.FindOne(ctx, bson.M{"_id": id}).Decode(&resourceM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find resource by id")
	}

	return model.ToResourceDomain(&resourceM), nil
}

// FindByIDs retrieves all resources whose ids are in the given set.
func (repo *resourceRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Resource, error) {
	if len(ids) == 0 {
		return []*entity.Resource{}, nil
	}

	cursor, err := repo.resources.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find resources by ids")
	}

	return decodeResources(ctx, cursor)
}

// Find retrieves resources matching the filter, newest first.
func (repo *resourceRepository) Find(ctx context.Context, filter repository.ResourceFilter) ([]*entity.Resource, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["categories"] = filter.Category
	}
	if filter.FileType != "" {
		query["file_type"] = filter.FileType
	}
	if filter.Search != "" {
		// QuoteMeta so user search input is matched literally.
		query["title"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.resources.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find resources")
	}

	return decodeResources(ctx, cursor)
}

// Create persists a new resource entity and assigns the store-generated ID.
func (repo *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now().UTC()
	}
	if resource.BookmarkedBy == nil {
		resource.BookmarkedBy = []primitive.ObjectID{}
	}

	resourceM := model.FromResourceDomain(resource)

	result, err := repo.resources.InsertOne(ctx, resourceM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create resource")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type for resource")
	}
	resource.ID = insertedID

	return nil
}

// AddBookmarkedBy adds a user id to the resource's back-reference set via $addToSet.
func (repo *resourceRepository) AddBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error {
	_, err := repo.resources.UpdateOne(ctx,
		bson.M{"_id": resourceID},
		bson.M{"$addToSet": bson.M{"bookmarked_by": userID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to add bookmarked_by back-reference")
	}

	return nil
}

// RemoveBookmarkedBy removes a user id from the resource's back-reference set via $pull.
func (repo *resourceRepository) RemoveBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error {
	_, err := repo.resources.UpdateOne(ctx,
		bson.M{"_id": resourceID},
		bson.M{"$pull": bson.M{"bookmarked_by": userID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to remove bookmarked_by back-reference")
	}

	return nil
}

// decodeResources drains a cursor into domain entities.
func decodeResources(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Resource, error) {
	defer cursor.Close(ctx)

	resources := []*entity.Resource{}
	for cursor.Next(ctx) {
		var resourceM model.ResourceModel
		if err := cursor.Decode(&resourceM); err != nil {
			return nil, errors.Wrap(err, "failed to decode resource document")
		}
		resources = append(resources, model.ToResourceDomain(&resourceM))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "resource cursor failed")
	}

	return resources, nil
}
