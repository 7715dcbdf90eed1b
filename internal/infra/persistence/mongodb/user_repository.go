package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using the MongoDB driver.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.users.FindOne(ctx, bson.M{"_id": id}).Decode(&userM)
	if err != nil {
		// If the document is missing, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return model.ToUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their exact email address.
// The lookup is case-sensitive: emails match exactly as stored.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.users.FindOne(ctx, bson.M{"email": email}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new user entity and assigns the store-generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Bookmarks == nil {
		user.Bookmarks = []primitive.ObjectID{}
	}

	userM := model.FromUserDomain(user)

	result, err := repo.users.InsertOne(ctx, userM)
	if err != nil {
		// The unique email index fires here when the signup pre-check raced.
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type for user")
	}
	user.ID = insertedID

	return nil
}

// AddBookmark adds a resource id to the user's bookmark set via $addToSet,
// so repeated adds leave a single entry.
func (repo *userRepository) AddBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error {
	_, err := repo.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"bookmarks": resourceID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to add bookmark")
	}

	return nil
}

// RemoveBookmark removes a resource id from the user's bookmark set via $pull.
func (repo *userRepository) RemoveBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error {
	_, err := repo.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"bookmarks": resourceID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to remove bookmark")
	}

	return nil
}
