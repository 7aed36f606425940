package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/anik404/go-blog/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, update *models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id string) (*models.Post, error)
	AppendCommentRef(ctx context.Context, postID string, commentID primitive.ObjectID) error
	PullCommentRef(ctx context.Context, commentID primitive.ObjectID) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post and assigns its ID and timestamps
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID; returns nil when absent
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves all posts
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies the non-empty fields of the update to an existing post
// and returns the updated document, or nil when the post is absent.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, update *models.UpdatePostRequest) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Title != "" {
		set["title"] = update.Title
	}
	if update.Content != "" {
		set["content"] = update.Content
	}

	var post models.Post
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post and returns the deleted document, or nil when
// the post was already absent.
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var post models.Post
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// AppendCommentRef atomically appends a comment reference to the post's
// comment set, preserving creation order.
func (r *MongoPostRepository) AppendCommentRef(ctx context.Context, postID string, commentID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, postID)
	}
	update := bson.M{
		"$push": bson.M{"comments": commentID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}

// PullCommentRef atomically removes a comment reference from any post
// holding it. Safe to call for an ID no post references.
func (r *MongoPostRepository) PullCommentRef(ctx context.Context, commentID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"comments": commentID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.collection.UpdateMany(ctx, bson.M{"comments": commentID}, update)
	return err
}
