package services

import (
	"context"

	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService owns post validation and the post side of the referential
// integrity protocol: every post's ID is mirrored into its owner's post set.
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create validates and persists a new post, then appends its ID to the
// owner's post set. The two writes are not transactional: a failure on the
// append leaves the post orphaned and surfaces the error unchanged.
func (s *PostService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, &ValidationError{Message: "title is required"}
	}
	if req.Content == "" {
		return nil, &ValidationError{Message: "content is required"}
	}

	user, err := s.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "user"}
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.users.AppendPostRef(ctx, req.UserID, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

// GetAll returns all posts.
func (s *PostService) GetAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetAllPosts(ctx)
}

// GetByID returns a post by ID, or nil when absent.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetPostByID(ctx, id)
}

// Update applies the non-empty fields of the request to an existing post.
func (s *PostService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	return s.posts.UpdatePost(ctx, id, req)
}

// Delete removes a post and returns the deleted document, or nil when the
// post was already absent. The post's ID is unconditionally pulled from any
// user's post set holding it, so a re-delete is a no-op.
func (s *PostService) Delete(ctx context.Context, id string) (*models.Post, error) {
	deleted, err := s.posts.DeletePost(ctx, id)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	if err := s.users.PullPostRef(ctx, objID); err != nil {
		return nil, err
	}
	return deleted, nil
}
