package services

import (
	"context"

	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentService owns comment validation and the comment side of the
// referential integrity protocol: every comment's ID is mirrored into its
// post's comment set.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository, users repositories.UserRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// Create validates and persists a new comment, then appends its ID to the
// post's comment set. The two writes are not transactional: a failure on
// the append leaves the comment orphaned and surfaces the error unchanged.
func (s *CommentService) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
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

	post, err := s.posts.GetPostByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &NotFoundError{Entity: "post"}
	}

	comment := &models.Comment{
		Content: req.Content,
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.posts.AppendCommentRef(ctx, req.PostID, comment.ID); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetAll returns all comments.
func (s *CommentService) GetAll(ctx context.Context) ([]models.Comment, error) {
	return s.comments.GetAllComments(ctx)
}

// GetByPostID returns all comments made on a post.
func (s *CommentService) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.comments.GetCommentsByPostID(ctx, postID)
}

// Update applies the request to an existing comment.
func (s *CommentService) Update(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.Comment, error) {
	if req.Content == "" {
		return nil, &ValidationError{Message: "content is required"}
	}
	return s.comments.UpdateComment(ctx, id, req)
}

// Delete removes a comment and returns the deleted document, or nil when
// the comment was already absent. The comment's ID is unconditionally
// pulled from any post's comment set holding it, so deleting an ID that was
// never a member is a no-op.
func (s *CommentService) Delete(ctx context.Context, id string) (*models.Comment, error) {
	deleted, err := s.comments.DeleteComment(ctx, id)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.PullCommentRef(ctx, objID); err != nil {
		return nil, err
	}
	return deleted, nil
}
