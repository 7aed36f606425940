package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Minimal in-memory repositories for exercising the HTTP surface without a
// live MongoDB. They follow the Mongo implementations' contracts: nil for
// absent documents, ErrInvalidID for malformed hex, idempotent pulls.

type memUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.Posts = []primitive.ObjectID{}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.users[objID], nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) AppendPostRef(_ context.Context, userID string, postID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, userID)
	}
	if u, ok := r.users[objID]; ok {
		u.Posts = append(u.Posts, postID)
	}
	return nil
}

func (r *memUserRepo) PullPostRef(_ context.Context, postID primitive.ObjectID) error {
	for _, u := range r.users {
		u.Posts = withoutRef(u.Posts, postID)
	}
	return nil
}

type memPostRepo struct {
	posts map[primitive.ObjectID]*models.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[primitive.ObjectID]*models.Post{}}
}

func (r *memPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	post.Comments = []primitive.ObjectID{}
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.posts[objID], nil
}

func (r *memPostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	all := []models.Post{}
	for _, p := range r.posts {
		all = append(all, *p)
	}
	return all, nil
}

func (r *memPostRepo) UpdatePost(_ context.Context, id string, update *models.UpdatePostRequest) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	post, ok := r.posts[objID]
	if !ok {
		return nil, nil
	}
	if update.Title != "" {
		post.Title = update.Title
	}
	if update.Content != "" {
		post.Content = update.Content
	}
	post.UpdatedAt = time.Now()
	return post, nil
}

func (r *memPostRepo) DeletePost(_ context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	post, ok := r.posts[objID]
	if !ok {
		return nil, nil
	}
	delete(r.posts, objID)
	return post, nil
}

func (r *memPostRepo) AppendCommentRef(_ context.Context, postID string, commentID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, postID)
	}
	if p, ok := r.posts[objID]; ok {
		p.Comments = append(p.Comments, commentID)
	}
	return nil
}

func (r *memPostRepo) PullCommentRef(_ context.Context, commentID primitive.ObjectID) error {
	for _, p := range r.posts {
		p.Comments = withoutRef(p.Comments, commentID)
	}
	return nil
}

type memCommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[primitive.ObjectID]*models.Comment{}}
}

func (r *memCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.comments[objID], nil
}

func (r *memCommentRepo) GetAllComments(_ context.Context) ([]models.Comment, error) {
	all := []models.Comment{}
	for _, c := range r.comments {
		all = append(all, *c)
	}
	return all, nil
}

func (r *memCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, postID)
	}
	matching := []models.Comment{}
	for _, c := range r.comments {
		if c.PostID == objID {
			matching = append(matching, *c)
		}
	}
	return matching, nil
}

func (r *memCommentRepo) UpdateComment(_ context.Context, id string, update *models.UpdateCommentRequest) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	comment, ok := r.comments[objID]
	if !ok {
		return nil, nil
	}
	comment.Content = update.Content
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (r *memCommentRepo) DeleteComment(_ context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	comment, ok := r.comments[objID]
	if !ok {
		return nil, nil
	}
	delete(r.comments, objID)
	return comment, nil
}

func withoutRef(refs []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := refs[:0]
	for _, ref := range refs {
		if ref != id {
			kept = append(kept, ref)
		}
	}
	return kept
}
