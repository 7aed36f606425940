package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// contracts: nil results for absent documents, ErrInvalidID for malformed
// hex, idempotent pulls.

type fakeUserRepo struct {
	users     map[primitive.ObjectID]*models.User
	appendErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Posts == nil {
		user.Posts = []primitive.ObjectID{}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.users[objID], nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) AppendPostRef(_ context.Context, userID string, postID primitive.ObjectID) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, userID)
	}
	if u, ok := r.users[objID]; ok {
		u.Posts = append(u.Posts, postID)
	}
	return nil
}

func (r *fakeUserRepo) PullPostRef(_ context.Context, postID primitive.ObjectID) error {
	for _, u := range r.users {
		u.Posts = removeRef(u.Posts, postID)
	}
	return nil
}

type fakePostRepo struct {
	posts     map[primitive.ObjectID]*models.Post
	appendErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*models.Post{}}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.posts[objID], nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	all := []models.Post{}
	for _, p := range r.posts {
		all = append(all, *p)
	}
	return all, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id string, update *models.UpdatePostRequest) (*models.Post, error) {
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

func (r *fakePostRepo) DeletePost(_ context.Context, id string) (*models.Post, error) {
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

func (r *fakePostRepo) AppendCommentRef(_ context.Context, postID string, commentID primitive.ObjectID) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("%w: %q", repositories.ErrInvalidID, postID)
	}
	if p, ok := r.posts[objID]; ok {
		p.Comments = append(p.Comments, commentID)
	}
	return nil
}

func (r *fakePostRepo) PullCommentRef(_ context.Context, commentID primitive.ObjectID) error {
	for _, p := range r.posts {
		p.Comments = removeRef(p.Comments, commentID)
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[primitive.ObjectID]*models.Comment{}}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	return r.comments[objID], nil
}

func (r *fakeCommentRepo) GetAllComments(_ context.Context) ([]models.Comment, error) {
	all := []models.Comment{}
	for _, c := range r.comments {
		all = append(all, *c)
	}
	return all, nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
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

func (r *fakeCommentRepo) UpdateComment(_ context.Context, id string, update *models.UpdateCommentRequest) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id)
	}
	comment, ok := r.comments[objID]
	if !ok {
		return nil, nil
	}
	if update.Content != "" {
		comment.Content = update.Content
	}
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id string) (*models.Comment, error) {
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

func removeRef(refs []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := refs[:0]
	for _, ref := range refs {
		if ref != id {
			kept = append(kept, ref)
		}
	}
	return kept
}
