package services

import (
	"context"

	"github.com/anik404/go-blog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReconcileReport summarizes one consistency sweep.
type ReconcileReport struct {
	DanglingCommentRefs int `json:"dangling_comment_refs"`
	DanglingPostRefs    int `json:"dangling_post_refs"`
}

// ReconcileService compensates for the non-transactional two-write
// sequences: a crash between a child delete and the parent-side pull can
// leave a parent referencing a child that no longer exists. The sweep
// removes such dangling references.
type ReconcileService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

// NewReconcileService creates a new ReconcileService
func NewReconcileService(users repositories.UserRepository, posts repositories.PostRepository, comments repositories.CommentRepository) *ReconcileService {
	return &ReconcileService{users: users, posts: posts, comments: comments}
}

// Run sweeps all parent reference sets and pulls entries whose child
// document is gone. Pulls are idempotent, so concurrent writers are safe.
func (s *ReconcileService) Run(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{}

	comments, err := s.comments.GetAllComments(ctx)
	if err != nil {
		return nil, err
	}
	liveComments := make(map[primitive.ObjectID]bool, len(comments))
	for _, c := range comments {
		liveComments[c.ID] = true
	}

	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	livePosts := make(map[primitive.ObjectID]bool, len(posts))
	for _, p := range posts {
		livePosts[p.ID] = true
		for _, ref := range p.Comments {
			if liveComments[ref] {
				continue
			}
			if err := s.posts.PullCommentRef(ctx, ref); err != nil {
				return nil, err
			}
			report.DanglingCommentRefs++
		}
	}

	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		for _, ref := range u.Posts {
			if livePosts[ref] {
				continue
			}
			if err := s.users.PullPostRef(ctx, ref); err != nil {
				return nil, err
			}
			report.DanglingPostRefs++
		}
	}

	return report, nil
}
