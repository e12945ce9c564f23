package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alumniport/internal/auth"
	"alumniport/internal/errors"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

// PostService handles the feed: posts and their likes and comments.
// Every operation takes the caller's verified claims; role and ownership
// checks happen here, not in handlers.
type PostService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
	CreatePost(ctx context.Context, caller *auth.Claims, content string) (*model.Post, error)
	DeletePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) error
	LikePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) ([]model.Like, error)
	UnlikePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, caller *auth.Claims, id uuid.UUID, text string) ([]model.Comment, error)
	DeleteComment(ctx context.Context, caller *auth.Claims, postID, commentID uuid.UUID) ([]model.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// ListPosts returns all posts newest-first.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts, nil
}

// GetPost returns one post with its likes and comments.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	normalizePost(post)
	return post, nil
}

// CreatePost appends a new post authored by the caller. Only alumni may
// post; the author snapshot is taken from the claims at this moment and
// never updated afterwards.
func (s *postService) CreatePost(ctx context.Context, caller *auth.Claims, content string) (*model.Post, error) {
	if caller.Role != model.RoleAlumni {
		return nil, errors.ErrAlumniOnly
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrEmptyContent
	}

	post := &model.Post{
		AuthorID:         caller.UserID,
		AuthorName:       caller.Name,
		AuthorRole:       caller.Role,
		AuthorBatch:      caller.BatchYear,
		AuthorBranch:     caller.Branch,
		AuthorProfilePic: caller.ProfilePicture,
		Content:          content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	normalizePost(post)
	return post, nil
}

// DeletePost removes a post. Only the author may delete it.
func (s *postService) DeletePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.AuthorID != caller.UserID {
		return errors.ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// LikePost adds the caller's like to a post. The precondition check and
// the insert run under a row lock on the post so that two concurrent
// likes by the same user cannot both pass the check; likes by distinct
// users serialize and both land.
func (s *postService) LikePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) ([]model.Like, error) {
	err := s.postRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PostRepository) error {
		if _, err := txRepo.FindByIDForUpdate(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPostNotFound
			}
			return err
		}

		liked, err := txRepo.HasLike(ctx, id, caller.UserID)
		if err != nil {
			return err
		}
		if liked {
			return errors.ErrAlreadyLiked
		}

		err = txRepo.CreateLike(ctx, &model.Like{
			PostID:     id,
			UserID:     caller.UserID,
			Name:       caller.Name,
			Role:       caller.Role,
			ProfilePic: caller.ProfilePicture,
		})
		// The unique index backs up the row lock.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrAlreadyLiked
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.likesOf(ctx, id)
}

// UnlikePost removes the caller's like. Unliking a post that was never
// liked fails rather than silently succeeding.
func (s *postService) UnlikePost(ctx context.Context, caller *auth.Claims, id uuid.UUID) ([]model.Like, error) {
	err := s.postRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PostRepository) error {
		if _, err := txRepo.FindByIDForUpdate(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPostNotFound
			}
			return err
		}

		liked, err := txRepo.HasLike(ctx, id, caller.UserID)
		if err != nil {
			return err
		}
		if !liked {
			return errors.ErrNotLiked
		}

		return txRepo.DeleteLike(ctx, id, caller.UserID)
	})
	if err != nil {
		return nil, err
	}

	return s.likesOf(ctx, id)
}

// AddComment appends a comment to a post and returns the updated list.
func (s *postService) AddComment(ctx context.Context, caller *auth.Claims, id uuid.UUID, text string) ([]model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.ErrEmptyComment
	}

	err := s.postRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PostRepository) error {
		if _, err := txRepo.FindByIDForUpdate(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPostNotFound
			}
			return err
		}

		return txRepo.CreateComment(ctx, &model.Comment{
			PostID:     id,
			UserID:     caller.UserID,
			Name:       caller.Name,
			Role:       caller.Role,
			ProfilePic: caller.ProfilePicture,
			Text:       text,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.commentsOf(ctx, id)
}

// DeleteComment removes a comment by id. Only the comment's author may
// delete it; the post's author has no special rights here.
func (s *postService) DeleteComment(ctx context.Context, caller *auth.Claims, postID, commentID uuid.UUID) ([]model.Comment, error) {
	err := s.postRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PostRepository) error {
		if _, err := txRepo.FindByIDForUpdate(ctx, postID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPostNotFound
			}
			return err
		}

		comment, err := txRepo.FindCommentByID(ctx, postID, commentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrCommentNotFound
			}
			return err
		}

		if comment.UserID != caller.UserID {
			return errors.ErrNotCommentAuthor
		}

		return txRepo.DeleteComment(ctx, postID, commentID)
	})
	if err != nil {
		return nil, err
	}

	return s.commentsOf(ctx, postID)
}

func (s *postService) likesOf(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	if likes == nil {
		likes = []model.Like{}
	}
	return likes, nil
}

func (s *postService) commentsOf(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.postRepo.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

// normalizePost keeps like/comment lists serializing as [] instead of null.
func normalizePost(post *model.Post) {
	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
}
