package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/auth"
	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/repository"
)

// PageSize is the fixed number of articles per listing page.
const PageSize = 5

// ArticlePage is one page of the article listing.
type ArticlePage struct {
	Items    []model.Blog `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
}

// ContentService serves the public reading surface and comment submission.
type ContentService interface {
	ListArticles(ctx context.Context, page int) (*ArticlePage, error)
	FilterByTag(ctx context.Context, tagName string, page int) (*ArticlePage, error)
	GetArticle(ctx context.Context, id uint) (*model.Blog, error)
	AddComment(ctx context.Context, session *auth.Session, blogID uint, text string) (*model.Comment, error)
}

type contentService struct {
	blogRepo    repository.BlogRepository
	tagRepo     repository.TagRepository
	commentRepo repository.CommentRepository
}

// NewContentService creates a new content service.
func NewContentService(blogRepo repository.BlogRepository, tagRepo repository.TagRepository, commentRepo repository.CommentRepository) ContentService {
	return &contentService{
		blogRepo:    blogRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
	}
}

// ListArticles returns one page of articles, newest first. A page past the
// end is an empty page, not an error.
func (s *contentService) ListArticles(ctx context.Context, page int) (*ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	items, err := s.blogRepo.ListPage(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	total, err := s.blogRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	return &ArticlePage{Items: items, Page: page, PageSize: PageSize, Total: total}, nil
}

// FilterByTag returns the same listing restricted to blogs linked to the
// named tag. An unknown tag name is a not-found, unlike an empty page.
func (s *contentService) FilterByTag(ctx context.Context, tagName string, page int) (*ArticlePage, error) {
	tag, err := s.tagRepo.FindByName(ctx, tagName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag %q", apperrors.ErrNotFound, tagName)
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}

	if page < 1 {
		page = 1
	}
	items, err := s.blogRepo.ListPageByTag(ctx, tag.ID, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list articles by tag: %w", err)
	}
	total, err := s.blogRepo.CountByTag(ctx, tag.ID)
	if err != nil {
		return nil, fmt.Errorf("count articles by tag: %w", err)
	}
	return &ArticlePage{Items: items, Page: page, PageSize: PageSize, Total: total}, nil
}

// GetArticle loads one blog with its author, tags and comments.
func (s *contentService) GetArticle(ctx context.Context, id uint) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog id %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	comments, err := s.commentRepo.ListByBlog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	blog.Comments = comments
	return blog, nil
}

// AddComment appends a comment by the session user, timestamped now.
func (s *contentService) AddComment(ctx context.Context, session *auth.Session, blogID uint, text string) (*model.Comment, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: field %q is required", apperrors.ErrValidation, "content")
	}

	if _, err := s.blogRepo.FindByID(ctx, blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog id %d", apperrors.ErrNotFound, blogID)
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	comment := &model.Comment{
		Text:      text,
		AuthorID:  session.UserID,
		Timestamp: time.Now(),
		BlogID:    blogID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}
