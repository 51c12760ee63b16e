package store

import (
	"context"

	"github.com/cratenotes/cratenotes/models"
)

// FindPosts returns one feed page, newest first, each row carrying its
// creator. authorID of 0 means no author filter. The creator comes in
// via a join rather than a second query per page.
func (s *Store) FindPosts(ctx context.Context, page Page, authorID uint) ([]models.Post, error) {
	q := s.db.WithContext(ctx).
		Joins("User").
		Scopes(page.scope("posts"))
	if authorID != 0 {
		q = q.Where("posts.user_id = ?", authorID)
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, wrap("store.FindPosts", err)
	}
	return posts, nil
}

// GetPost loads a single post with its creator.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Joins("User").First(&post, "posts.id = ?", id).Error; err != nil {
		return nil, wrap("store.GetPost", err)
	}
	return &post, nil
}

// InsertPost persists a new post. The id and creation timestamp are
// assigned here, not by the caller, and the stored row is reloaded with
// its creator so the response matches what feeds return.
func (s *Store) InsertPost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return wrap("store.InsertPost", err)
	}
	if err := s.db.WithContext(ctx).Joins("User").First(post, "posts.id = ?", post.ID).Error; err != nil {
		return wrap("store.InsertPost", err)
	}
	return nil
}
