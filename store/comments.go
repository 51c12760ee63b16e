package store

import (
	"context"

	"github.com/cratenotes/cratenotes/models"
)

// FindComments returns one page of a post's comments, newest first,
// with creators joined in. Whether postID denotes an existing post is
// not checked here; a feed for an unknown post is simply empty.
func (s *Store) FindComments(ctx context.Context, postID uint, page Page) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Joins("User").
		Where("comments.post_id = ?", postID).
		Scopes(page.scope("comments")).
		Find(&comments).Error
	if err != nil {
		return nil, wrap("store.FindComments", err)
	}
	return comments, nil
}

// InsertComment persists a comment with a server-assigned id and
// timestamp and returns the stored row including its creator.
func (s *Store) InsertComment(ctx context.Context, postID uint, content string, authorID uint) (*models.Comment, error) {
	comment := models.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, wrap("store.InsertComment", err)
	}
	if err := s.db.WithContext(ctx).Joins("User").First(&comment, "comments.id = ?", comment.ID).Error; err != nil {
		return nil, wrap("store.InsertComment", err)
	}
	return &comment, nil
}
