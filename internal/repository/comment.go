package repository

import (
	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for record comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByReference retrieves the comments of a record, oldest first
func (r *CommentRepository) GetByReference(referenceType string, referenceID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}
