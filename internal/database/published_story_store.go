package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/glimmerhq/storyshowcase/internal/models"
)

// PublishedStoryStore handles published story database operations
type PublishedStoryStore struct {
	db *DB
}

// NewPublishedStoryStore creates a new published story store
func NewPublishedStoryStore(db *DB) *PublishedStoryStore {
	return &PublishedStoryStore{db: db}
}

// PublishStory inserts an approved story into the public feed
func (s *PublishedStoryStore) PublishStory(ctx context.Context, story models.PublishedStory) error {
	query := `
		INSERT INTO published_stories (
			id, owner, content_type_label, treatment_id, treatment_name,
			tags, confidence, media_type, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		story.ID, story.Owner, nullString(story.ContentTypeLabel),
		story.TreatmentID, nullString(story.TreatmentName),
		pq.Array(story.Tags), story.Confidence, string(story.MediaType), story.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert published story: %w", err)
	}

	return nil
}

// ListRecent returns the most recently published stories, newest first
func (s *PublishedStoryStore) ListRecent(ctx context.Context, limit int) ([]models.PublishedStory, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, owner, content_type_label, treatment_id, treatment_name,
		       tags, confidence, media_type, published_at
		FROM published_stories
		ORDER BY published_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query published stories: %w", err)
	}
	defer rows.Close()

	var stories []models.PublishedStory
	for rows.Next() {
		var story models.PublishedStory
		var label, treatmentName sql.NullString
		var treatmentID sql.NullInt64
		var mediaType string

		if err := rows.Scan(
			&story.ID, &story.Owner, &label, &treatmentID, &treatmentName,
			pq.Array(&story.Tags), &story.Confidence, &mediaType, &story.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan published story: %w", err)
		}

		story.ContentTypeLabel = label.String
		story.TreatmentName = treatmentName.String
		if treatmentID.Valid {
			id := int(treatmentID.Int64)
			story.TreatmentID = &id
		}
		story.MediaType = models.MediaType(mediaType)
		if story.Tags == nil {
			story.Tags = []string{}
		}
		stories = append(stories, story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read published stories: %w", err)
	}

	return stories, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
