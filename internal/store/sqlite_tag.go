package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"

	"github.com/budgt/budgt/internal/ids"
	"github.com/budgt/budgt/internal/model"
)

func (s *Store) CreateTag(tag *model.Tag) (string, error) {
	newID := ids.New()

	_, err := s.db.Exec(`
        INSERT INTO tags (id, name, color)
        VALUES (?, ?, ?);
    `, newID, tag.Name, tag.Color)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return "", fmt.Errorf("failed to create tag '%s': %w", tag.Name, ErrTagExists)
			}
		}
		return "", fmt.Errorf("failed to insert tag : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllTags() ([]*model.Tag, error) {
	rows, err := s.db.Query("SELECT id, name, color FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tags []*model.Tag
	for rows.Next() {
		tag := &model.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func (s *Store) UpsertTag(tag *model.Tag) error {
	_, err := s.db.Exec(`
        INSERT OR REPLACE INTO tags (id, name, color)
        VALUES (?, ?, ?);
    `, tag.ID, tag.Name, tag.Color)
	if err != nil {
		return fmt.Errorf("failed to upsert tag %s: %w", tag.ID, err)
	}
	return nil
}
