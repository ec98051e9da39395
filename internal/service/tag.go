package service

import (
	"strings"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
	"github.com/budgt/budgt/internal/validation"
)

type TagService struct {
	repo store.Repository
}

func NewTagService(repo store.Repository) *TagService {
	return &TagService{repo: repo}
}

func (tg *TagService) CreateTag(name, color string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &validation.Error{Field: "tag name", Reason: "can't be empty"}
	}

	tag := &model.Tag{Name: name, Color: color}
	newID, err := tg.repo.CreateTag(tag)
	if err != nil {
		return nil, err
	}
	tag.ID = newID

	return tag, nil
}

func (tg *TagService) GetAllTags() ([]*model.Tag, error) {
	return tg.repo.GetAllTags()
}
