package service

import (
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	"nestegg/internal/repository"

	"github.com/google/uuid"
)

// MaxThoughtContentLength bounds thought content, matching the column
// width in the schema.
const MaxThoughtContentLength = 2000

type ThoughtService interface {
	// ListRoots returns top-level thoughts newest first, each carrying
	// its full subtree.
	ListRoots() ([]domain.ThoughtNode, error)
	Create(content string, parentID *uuid.UUID) (*domain.ThoughtNode, error)
	Update(id uuid.UUID, content string) (*domain.ThoughtNode, error)
	Delete(id uuid.UUID) error
}

func NewThoughtService(thoughtRepository repository.ThoughtRepository) ThoughtService {
	return thoughtServiceHandler{
		ThoughtRepository: thoughtRepository,
	}
}

type thoughtServiceHandler struct {
	ThoughtRepository repository.ThoughtRepository
}

func (h thoughtServiceHandler) ListRoots() ([]domain.ThoughtNode, error) {
	thoughts, err := h.ThoughtRepository.List()
	if err != nil {
		return nil, err
	}

	return domain.BuildForest(thoughts), nil
}

func (h thoughtServiceHandler) Create(content string, parentID *uuid.UUID) (*domain.ThoughtNode, error) {
	if parentID != nil {
		if _, err := h.ThoughtRepository.Get(*parentID); err != nil {
			return nil, fmt.Errorf("parent thought not found: %w", err)
		}
	}

	saved, err := h.ThoughtRepository.Add(model.Thought{
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		return nil, err
	}

	node := domain.ProjectThought(*saved)
	return &node, nil
}

func (h thoughtServiceHandler) Update(id uuid.UUID, content string) (*domain.ThoughtNode, error) {
	updated, err := h.ThoughtRepository.UpdateContent(id, content)
	if err != nil {
		return nil, err
	}

	node := domain.ProjectThought(*updated)
	return &node, nil
}

func (h thoughtServiceHandler) Delete(id uuid.UUID) error {
	// a single delete; the store's cascade takes the descendants
	return h.ThoughtRepository.Delete(id)
}
