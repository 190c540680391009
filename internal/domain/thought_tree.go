package domain

import (
	"nestegg/internal/db/models/postgres/public/model"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ThoughtNode is a thought projected together with its subtree. Children
// are fully materialized before projection, so marshalling a node always
// yields the complete subtree.
type ThoughtNode struct {
	ThoughtID   uuid.UUID     `json:"id"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"createdAt"`
	ParentID    *uuid.UUID    `json:"parentId,omitempty"`
	SubThoughts []ThoughtNode `json:"subThoughts"`
}

// BuildForest assembles the parent/child forest from a flat row set.
// Relations are id references, so a single full load is enough; no row is
// visited twice as long as the rows form a forest. Roots come back newest
// first, children oldest first.
func BuildForest(thoughts []model.Thought) []ThoughtNode {
	childIDs := map[uuid.UUID][]uuid.UUID{}
	byID := map[uuid.UUID]model.Thought{}
	rootIDs := []uuid.UUID{}

	for _, t := range thoughts {
		byID[t.ThoughtID] = t
		if t.ParentID == nil {
			rootIDs = append(rootIDs, t.ThoughtID)
		} else {
			childIDs[*t.ParentID] = append(childIDs[*t.ParentID], t.ThoughtID)
		}
	}

	var project func(id uuid.UUID) ThoughtNode
	project = func(id uuid.UUID) ThoughtNode {
		t := byID[id]
		node := ThoughtNode{
			ThoughtID:   t.ThoughtID,
			Content:     t.Content,
			CreatedAt:   t.CreatedAt,
			ParentID:    t.ParentID,
			SubThoughts: []ThoughtNode{},
		}
		for _, childID := range childIDs[id] {
			node.SubThoughts = append(node.SubThoughts, project(childID))
		}
		sort.SliceStable(node.SubThoughts, func(i, j int) bool {
			return node.SubThoughts[i].CreatedAt.Before(node.SubThoughts[j].CreatedAt)
		})
		return node
	}

	out := []ThoughtNode{}
	for _, id := range rootIDs {
		out = append(out, project(id))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// ProjectThought projects a single row without children, for create and
// update responses.
func ProjectThought(t model.Thought) ThoughtNode {
	return ThoughtNode{
		ThoughtID:   t.ThoughtID,
		Content:     t.Content,
		CreatedAt:   t.CreatedAt,
		ParentID:    t.ParentID,
		SubThoughts: []ThoughtNode{},
	}
}
