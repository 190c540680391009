package domain

import (
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/util"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_BuildForest(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, BuildForest(nil))
	})

	t.Run("nests to arbitrary depth", func(t *testing.T) {
		root := uuid.New()
		mid := uuid.New()
		leaf := uuid.New()

		forest := BuildForest([]model.Thought{
			{ThoughtID: root, Content: "root", CreatedAt: util.NewDate(2025, 1, 1)},
			{ThoughtID: mid, Content: "mid", ParentID: &root, CreatedAt: util.NewDate(2025, 1, 2)},
			{ThoughtID: leaf, Content: "leaf", ParentID: &mid, CreatedAt: util.NewDate(2025, 1, 3)},
		})

		require.Len(t, forest, 1)
		require.Equal(t, root, forest[0].ThoughtID)
		require.Len(t, forest[0].SubThoughts, 1)
		require.Equal(t, mid, forest[0].SubThoughts[0].ThoughtID)
		require.Len(t, forest[0].SubThoughts[0].SubThoughts, 1)
		require.Equal(t, leaf, forest[0].SubThoughts[0].SubThoughts[0].ThoughtID)
	})

	t.Run("roots newest first, children oldest first", func(t *testing.T) {
		oldRoot := uuid.New()
		newRoot := uuid.New()
		firstChild := uuid.New()
		secondChild := uuid.New()

		forest := BuildForest([]model.Thought{
			{ThoughtID: oldRoot, CreatedAt: util.NewDate(2025, 1, 1)},
			{ThoughtID: newRoot, CreatedAt: util.NewDate(2025, 2, 1)},
			{ThoughtID: secondChild, ParentID: &oldRoot, CreatedAt: util.NewDate(2025, 1, 20)},
			{ThoughtID: firstChild, ParentID: &oldRoot, CreatedAt: util.NewDate(2025, 1, 10)},
		})

		require.Equal(t, newRoot, forest[0].ThoughtID)
		require.Equal(t, oldRoot, forest[1].ThoughtID)
		require.Equal(t, firstChild, forest[1].SubThoughts[0].ThoughtID)
		require.Equal(t, secondChild, forest[1].SubThoughts[1].ThoughtID)
	})

	t.Run("child rows never surface as roots", func(t *testing.T) {
		root := uuid.New()
		child := uuid.New()

		forest := BuildForest([]model.Thought{
			{ThoughtID: root, CreatedAt: util.NewDate(2025, 1, 1)},
			{ThoughtID: child, ParentID: &root, CreatedAt: util.NewDate(2025, 1, 2)},
		})

		require.Len(t, forest, 1)
		for _, node := range forest {
			require.NotEqual(t, child, node.ThoughtID)
		}
	})
}
