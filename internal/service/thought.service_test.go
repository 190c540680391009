package service

import (
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	mock_repository "nestegg/internal/repository/mocks"
	"nestegg/internal/util"
	"testing"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ListRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
	handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

	t1 := uuid.New()
	t2 := uuid.New()
	t3 := uuid.New()

	thoughtRepository.EXPECT().List().Return([]model.Thought{
		{ThoughtID: t1, Content: "first root", CreatedAt: util.NewDate(2025, 3, 1)},
		{ThoughtID: t2, Content: "reply", ParentID: &t1, CreatedAt: util.NewDate(2025, 3, 2)},
		{ThoughtID: t3, Content: "second root", CreatedAt: util.NewDate(2025, 3, 3)},
	}, nil)

	roots, err := handler.ListRoots()
	require.NoError(t, err)

	want := []domain.ThoughtNode{
		{
			ThoughtID:   t3,
			Content:     "second root",
			CreatedAt:   util.NewDate(2025, 3, 3),
			SubThoughts: []domain.ThoughtNode{},
		},
		{
			ThoughtID: t1,
			Content:   "first root",
			CreatedAt: util.NewDate(2025, 3, 1),
			SubThoughts: []domain.ThoughtNode{
				{
					ThoughtID:   t2,
					Content:     "reply",
					ParentID:    &t1,
					CreatedAt:   util.NewDate(2025, 3, 2),
					SubThoughts: []domain.ThoughtNode{},
				},
			},
		},
	}

	if diff := cmp.Diff(want, roots); diff != "" {
		t.Errorf("unexpected forest (-want +got):\n%s", diff)
	}
}

func Test_CreateThought(t *testing.T) {
	t.Run("root thought", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
		handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

		saved := model.Thought{
			ThoughtID: uuid.New(),
			Content:   "standalone",
			CreatedAt: util.NewDate(2025, 3, 1),
		}
		thoughtRepository.EXPECT().
			Add(model.Thought{Content: "standalone"}).
			Return(&saved, nil)

		node, err := handler.Create("standalone", nil)
		require.NoError(t, err)
		require.Equal(t, saved.ThoughtID, node.ThoughtID)
		require.Nil(t, node.ParentID)
	})

	t.Run("child links to its parent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
		handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

		parentID := uuid.New()
		thoughtRepository.EXPECT().
			Get(parentID).
			Return(&model.Thought{ThoughtID: parentID, Content: "parent"}, nil)

		saved := model.Thought{
			ThoughtID: uuid.New(),
			Content:   "child",
			ParentID:  &parentID,
			CreatedAt: util.NewDate(2025, 3, 2),
		}
		thoughtRepository.EXPECT().
			Add(model.Thought{Content: "child", ParentID: &parentID}).
			Return(&saved, nil)

		node, err := handler.Create("child", &parentID)
		require.NoError(t, err)
		require.Equal(t, &parentID, node.ParentID)
	})

	t.Run("missing parent fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
		handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

		parentID := uuid.New()
		thoughtRepository.EXPECT().
			Get(parentID).
			Return(nil, fmt.Errorf("failed to get thought: %w", qrm.ErrNoRows))

		_, err := handler.Create("orphan", &parentID)
		require.ErrorIs(t, err, qrm.ErrNoRows)
	})
}

func Test_UpdateThought(t *testing.T) {
	ctrl := gomock.NewController(t)
	thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
	handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

	id := uuid.New()
	parentID := uuid.New()
	thoughtRepository.EXPECT().
		UpdateContent(id, "revised").
		Return(&model.Thought{
			ThoughtID: id,
			Content:   "revised",
			ParentID:  &parentID,
			CreatedAt: util.NewDate(2025, 3, 1),
		}, nil)

	node, err := handler.Update(id, "revised")
	require.NoError(t, err)
	require.Equal(t, "revised", node.Content)
	// parent linkage is untouched by content updates
	require.Equal(t, &parentID, node.ParentID)
}

func Test_DeleteThought(t *testing.T) {
	ctrl := gomock.NewController(t)
	thoughtRepository := mock_repository.NewMockThoughtRepository(ctrl)
	handler := thoughtServiceHandler{ThoughtRepository: thoughtRepository}

	id := uuid.New()
	// one call only - descendants are the store's job
	thoughtRepository.EXPECT().Delete(id).Return(nil)

	require.NoError(t, handler.Delete(id))
}
