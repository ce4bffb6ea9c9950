package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/serials/internal/database/mocks"
	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
	serialsUsecaseMocks "github.com/allisson/serials/internal/serials/usecase/mocks"
)

type serialGroupMocks struct {
	txManager     *databaseMocks.MockTxManager
	groupRepo     *serialsUsecaseMocks.MockSerialGroupRepository
	serialUseCase *serialsUsecaseMocks.MockSerialUseCase
	exporter      *serialsUsecaseMocks.MockExporter
}

func newSerialGroupMocks(t *testing.T) *serialGroupMocks {
	return &serialGroupMocks{
		txManager:     databaseMocks.NewMockTxManager(t),
		groupRepo:     serialsUsecaseMocks.NewMockSerialGroupRepository(t),
		serialUseCase: serialsUsecaseMocks.NewMockSerialUseCase(t),
		exporter:      serialsUsecaseMocks.NewMockExporter(t),
	}
}

func (m *serialGroupMocks) useCase(concurrency int) SerialGroupUseCase {
	return NewSerialGroupUseCase(m.txManager, m.groupRepo, m.serialUseCase, m.exporter, concurrency)
}

func (m *serialGroupMocks) expectTx() {
	m.txManager.EXPECT().
		WithTx(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func newTestGroup(name string, serials ...domain.Serial) *domain.SerialGroup {
	return &domain.SerialGroup{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Serials:   serials,
		CreatedAt: time.Now().UTC(),
	}
}

// TestSerialGroupUseCase_Create tests the Create method of serialGroupUseCase.
func TestSerialGroupUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateGroup", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		serials := []domain.Serial{"Ab3xK9mPq2", "Zz09aaBBcc"}

		m.groupRepo.EXPECT().
			GetByName(ctx, "batch-1").
			Return(nil, domain.ErrSerialGroupNotFound).
			Once()
		m.serialUseCase.EXPECT().
			GenerateSerials(ctx, uint32(2)).
			Return(serials).
			Once()
		m.expectTx()
		m.groupRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(group *domain.SerialGroup) bool {
				return group.Name == "batch-1" && len(group.Serials) == 2 && group.ID != uuid.Nil
			})).
			Return(nil).
			Once()

		group, err := m.useCase(0).Create(ctx, "batch-1", 2)

		require.NoError(t, err)
		assert.Equal(t, "batch-1", group.Name)
		assert.Equal(t, serials, group.Serials)
		assert.Equal(t, byte(7), group.ID[6]>>4)
		assert.Equal(t, time.UTC, group.CreatedAt.Location())
	})

	t.Run("Success_ZeroCount", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().
			GetByName(ctx, "empty").
			Return(nil, domain.ErrSerialGroupNotFound).
			Once()
		m.serialUseCase.EXPECT().
			GenerateSerials(ctx, uint32(0)).
			Return([]domain.Serial{}).
			Once()
		m.expectTx()
		m.groupRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		group, err := m.useCase(0).Create(ctx, "empty", 0)

		require.NoError(t, err)
		assert.Empty(t, group.Serials)
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		group, err := m.useCase(0).Create(ctx, "bad/name", 3)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, domain.ErrInvalidGroupName)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().
			GetByName(ctx, "taken").
			Return(newTestGroup("taken"), nil).
			Once()

		group, err := m.useCase(0).Create(ctx, "taken", 3)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, domain.ErrSerialGroupAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error_LookupFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("connection refused")

		m.groupRepo.EXPECT().
			GetByName(ctx, "batch").
			Return(nil, dbErr).
			Once()

		group, err := m.useCase(0).Create(ctx, "batch", 3)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to check for existing serial group")
	})

	t.Run("Error_RaceOnInsertMapsToAlreadyExists", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().
			GetByName(ctx, "batch").
			Return(nil, domain.ErrSerialGroupNotFound).
			Once()
		m.serialUseCase.EXPECT().
			GenerateSerials(ctx, uint32(1)).
			Return([]domain.Serial{"AAAAAAAAAA"}).
			Once()
		m.expectTx()
		m.groupRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(domain.ErrSerialGroupAlreadyExists).
			Once()

		group, err := m.useCase(0).Create(ctx, "batch", 1)

		assert.Nil(t, group)
		assert.Equal(t, domain.ErrSerialGroupAlreadyExists, err)
	})

	t.Run("Error_InsertFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("disk full")

		m.groupRepo.EXPECT().
			GetByName(ctx, "batch").
			Return(nil, domain.ErrSerialGroupNotFound).
			Once()
		m.serialUseCase.EXPECT().
			GenerateSerials(ctx, uint32(1)).
			Return([]domain.Serial{"AAAAAAAAAA"}).
			Once()
		m.expectTx()
		m.groupRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(dbErr).
			Once()

		group, err := m.useCase(0).Create(ctx, "batch", 1)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to create serial group")
	})
}

// TestSerialGroupUseCase_Get tests the Get method of serialGroupUseCase.
func TestSerialGroupUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		expected := newTestGroup("batch", "AAAAAAAAAA")

		m.groupRepo.EXPECT().GetByName(ctx, "batch").Return(expected, nil).Once()

		group, err := m.useCase(0).Get(ctx, "batch")

		require.NoError(t, err)
		assert.Equal(t, expected, group)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().GetByName(ctx, "missing").Return(nil, domain.ErrSerialGroupNotFound).Once()

		group, err := m.useCase(0).Get(ctx, "missing")

		assert.Nil(t, group)
		assert.Equal(t, domain.ErrSerialGroupNotFound, err)
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		_, err := m.useCase(0).Get(ctx, "..")

		assert.ErrorIs(t, err, domain.ErrInvalidGroupName)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("timeout")

		m.groupRepo.EXPECT().GetByName(ctx, "batch").Return(nil, dbErr).Once()

		_, err := m.useCase(0).Get(ctx, "batch")

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to get serial group")
	})
}

// TestSerialGroupUseCase_List tests the List method of serialGroupUseCase.
func TestSerialGroupUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		expected := []*domain.SerialGroup{newTestGroup("a"), newTestGroup("b")}

		m.groupRepo.EXPECT().List(ctx, 0, 50).Return(expected, nil).Once()

		groups, err := m.useCase(0).List(ctx, 0, 50)

		require.NoError(t, err)
		assert.Equal(t, expected, groups)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("timeout")

		m.groupRepo.EXPECT().List(ctx, 10, 5).Return(nil, dbErr).Once()

		groups, err := m.useCase(0).List(ctx, 10, 5)

		assert.Nil(t, groups)
		assert.ErrorIs(t, err, dbErr)
	})
}

// TestSerialGroupUseCase_Delete tests the Delete method of serialGroupUseCase.
func TestSerialGroupUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().Delete(ctx, "batch").Return(nil).Once()

		assert.NoError(t, m.useCase(0).Delete(ctx, "batch"))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().Delete(ctx, "missing").Return(domain.ErrSerialGroupNotFound).Once()

		err := m.useCase(0).Delete(ctx, "missing")

		assert.Equal(t, domain.ErrSerialGroupNotFound, err)
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		err := m.useCase(0).Delete(ctx, "")

		assert.ErrorIs(t, err, domain.ErrInvalidGroupName)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("locked")

		m.groupRepo.EXPECT().Delete(ctx, "batch").Return(dbErr).Once()

		err := m.useCase(0).Delete(ctx, "batch")

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to delete serial group")
	})
}

// TestSerialGroupUseCase_Export tests the Export method of serialGroupUseCase.
func TestSerialGroupUseCase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WritesJSONArray", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		group := newTestGroup("batch", "AAAAAAAAAA", "BBBBBBBBBB")

		m.groupRepo.EXPECT().GetByName(ctx, "batch").Return(group, nil).Once()
		m.exporter.EXPECT().
			Write(ctx, "data/batch.json", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, data []byte) error {
				var got []string
				require.NoError(t, json.Unmarshal(data, &got))
				assert.Equal(t, []string{"AAAAAAAAAA", "BBBBBBBBBB"}, got)
				return nil
			}).
			Once()

		key, err := m.useCase(0).Export(ctx, "batch")

		require.NoError(t, err)
		assert.Equal(t, "data/batch.json", key)
	})

	t.Run("Success_EmptyGroupWritesEmptyArray", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().GetByName(ctx, "empty").Return(newTestGroup("empty"), nil).Once()
		m.exporter.EXPECT().
			Write(ctx, "data/empty.json", []byte("[]")).
			Return(nil).
			Once()

		key, err := m.useCase(0).Export(ctx, "empty")

		require.NoError(t, err)
		assert.Equal(t, "data/empty.json", key)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().GetByName(ctx, "missing").Return(nil, domain.ErrSerialGroupNotFound).Once()

		key, err := m.useCase(0).Export(ctx, "missing")

		assert.Empty(t, key)
		assert.Equal(t, domain.ErrSerialGroupNotFound, err)
	})

	t.Run("Error_WriteFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		writeErr := errors.New("bucket unavailable")

		m.groupRepo.EXPECT().GetByName(ctx, "batch").Return(newTestGroup("batch"), nil).Once()
		m.exporter.EXPECT().Write(ctx, "data/batch.json", mock.Anything).Return(writeErr).Once()

		key, err := m.useCase(0).Export(ctx, "batch")

		assert.Empty(t, key)
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), `failed to export serial group "batch"`)
	})
}

// TestSerialGroupUseCase_ExportAll tests the ExportAll method of serialGroupUseCase.
func TestSerialGroupUseCase_ExportAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ExportsEveryGroupInOrder", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		groups := []*domain.SerialGroup{newTestGroup("a"), newTestGroup("b"), newTestGroup("c")}

		m.groupRepo.EXPECT().List(ctx, 0, exportPageSize).Return(groups, nil).Once()
		for _, g := range groups {
			m.exporter.EXPECT().Write(mock.Anything, g.ExportKey(), mock.Anything).Return(nil).Once()
		}

		keys, err := m.useCase(2).ExportAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"data/a.json", "data/b.json", "data/c.json"}, keys)
	})

	t.Run("Success_WalksMultiplePages", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		firstPage := make([]*domain.SerialGroup, exportPageSize)
		for i := range firstPage {
			firstPage[i] = newTestGroup(fmt.Sprintf("g%03d", i))
		}
		secondPage := []*domain.SerialGroup{newTestGroup("z")}

		m.groupRepo.EXPECT().List(ctx, 0, exportPageSize).Return(firstPage, nil).Once()
		m.groupRepo.EXPECT().List(ctx, exportPageSize, exportPageSize).Return(secondPage, nil).Once()
		m.exporter.EXPECT().Write(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(exportPageSize + 1)

		keys, err := m.useCase(8).ExportAll(ctx)

		require.NoError(t, err)
		require.Len(t, keys, exportPageSize+1)
		assert.Equal(t, "data/g000.json", keys[0])
		assert.Equal(t, "data/z.json", keys[exportPageSize])
	})

	t.Run("Success_NoGroups", func(t *testing.T) {
		m := newSerialGroupMocks(t)

		m.groupRepo.EXPECT().List(ctx, 0, exportPageSize).Return([]*domain.SerialGroup{}, nil).Once()

		keys, err := m.useCase(0).ExportAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Error_ListFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		dbErr := errors.New("timeout")

		m.groupRepo.EXPECT().List(ctx, 0, exportPageSize).Return(nil, dbErr).Once()

		keys, err := m.useCase(0).ExportAll(ctx)

		assert.Nil(t, keys)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Error_WriteFails", func(t *testing.T) {
		m := newSerialGroupMocks(t)
		writeErr := errors.New("bucket unavailable")
		groups := []*domain.SerialGroup{newTestGroup("a"), newTestGroup("b")}

		m.groupRepo.EXPECT().List(ctx, 0, exportPageSize).Return(groups, nil).Once()
		m.exporter.EXPECT().Write(mock.Anything, "data/a.json", mock.Anything).Return(writeErr).Once()
		m.exporter.EXPECT().Write(mock.Anything, "data/b.json", mock.Anything).Return(nil).Maybe()

		keys, err := m.useCase(1).ExportAll(ctx)

		assert.Nil(t, keys)
		assert.ErrorIs(t, err, writeErr)
	})
}

// TestNewSerialGroupUseCase_DefaultConcurrency tests the concurrency fallback.
func TestNewSerialGroupUseCase_DefaultConcurrency(t *testing.T) {
	m := newSerialGroupMocks(t)

	uc := m.useCase(-1).(*serialGroupUseCase)

	assert.Equal(t, defaultExportConcurrency, uc.exportConcurrency)
}
