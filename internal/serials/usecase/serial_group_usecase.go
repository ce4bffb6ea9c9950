package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/serials/internal/database"
	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
)

const (
	// exportPageSize is the page size used when walking every group for ExportAll.
	exportPageSize = 100

	// defaultExportConcurrency bounds concurrent writes when none is configured.
	defaultExportConcurrency = 4
)

// serialGroupUseCase implements SerialGroupUseCase.
type serialGroupUseCase struct {
	txManager         database.TxManager
	groupRepo         SerialGroupRepository
	serialUseCase     SerialUseCase
	exporter          Exporter
	exportConcurrency int
}

// Create validates the name, generates count serials and persists the group.
func (s *serialGroupUseCase) Create(
	ctx context.Context,
	name string,
	count uint32,
) (*domain.SerialGroup, error) {
	if err := domain.ValidateGroupName(name); err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetByName(ctx, name)
	if err != nil && !apperrors.Is(err, domain.ErrSerialGroupNotFound) {
		return nil, apperrors.Wrap(err, "failed to check for existing serial group")
	}
	if existing != nil {
		return nil, domain.ErrSerialGroupAlreadyExists
	}

	groupID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate UUID for serial group")
	}

	group := &domain.SerialGroup{
		ID:        groupID,
		Name:      name,
		Serials:   s.serialUseCase.GenerateSerials(ctx, count),
		CreatedAt: time.Now().UTC(),
	}

	err = s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return s.groupRepo.Create(txCtx, group)
	})
	if err != nil {
		if apperrors.Is(err, domain.ErrSerialGroupAlreadyExists) {
			return nil, domain.ErrSerialGroupAlreadyExists
		}
		return nil, apperrors.Wrap(err, "failed to create serial group")
	}

	return group, nil
}

// Get retrieves a serial group by name.
func (s *serialGroupUseCase) Get(ctx context.Context, name string) (*domain.SerialGroup, error) {
	if err := domain.ValidateGroupName(name); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		if apperrors.Is(err, domain.ErrSerialGroupNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to get serial group")
	}
	return group, nil
}

// List retrieves serial groups ordered by name ascending with pagination.
func (s *serialGroupUseCase) List(ctx context.Context, offset, limit int) ([]*domain.SerialGroup, error) {
	groups, err := s.groupRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list serial groups")
	}
	return groups, nil
}

// Delete removes a serial group by name.
func (s *serialGroupUseCase) Delete(ctx context.Context, name string) error {
	if err := domain.ValidateGroupName(name); err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, name); err != nil {
		if apperrors.Is(err, domain.ErrSerialGroupNotFound) {
			return err
		}
		return apperrors.Wrap(err, "failed to delete serial group")
	}
	return nil
}

// Export writes the named group to data/<name>.json.
func (s *serialGroupUseCase) Export(ctx context.Context, name string) (string, error) {
	group, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	return s.export(ctx, group)
}

// ExportAll walks every stored group and exports them with bounded concurrency.
// The first failed write cancels the remaining ones.
func (s *serialGroupUseCase) ExportAll(ctx context.Context) ([]string, error) {
	var groups []*domain.SerialGroup
	for offset := 0; ; offset += exportPageSize {
		page, err := s.groupRepo.List(ctx, offset, exportPageSize)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to list serial groups for export")
		}
		groups = append(groups, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	keys := make([]string, len(groups))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.exportConcurrency)
	for i, group := range groups {
		g.Go(func() error {
			key, err := s.export(gCtx, group)
			if err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return keys, nil
}

func (s *serialGroupUseCase) export(ctx context.Context, group *domain.SerialGroup) (string, error) {
	data, err := json.Marshal(domain.SerialsToStrings(group.Serials))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode serial group")
	}

	key := group.ExportKey()
	if err := s.exporter.Write(ctx, key, data); err != nil {
		return "", apperrors.Wrapf(err, "failed to export serial group %q", group.Name)
	}
	return key, nil
}

// NewSerialGroupUseCase creates a new serial group use case instance.
// A non-positive exportConcurrency falls back to a small default.
func NewSerialGroupUseCase(
	txManager database.TxManager,
	groupRepo SerialGroupRepository,
	serialUseCase SerialUseCase,
	exporter Exporter,
	exportConcurrency int,
) SerialGroupUseCase {
	if exportConcurrency <= 0 {
		exportConcurrency = defaultExportConcurrency
	}
	return &serialGroupUseCase{
		txManager:         txManager,
		groupRepo:         groupRepo,
		serialUseCase:     serialUseCase,
		exporter:          exporter,
		exportConcurrency: exportConcurrency,
	}
}
