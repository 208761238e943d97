package taskrepo

import (
	"context"
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM. Requires the
// connection to be opened with gorm.Config{TranslateError: true} so a
// duplicate-key violation surfaces as gorm.ErrDuplicatedKey.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery task to the database. A unique-index violation on
// (request_id, slot) is translated into errs.ConflictError: the slot was
// taken by a racing claim.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"slot "+dto.Slot+" of request "+aggregate.RequestID().String()+" is taken", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery task to the database.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TaskDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRequestID retrieves every task of a request, cancelled ones included.
func (r *GormTaskRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) ([]*task.Task, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Order("segment").
		Find(&dtos, "request_id = ?", requestID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUnclaimed retrieves tasks without a carrier that are still claimable.
func (r *GormTaskRepository) GetAllUnclaimed(ctx context.Context) ([]*task.Task, error) {
	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "carrier_id IS NULL AND status != ?", task.Cancelled).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStoredInWarehouse retrieves dropoff tasks currently Stored at the given
// warehouse.
func (r *GormTaskRepository) GetStoredInWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*task.Task, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Order("finished_at").
		Find(&dtos, "warehouse_id = ? AND segment = ? AND status = ?",
			warehouseID.Bytes(), task.SegmentDropoff, task.Stored).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TaskDTO) ([]*task.Task, error) {
	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
