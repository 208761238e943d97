package cmd

import (
	"log/slog"

	"parcelflow/internal/adapters/out/notify"
	"parcelflow/internal/adapters/out/postgres"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimCompleteCommandHandler() commands.ClaimCompleteCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimCompleteCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateClaimSegmentCommandHandler() commands.ClaimSegmentCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimSegmentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartTaskCommandHandler() commands.StartTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTaskCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelTaskCommandHandler() commands.CancelTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateListClaimableTasksQueryHandler() queries.ListClaimableTasksQueryHandler {
	return queries.NewListClaimableTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSegmentsInfoQueryHandler() queries.GetSegmentsInfoQueryHandler {
	return queries.NewGetSegmentsInfoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierTasksQueryHandler() queries.GetCarrierTasksQueryHandler {
	return queries.NewGetCarrierTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoredInWarehouseQueryHandler() queries.GetStoredInWarehouseQueryHandler {
	return queries.NewGetStoredInWarehouseQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}
