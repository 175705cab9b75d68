package cmd

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"servis/internal/adapters/out/postgres"
	"servis/internal/adapters/out/postgres/templaterepo"
	"servis/internal/adapters/out/whatsapp"
	"servis/internal/core/application/session"
	"servis/internal/core/application/usecases/commands"
	"servis/internal/core/application/usecases/queries"
	"servis/internal/core/ports"
	"servis/internal/jobs"
)

// CompositionRoot wires adapters, session state and use case handlers
// together. The working set and the template configuration are created once
// here and shared by every handler and job.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	workingSet *session.WorkingSet
	templates  *session.TemplateConfig
	notifier   ports.Notifier
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	timeout, err := time.ParseDuration(config.WhatsAppTimeout)
	if err != nil {
		timeout = 0 // the client falls back to its default
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		workingSet: session.NewWorkingSet(),
		templates:  session.NewTemplateConfig(),
		notifier:   whatsapp.NewClient(config.WhatsAppGatewayURL, timeout, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.intakeUoWFactory(), c.workingSet, c.templates, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.intakeUoWFactory(), c.workingSet, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.workingSet, c.logger)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(
		c.orderUoWFactory(), c.workingSet, c.templates, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSaveTemplatesCommandHandler() commands.SaveTemplatesCommandHandler {
	return commands.NewSaveTemplatesCommandHandler(
		templaterepo.NewGormTemplateRepository(c.gormDB), c.templates, c.logger)
}

func (c *CompositionRoot) CreateLoadTemplatesCommandHandler() commands.LoadTemplatesCommandHandler {
	return commands.NewLoadTemplatesCommandHandler(
		templaterepo.NewGormTemplateRepository(c.gormDB), c.templates, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceiptQueryHandler() queries.GetReceiptQueryHandler {
	return queries.NewGetReceiptQueryHandler(c.gormDB, c.templates)
}

func (c *CompositionRoot) CreateGetTemplatesQueryHandler() queries.GetTemplatesQueryHandler {
	return queries.NewGetTemplatesQueryHandler(c.templates)
}

func (c *CompositionRoot) CreateWorkingSetRefreshJob(schedule string) *jobs.WorkingSetRefreshJob {
	return jobs.NewWorkingSetRefreshJob(c.uowFactory, c.workingSet, schedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) intakeUoWFactory() commands.IntakeUoWFactory {
	return FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}
