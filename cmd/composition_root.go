package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"deliveryfilter/internal/adapters/out/file/orderrepo"
	"deliveryfilter/internal/core/application/usecases/commands"
	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/core/domain/services"
)

type CompositionRoot struct {
	config   Config
	location *time.Location
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	loc, err := config.Location()
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		config:   config,
		location: loc,
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) CreateOrderRepository() *orderrepo.FileOrderRepository {
	return orderrepo.NewFileOrderRepository(c.logger, c.location)
}

func (c *CompositionRoot) CreateFilterOrdersCommandHandler() commands.FilterOrdersCommandHandler {
	repo := c.CreateOrderRepository()
	return commands.NewFilterOrdersCommandHandler(
		repo,
		repo,
		services.NewOrderValidator(c.logger),
		services.NewOrderFilter(c.logger),
		c.logger,
	)
}

// CreateFilterOrdersCommand builds the command for the configured run.
// FirstDeliveryTime is interpreted in the configured time zone.
func (c *CompositionRoot) CreateFilterOrdersCommand() (commands.FilterOrdersCommand, error) {
	var windowStart *time.Time
	if c.config.FirstDeliveryTime != "" {
		start, err := kernel.ParseFirstDeliveryTime(c.config.FirstDeliveryTime, c.location)
		if err != nil {
			return commands.FilterOrdersCommand{}, fmt.Errorf("invalid first delivery time: %w", err)
		}
		windowStart = &start
	}

	return commands.NewFilterOrdersCommand(
		c.config.DeliveryOrders,
		c.config.Separator,
		order.RegionIndex(c.config.IndexRegion),
		windowStart,
		c.config.ResultFilePath,
	)
}
