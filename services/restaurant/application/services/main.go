package services

import (
	"fmt"

	"github.com/ghuser/gourmet/pkg/app"
	"github.com/ghuser/gourmet/services/restaurant/domain/models"
	"github.com/ghuser/gourmet/services/restaurant/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Restaurant *RestaurantService
}

// New wires all restaurant application services with infrastructure from the
// Application container: the table pool and menu root sized from config, the
// in-memory order registry, and the shared event bus and logger.
func New(a *app.Application) (*Services, error) {
	tables, err := models.NewTablePool(a.Config.TableCount, a.Config.TableCapacity)
	if err != nil {
		return nil, fmt.Errorf("build table pool: %w", err)
	}

	menu, err := models.NewMenuCategory(a.Config.RestaurantName, "full menu")
	if err != nil {
		return nil, fmt.Errorf("build menu root: %w", err)
	}

	repo := memory.NewOrderRepository()

	return &Services{
		Restaurant: NewRestaurantService(
			a.Config.RestaurantName,
			a.Config.ExtraIngredientCost,
			menu,
			tables,
			repo,
			a.EventBus,
			a.Logger,
		),
	}, nil
}
