package shops

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// ShopsClient интерфейс клиента API для каталога заведений
type ShopsClient interface {
	GetShops(ctx context.Context, filter bookingapi.ShopFilter) ([]domain.Shop, error)
	GetShop(ctx context.Context, shopID int64) (*domain.Shop, error)
	GetShopServices(ctx context.Context, shopID int64) ([]domain.Service, error)
	GetStylists(ctx context.Context, shopID int64) ([]domain.Stylist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
