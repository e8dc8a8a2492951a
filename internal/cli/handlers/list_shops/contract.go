package list_shops

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
)

type ShopsService interface {
	List(ctx context.Context, req models.ListRequest) (*models.ShopList, error)
}

type Renderer interface {
	Title(format string, v ...interface{})
	Line(format string, v ...interface{})
	Accent(format string, v ...interface{})
	Muted(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
