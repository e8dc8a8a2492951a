package get_shop

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
)

type ShopsService interface {
	Detail(ctx context.Context, shopID int64) (*models.ShopDetail, error)
}

type Renderer interface {
	Title(format string, v ...interface{})
	Line(format string, v ...interface{})
	Accent(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Muted(format string, v ...interface{})
	Blank()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
