package get_profile

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

type SessionService interface {
	CurrentUser() (*domain.User, bool)
}

type Renderer interface {
	Title(format string, v ...interface{})
	Line(format string, v ...interface{})
	Muted(format string, v ...interface{})
}
