package wizard

import "errors"

var (
	// ErrShopRequired возвращается, когда мастер запускается без заведения
	ErrShopRequired = errors.New("wizard: shop is required")

	// ErrNotStarted возвращается при действии до вызова Start
	ErrNotStarted = errors.New("wizard: not started")

	// ErrInvalidTransition возвращается, когда действие недопустимо на текущем шаге
	ErrInvalidTransition = errors.New("wizard: invalid transition")

	// ErrStylistsUnavailable возвращается, когда список специалистов не удалось загрузить
	ErrStylistsUnavailable = errors.New("wizard: stylists unavailable")

	// ErrUnknownStylist возвращается, когда специалиста нет в списке заведения
	ErrUnknownStylist = errors.New("wizard: unknown stylist")

	// ErrStylistRequired возвращается при выборе даты без выбранного специалиста
	ErrStylistRequired = errors.New("wizard: stylist is required")

	// ErrDateNotSelectable возвращается для даты в прошлом или за пределами окна бронирования
	ErrDateNotSelectable = errors.New("wizard: date is not selectable")

	// ErrSlotUnavailable возвращается при выборе занятого или несуществующего слота
	// Шаг и выбранное время при этом не меняются
	ErrSlotUnavailable = errors.New("wizard: slot is not available")

	// ErrStaleResponse возвращается, когда ответ о доступности пришел для уже замененной даты
	ErrStaleResponse = errors.New("wizard: availability response is stale")

	// ErrSubmitInProgress возвращается при действии, пока бронирование отправляется
	ErrSubmitInProgress = errors.New("wizard: booking submit in progress")

	// ErrSubmitFailed возвращается при ошибке подтверждения бронирования
	ErrSubmitFailed = errors.New("wizard: booking submit failed")
)
