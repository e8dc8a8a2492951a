package shops

import "errors"

var (
	// ErrShopNotFound возвращается, когда заведение не найдено
	ErrShopNotFound = errors.New("shop not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownDistrict возвращается, когда район не входит в список районов Сеула
	ErrUnknownDistrict = errors.New("unknown district")

	// ErrInternal возвращается, когда список или карточку не удалось загрузить
	ErrInternal = errors.New("service: internal error")
)
