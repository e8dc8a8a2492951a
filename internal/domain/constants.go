package domain

// Рабочие часы по умолчанию (09:00 - 20:00, последний слот 19:30)
const (
	DefaultBusinessStartHour   = 9
	DefaultBusinessEndHour     = 20
	DefaultSlotDurationMinutes = 30
)

// Ограничения выбора даты
const (
	DefaultBookingWindowMonths = 1  // дату можно выбрать не дальше, чем через месяц
	DefaultDateListDays        = 14 // длина списка быстрого выбора дат
)

// Бизнес-ограничения
const (
	MinPasswordLength      = 6
	DefaultNearbyDistance  = 5 // км
	DefaultStylistRating   = 4.5
	MaxRating              = 5.0
	SyntheticSlotKeyPrefix = "temp-"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SeoulDistricts районы Сеула для фильтрации списка заведений по адресу
var SeoulDistricts = []string{
	"강남구", "강동구", "강북구", "강서구", "관악구", "광진구", "구로구", "금천구",
	"노원구", "도봉구", "동대문구", "동작구", "마포구", "서대문구", "서초구", "성동구",
	"성북구", "송파구", "양천구", "영등포구", "용산구", "은평구", "종로구", "중구", "중랑구",
}
