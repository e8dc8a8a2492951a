package domain

// Stylist специалист заведения
type Stylist struct {
	ID              int64
	Name            string
	Specialty       string
	ExperienceYears int
	Rating          float64 // 0 - рейтинг не передан сервером
	Bio             string
	ImageURL        string
}

// DisplayRating возвращает рейтинг для отображения
// Если сервер не передал рейтинг, используется DefaultStylistRating
func (s *Stylist) DisplayRating() float64 {
	if s.Rating <= 0 {
		return DefaultStylistRating
	}
	if s.Rating > MaxRating {
		return MaxRating
	}
	return s.Rating
}

// Initial возвращает первую букву имени (для аватара без картинки)
func (s *Stylist) Initial() string {
	for _, r := range s.Name {
		return string(r)
	}
	return ""
}

// UserRole роль пользователя
type UserRole string

const (
	RoleCustomer  UserRole = "customer"
	RoleShopOwner UserRole = "shop_owner"
)

// Label возвращает название роли для пользователя
func (r UserRole) Label() string {
	switch r {
	case RoleCustomer:
		return "Клиент"
	case RoleShopOwner:
		return "Владелец заведения"
	default:
		return string(r)
	}
}

// User пользователь сервиса
type User struct {
	ID    int64
	Email string
	Name  string
	Phone string
	Role  UserRole
}
