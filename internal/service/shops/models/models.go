package models

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Заголовки списка заведений
const (
	titleCategoryFormat = "%s: список заведений"
	titleSearchFormat   = "Результаты поиска \"%s\""
	titleNearby         = "Заведения рядом"
	titleAll            = "Все заведения"
)

// Цвета фона для сгенерированной обложки
var coverColors = []string{"667eea", "f093fb", "4facfe", "43e97b", "764ba2", "f5576c"}

// ListRequest параметры списка заведений
type ListRequest struct {
	Category  domain.ShopCategory
	Search    string
	Latitude  *float64
	Longitude *float64
	Distance  int      // км, 0 - значение по умолчанию
	Districts []string // фильтр по районам на стороне клиента
}

// IsNearby returns true if both coordinates are provided
func (r *ListRequest) IsNearby() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Title заголовок списка: категория, поиск, рядом или все
func (r *ListRequest) Title() string {
	switch {
	case r.Category != "":
		return fmt.Sprintf(titleCategoryFormat, r.Category.Label())
	case r.Search != "":
		return fmt.Sprintf(titleSearchFormat, r.Search)
	case r.IsNearby():
		return titleNearby
	default:
		return titleAll
	}
}

// ShopCard карточка заведения в списке
type ShopCard struct {
	Shop        domain.Shop
	Rating      float64
	ReviewCount int
	CoverImage  string
}

// NewShopCard собирает карточку заведения
func NewShopCard(shop domain.Shop) ShopCard {
	return ShopCard{
		Shop:        shop,
		Rating:      domain.PseudoRating(shop.ID),
		ReviewCount: domain.PseudoReviewCount(shop.ID),
		CoverImage:  CoverImage(shop),
	}
}

// ShopList результат запроса списка
type ShopList struct {
	Title string
	Total int // количество до фильтра по районам
	Cards []ShopCard
}

// ShopDetail карточка заведения с услугами и специалистами
type ShopDetail struct {
	Card     ShopCard
	Services []domain.Service
	Stylists []domain.Stylist
	// StylistsUnavailable true, если специалистов не удалось загрузить
	StylistsUnavailable bool
}

// CoverImage возвращает первое изображение заведения или сгенерированный аватар
func CoverImage(shop domain.Shop) string {
	if len(shop.ImageURLs) > 0 {
		return shop.ImageURLs[0]
	}
	color := coverColors[utf8.RuneCountInString(shop.Name)%len(coverColors)]
	name := strings.ReplaceAll(url.QueryEscape(shop.Name), "+", "%20")
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff&size=200", name, color)
}
