package domain

import "strings"

// ShopCategory категория заведения
type ShopCategory string

const (
	CategoryHairSalon  ShopCategory = "hair_salon"
	CategoryBeautyShop ShopCategory = "beauty_shop"
	CategoryGym        ShopCategory = "gym"
	CategoryPilates    ShopCategory = "pilates"
)

// Categories все поддерживаемые категории в порядке отображения
var Categories = []ShopCategory{
	CategoryHairSalon,
	CategoryBeautyShop,
	CategoryGym,
	CategoryPilates,
}

var categoryLabels = map[ShopCategory]string{
	CategoryHairSalon:  "Парикмахерская",
	CategoryBeautyShop: "Салон красоты",
	CategoryGym:        "Фитнес-зал",
	CategoryPilates:    "Пилатес",
}

// IsValid проверяет, что категория известна
func (c ShopCategory) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label возвращает название категории для пользователя
func (c ShopCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Shop заведение, в котором можно забронировать услугу
type Shop struct {
	ID          int64
	Name        string
	Category    ShopCategory
	Address     string
	Phone       string
	Description string
	ImageURLs   []string
	Services    []Service
}

// InDistrict проверяет, находится ли заведение в одном из указанных районов
// Пустой список районов означает отсутствие фильтра
func (s *Shop) InDistrict(districts []string) bool {
	if len(districts) == 0 {
		return true
	}
	if s.Address == "" {
		return false
	}
	for _, district := range districts {
		if strings.Contains(s.Address, district) {
			return true
		}
	}
	return false
}

// FindService ищет услугу заведения по ID
func (s *Shop) FindService(serviceID int64) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			return &s.Services[i], true
		}
	}
	return nil, false
}

// Service услуга заведения
type Service struct {
	ID              int64
	Name            string
	Price           int64 // в минимальных единицах валюты (KRW)
	DurationMinutes int
	Description     string
}
