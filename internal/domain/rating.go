package domain

import "math"

// PseudoRating детерминированный рейтинг для отображения, пока сервер не отдает настоящий
// rating = round1(3.5 + (id mod 1000) / 1000 * 1.5), диапазон [3.5, 5.0)
func PseudoRating(id int64) float64 {
	seed := id % 1000
	if seed < 0 {
		seed = -seed
	}
	rating := 3.5 + float64(seed)/1000*1.5
	return math.Round(rating*10) / 10
}

// PseudoReviewCount детерминированное количество отзывов: floor(id * 7.3) mod 500 + 10
// Диапазон [10, 509]
func PseudoReviewCount(id int64) int {
	if id < 0 {
		id = -id
	}
	return int(int64(math.Floor(float64(id)*7.3))%500) + 10
}
