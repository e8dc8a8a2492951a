package domain

import "time"

// DateOption элемент списка быстрого выбора даты
type DateOption struct {
	Date       time.Time
	IsToday    bool
	IsTomorrow bool
	IsWeekend  bool
}

// TruncateToDay обнуляет время, оставляя только календарную дату
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddMonthsClamped прибавляет месяцы к дате
// Если в целевом месяце нет такого дня, берется последний день месяца (31.01 + 1 месяц = 28/29.02)
func AddMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// IsDateSelectable проверяет, можно ли выбрать дату для бронирования
// Нельзя выбрать дату раньше сегодняшней и позже, чем сегодня + windowMonths месяцев
func IsDateSelectable(date, now time.Time, windowMonths int) bool {
	if date.IsZero() {
		return false
	}
	// Сравниваем календарные даты, часовой пояс date не учитывается
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := TruncateToDay(now)

	if day.Before(today) {
		return false
	}
	if day.After(AddMonthsClamped(today, windowMonths)) {
		return false
	}
	return true
}

// DateOptions формирует список дат для быстрого выбора, начиная с сегодняшней
func DateOptions(now time.Time, days int) []DateOption {
	today := TruncateToDay(now)
	options := make([]DateOption, 0, days)

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		weekday := date.Weekday()
		options = append(options, DateOption{
			Date:       date,
			IsToday:    i == 0,
			IsTomorrow: i == 1,
			IsWeekend:  weekday == time.Saturday || weekday == time.Sunday,
		})
	}

	return options
}
