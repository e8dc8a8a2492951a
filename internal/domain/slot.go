package domain

import (
	"strconv"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// TimeSlot represents a 30-minute slot of the business-hours grid
type TimeSlot struct {
	Time        types.TimeString
	IsAvailable bool
	RecordID    *int64 // ID записи на сервере, nil для слотов, о которых сервер не сообщил
}

// IsPersisted returns true if the slot is backed by a server record
func (s *TimeSlot) IsPersisted() bool {
	return s.RecordID != nil
}

// Key возвращает идентификатор слота для отображения
// Для слотов без записи на сервере ключ синтетический: "temp-HH:MM"
func (s *TimeSlot) Key() string {
	if s.RecordID != nil {
		return strconv.FormatInt(*s.RecordID, 10)
	}
	return SyntheticSlotKeyPrefix + s.Time.String()
}

// FindSlot ищет слот по метке времени
func FindSlot(slots []TimeSlot, t types.TimeString) (*TimeSlot, bool) {
	for i := range slots {
		if slots[i].Time == t {
			return &slots[i], true
		}
	}
	return nil, false
}
