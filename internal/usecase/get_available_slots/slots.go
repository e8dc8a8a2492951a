package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// generateTimeSlots генерирует метки всех слотов рабочего дня [start, end) с шагом grid.SlotDurationMinutes
func generateTimeSlots(grid Grid) ([]types.TimeString, error) {
	if grid.StartHour < 0 || grid.EndHour > 24 || grid.StartHour >= grid.EndHour {
		return nil, fmt.Errorf("%w: business hours %d-%d", ErrInvalidGrid, grid.StartHour, grid.EndHour)
	}
	if grid.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration %d", ErrInvalidGrid, grid.SlotDurationMinutes)
	}

	start := grid.StartHour * 60
	end := grid.EndHour * 60

	slots := make([]types.TimeString, 0, (end-start)/grid.SlotDurationMinutes)
	for minutes := start; minutes+grid.SlotDurationMinutes <= end; minutes += grid.SlotDurationMinutes {
		slot, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// reconcile сопоставляет сетку с записями сервера
// Сопоставление по точному совпадению метки, при дубликатах используется первая запись
// Слоты, о которых сервер не сообщил, считаются свободными и получают синтетический ключ
// Записи сервера вне сетки игнорируются
func reconcile(labels []types.TimeString, records []bookingapi.AvailableTime) []domain.TimeSlot {
	byLabel := make(map[string]bookingapi.AvailableTime, len(records))
	for _, record := range records {
		if _, seen := byLabel[record.StartTime]; seen {
			continue
		}
		byLabel[record.StartTime] = record
	}

	result := make([]domain.TimeSlot, 0, len(labels))
	for _, label := range labels {
		record, ok := byLabel[label.String()]
		if !ok {
			result = append(result, domain.TimeSlot{Time: label, IsAvailable: true})
			continue
		}

		slot := domain.TimeSlot{Time: label, IsAvailable: record.IsAvailable}
		if record.ID != nil {
			id := *record.ID
			slot.RecordID = &id
		}
		result = append(result, slot)
	}

	return result
}

// openGrid сетка, где все слоты свободны (используется при ошибке получения данных)
func openGrid(labels []types.TimeString) []domain.TimeSlot {
	return reconcile(labels, nil)
}
