package models

import (
	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// Request модели

// UpdateWorkingHoursRequest полная замена недельного расписания
// Отсутствующий день или null означает выходной
type UpdateWorkingHoursRequest struct {
	InstanceID string                              `json:"-"`
	Hours      map[domain.DayName]*domain.DayHours `json:"hours"`
}

// Response модели

// WorkingHoursResponse недельное расписание инстанса
type WorkingHoursResponse struct {
	InstanceID string                              `json:"instanceId"`
	Hours      map[domain.DayName]*domain.DayHours `json:"hours"`
	Configured bool                                `json:"configured"`
}

// WindowResponse рассчитанное окно бронирования на день
type WindowResponse struct {
	InstanceID string         `json:"instanceId"`
	Date       *string        `json:"date,omitempty"`
	Day        domain.DayName `json:"day"`
	Min        string         `json:"min"`
	Max        string         `json:"max"`
	Fallback   bool           `json:"fallback"`
	Reason     string         `json:"reason,omitempty"`
}

// Методы конвертации

// FromDomainHours конвертирует domain модель в DTO; всегда содержит все 7 дней
func FromDomainHours(instanceID string, hours domain.WeeklyHours) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{
		InstanceID: instanceID,
		Hours:      make(map[domain.DayName]*domain.DayHours, len(domain.DayNames)),
		Configured: hours != nil,
	}
	for _, day := range domain.DayNames {
		resp.Hours[day] = hours.For(day)
	}
	return resp
}
