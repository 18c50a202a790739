package models

import "github.com/m04kA/SMC-ReservationCore/internal/history"

// GetHistoryRequest запрос истории бронирования
// InstanceID нужен для названий услуг; пустой - услуги выводятся по id
type GetHistoryRequest struct {
	ReservationID string
	InstanceID    string
}

// HistoryResponse сгруппированная история бронирования
type HistoryResponse struct {
	ReservationID string              `json:"reservationId"`
	Batches       []history.BatchView `json:"batches"`
}
