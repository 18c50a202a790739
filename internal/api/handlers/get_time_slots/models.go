package get_time_slots

import (
	"errors"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ReservationCore/internal/usecase/get_time_slots"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidStep     = errors.New("invalid step")
	errPartialOverride = errors.New("min and max must be given together")
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date     *string        `json:"date,omitempty"`
	Day      domain.DayName `json:"day"`
	Min      string         `json:"min"`
	Max      string         `json:"max"`
	Closed   bool           `json:"closed"`
	Fallback string         `json:"fallback,omitempty"`
	Step     int            `json:"step"`
	Slots    []string       `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	out := &TimeSlotsResponse{
		Day:      resp.Day,
		Min:      resp.Window.Min,
		Max:      resp.Window.Max,
		Closed:   resp.Closed,
		Fallback: resp.Fallback,
		Step:     resp.Step,
		Slots:    resp.Slots,
	}
	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		out.Date = &date
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустые date и step допустимы: понедельник и шаг по умолчанию
func ToUseCaseRequest(instanceID, dateStr, stepStr, minStr, maxStr string) (*getTimeSlots.Request, error) {
	req := &getTimeSlots.Request{InstanceID: instanceID}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if stepStr != "" {
		step, err := strconv.Atoi(stepStr)
		if err != nil {
			return nil, errInvalidStep
		}
		req.StepMinutes = step
	}

	if (minStr == "") != (maxStr == "") {
		return nil, errPartialOverride
	}
	if minStr != "" {
		req.Override = &domain.TimeWindow{Min: minStr, Max: maxStr}
	}

	return req, nil
}
