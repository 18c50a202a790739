package record_reservation_changes

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ReservationID) == "" {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if !req.ChangeType.IsValid() {
		return fmt.Errorf("%w: unknown change type %q", ErrInvalidInput, req.ChangeType)
	}

	if !req.ChangedByType.IsValid() {
		return fmt.Errorf("%w: unknown actor type %q", ErrInvalidInput, req.ChangedByType)
	}

	if req.ChangedByType != domain.ActorSystem && strings.TrimSpace(req.ChangedByUsername) == "" {
		return fmt.Errorf("%w: changedByUsername is required for %s", ErrInvalidInput, req.ChangedByType)
	}

	if req.ChangeType == domain.ChangeTypeUpdated && req.Old == nil {
		return fmt.Errorf("%w: previous snapshot is required for updates", ErrInvalidInput)
	}

	if req.New.Status != nil && !domain.ReservationStatus(*req.New.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.New.Status)
	}

	return nil
}
