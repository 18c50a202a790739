package history

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ReservationCore/internal/history"
	"github.com/m04kA/SMC-ReservationCore/internal/service/history/models"
)

// Service сервис журнала изменений бронирований
type Service struct {
	changeRepo ChangeRepository
	labels     ServiceLabels
	exporter   Exporter
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса истории
func NewService(
	changeRepo ChangeRepository,
	labels ServiceLabels,
	exporter Exporter,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		changeRepo: changeRepo,
		labels:     labels,
		exporter:   exporter,
		metrics:    metrics,
		logger:     logger,
	}
}

// GetHistory возвращает историю бронирования, сгруппированную по правкам
// Несуществующее бронирование - пустая история
func (s *Service) GetHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error) {
	s.logger.Info("GetHistory: reservation=%s, instance=%s", req.ReservationID, req.InstanceID)

	batches, err := s.render(ctx, "GetHistory", req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetHistory: reservation=%s has %d batches", req.ReservationID, len(batches))
	return &models.HistoryResponse{
		ReservationID: req.ReservationID,
		Batches:       batches,
	}, nil
}

// Export пишет историю бронирования в out в формате xlsx
func (s *Service) Export(ctx context.Context, req *models.GetHistoryRequest, out io.Writer) error {
	s.logger.Info("Export: reservation=%s, instance=%s", req.ReservationID, req.InstanceID)

	batches, err := s.render(ctx, "Export", req)
	if err != nil {
		return err
	}

	if err := s.exporter.Write(out, req.ReservationID, batches); err != nil {
		s.logger.Error("Export: failed to write workbook for reservation=%s: %v", req.ReservationID, err)
		return fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: reservation=%s exported %d batches", req.ReservationID, len(batches))
	return nil
}

func (s *Service) render(ctx context.Context, op string, req *models.GetHistoryRequest) ([]history.BatchView, error) {
	if strings.TrimSpace(req.ReservationID) == "" {
		return nil, fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	// 1. Записи уже отсортированы хранилищем
	records, err := s.changeRepo.ListByReservation(ctx, req.ReservationID)
	if err != nil {
		s.logger.Error("%s: failed to list changes for reservation=%s: %v", op, req.ReservationID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	// 2. Справочник услуг; без него услуги выводятся по id
	lookup := s.lookup(ctx, op, req.InstanceID)

	// 3. Группировка и отображение
	batches := history.Render(records, lookup)
	s.metrics.AddHistoryBatches(len(batches))

	return batches, nil
}

func (s *Service) lookup(ctx context.Context, op, instanceID string) history.LabelLookup {
	if instanceID == "" {
		return nil
	}

	labels, err := s.labels.GetLabels(ctx, instanceID)
	if err != nil {
		s.logger.Warn("%s: service labels unavailable for instance=%s, using raw ids: %v", op, instanceID, err)
		return nil
	}
	return history.MapLookup(labels)
}
