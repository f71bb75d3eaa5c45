package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// Repository репозиторий лимитов и нерабочих дней
// (коллекции dateLimits и nonWorkingDays, ключ - дата YYYY-MM-DD)
type Repository struct {
	store  DocumentStore
	logger Logger
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store DocumentStore, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// GetLimit возвращает явно заданный лимит даты или ErrLimitNotFound
func (r *Repository) GetLimit(ctx context.Context, date string) (int, error) {
	raw, err := r.store.Get(ctx, docstore.Path(domain.CollectionDateLimits, date))
	if errors.Is(err, docstore.ErrNotFound) {
		return 0, ErrLimitNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetLimit - get: %v", ErrStore, err)
	}

	limit, err := decodeLimit(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: date=%s: %v", ErrDecode, date, err)
	}
	return limit, nil
}

// SetLimit записывает лимит даты
func (r *Repository) SetLimit(ctx context.Context, date string, limit int) error {
	if err := r.store.Set(ctx, docstore.Path(domain.CollectionDateLimits, date), limit); err != nil {
		return fmt.Errorf("%w: SetLimit - set: %v", ErrStore, err)
	}
	return nil
}

// DeleteLimit удаляет лимит даты, после чего действует лимит по умолчанию
func (r *Repository) DeleteLimit(ctx context.Context, date string) error {
	if err := r.store.Delete(ctx, docstore.Path(domain.CollectionDateLimits, date)); err != nil {
		return fmt.Errorf("%w: DeleteLimit - delete: %v", ErrStore, err)
	}
	return nil
}

// IsNonWorkingDay проверяет наличие отметки нерабочего дня
func (r *Repository) IsNonWorkingDay(ctx context.Context, date string) (bool, error) {
	raw, err := r.store.Get(ctx, docstore.Path(domain.CollectionNonWorkingDays, date))
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsNonWorkingDay - get: %v", ErrStore, err)
	}
	return isMarker(raw), nil
}

// SetNonWorkingDay ставит отметку нерабочего дня
func (r *Repository) SetNonWorkingDay(ctx context.Context, date string) error {
	if err := r.store.Set(ctx, docstore.Path(domain.CollectionNonWorkingDays, date), true); err != nil {
		return fmt.Errorf("%w: SetNonWorkingDay - set: %v", ErrStore, err)
	}
	return nil
}

// RemoveNonWorkingDay снимает отметку нерабочего дня
func (r *Repository) RemoveNonWorkingDay(ctx context.Context, date string) error {
	if err := r.store.Delete(ctx, docstore.Path(domain.CollectionNonWorkingDays, date)); err != nil {
		return fmt.Errorf("%w: RemoveNonWorkingDay - delete: %v", ErrStore, err)
	}
	return nil
}

// ListLimits читает все лимиты одним запросом
func (r *Repository) ListLimits(ctx context.Context) (map[string]int, error) {
	snapshot, err := r.store.GetCollection(ctx, domain.CollectionDateLimits)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLimits - get collection: %v", ErrStore, err)
	}
	limits, errs := DecodeLimits(snapshot)
	for _, err := range errs {
		r.logger.Warn("ScheduleRepository.ListLimits: skipping date limit: %v", err)
	}
	return limits, nil
}

// ListNonWorkingDays читает все нерабочие дни одним запросом
func (r *Repository) ListNonWorkingDays(ctx context.Context) (map[string]struct{}, error) {
	snapshot, err := r.store.GetCollection(ctx, domain.CollectionNonWorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNonWorkingDays - get collection: %v", ErrStore, err)
	}
	return DecodeNonWorkingDays(snapshot), nil
}

// DecodeLimits разбирает снапшот dateLimits. Нечисловые значения пропускаются.
func DecodeLimits(snapshot docstore.Snapshot) (map[string]int, []error) {
	limits := make(map[string]int, len(snapshot))
	var errs []error

	for date, raw := range snapshot {
		limit, err := decodeLimit(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: date=%s: %v", ErrDecode, date, err))
			continue
		}
		limits[date] = limit
	}
	return limits, errs
}

// DecodeNonWorkingDays разбирает снапшот nonWorkingDays
func DecodeNonWorkingDays(snapshot docstore.Snapshot) map[string]struct{} {
	days := make(map[string]struct{}, len(snapshot))
	for date, raw := range snapshot {
		if isMarker(raw) {
			days[date] = struct{}{}
		}
	}
	return days
}

// decodeLimit принимает целое число; дробное значение округляется вниз
func decodeLimit(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) {
		return 0, fmt.Errorf("negative limit %v", f)
	}
	return int(math.Floor(f)), nil
}

// isMarker - отметка есть, если значение не false и не null
func isMarker(raw json.RawMessage) bool {
	s := string(raw)
	return s != "false" && s != "null" && s != ""
}
