package booking

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Значения полей в том виде, в котором они хранятся в документах
const (
	readingGroupValue      = "جماعي"
	readingIndividualValue = "فردي"
	yesValue               = "نعم"
	noValue                = "لا"
)

// record документ бронирования в коллекции reservations
type record struct {
	Date           string          `json:"date"`
	Name           string          `json:"name"`
	DadAndGrandDad string          `json:"dadAndGrandDad,omitempty"`
	Tribe          string          `json:"tribe,omitempty"`
	WeddingPlace   string          `json:"weddingPlace,omitempty"`
	QuranReading   string          `json:"quranReading,omitempty"`
	ArtOnUs        json.RawMessage `json:"artOnUs,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Phone2         string          `json:"phone2,omitempty"`
	Confirmed      bool            `json:"confirmed"`
	CreatedAt      json.RawMessage `json:"createdAt,omitempty"`
}

// toRecord конвертирует доменную модель в документ
func toRecord(b *domain.Booking) *record {
	r := &record{
		Date:           b.Date,
		Name:           b.Name,
		DadAndGrandDad: b.SecondaryName,
		Tribe:          b.Affiliation,
		WeddingPlace:   b.Venue,
		QuranReading:   encodeReadingMode(b.ReadingMode),
		Email:          b.Email,
		Phone:          b.Phone,
		Phone2:         b.Phone2,
		Confirmed:      b.Confirmed,
	}
	if b.IncludedService != nil {
		value := noValue
		if *b.IncludedService {
			value = yesValue
		}
		r.ArtOnUs, _ = json.Marshal(value)
	}
	if !b.CreatedAt.IsZero() {
		r.CreatedAt, _ = json.Marshal(b.CreatedAt.UnixMilli())
	}
	return r
}

// decodeBooking разбирает документ. Принимает как исходные арабские значения,
// так и английские/булевы, встречающиеся в старых выгрузках.
// Ошибкой считается только документ, который не является объектом
// или не содержит корректной даты: без даты бронирование нельзя учесть в занятости.
// Поля с неожиданным типом или значением обнуляются.
func decodeBooking(id string, raw json.RawMessage) (*domain.Booking, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: id=%s: not an object", ErrDecode, id)
	}

	date, err := domain.NormalizeDateKey(stringField(fields, "date"))
	if err != nil {
		return nil, fmt.Errorf("%w: id=%s: %v", ErrDecode, id, err)
	}

	b := &domain.Booking{
		ID:              id,
		Date:            date,
		Name:            stringField(fields, "name"),
		SecondaryName:   stringField(fields, "dadAndGrandDad"),
		Affiliation:     stringField(fields, "tribe"),
		Venue:           stringField(fields, "weddingPlace"),
		ReadingMode:     decodeReadingMode(stringField(fields, "quranReading")),
		IncludedService: decodeYesNo(fields["artOnUs"]),
		Email:           stringField(fields, "email"),
		Phone:           stringField(fields, "phone"),
		Phone2:          stringField(fields, "phone2"),
		CreatedAt:       decodeTimestamp(fields["createdAt"]),
	}

	var confirmed bool
	if v, ok := fields["confirmed"]; ok && json.Unmarshal(v, &confirmed) == nil {
		b.Confirmed = confirmed
	}

	return b, nil
}

// stringField строковое поле документа; значение другого типа считается пустым
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func encodeReadingMode(m domain.ReadingMode) string {
	switch m {
	case domain.ReadingGroup:
		return readingGroupValue
	case domain.ReadingIndividual:
		return readingIndividualValue
	default:
		return ""
	}
}

func decodeReadingMode(v string) domain.ReadingMode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case readingGroupValue, string(domain.ReadingGroup):
		return domain.ReadingGroup
	case readingIndividualValue, string(domain.ReadingIndividual):
		return domain.ReadingIndividual
	default:
		return ""
	}
}

// decodeYesNo неизвестные значения трактуются как "не указано", как и для quranReading
func decodeYesNo(raw json.RawMessage) *bool {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return &flag
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case yesValue, "yes", "true":
		flag = true
	case noValue, "no", "false":
		flag = false
	default:
		return nil
	}
	return &flag
}

// decodeTimestamp принимает unix-миллисекунды или строку RFC 3339.
// Нераспознанное значение дает нулевое время.
func decodeTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return time.UnixMilli(ms).UTC()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
