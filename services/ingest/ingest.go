package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"tourism-booking/logger"
	"tourism-booking/models/restaurant"
	"tourism-booking/services/validation"
	ingestTypes "tourism-booking/types/ingest"

	"github.com/google/uuid"
)

// minFieldCount is the required CSV column count, in this order:
// id, name_ko, name_en, name_ja, name_zh, name_th, region, sector, city,
// address, cuisine, avg_price, gov_certified, airport_priority, description,
// status.
const minFieldCount = 16

// RowStore persists one normalized listing. An insert either fully succeeds
// or fails; there is no partial write within a row.
type RowStore interface {
	InsertRestaurant(r *restaurant.Restaurant) error
}

// Ingestor turns a raw operator CSV blob into persisted listings. Rows fail
// independently: a malformed or unpersistable row is counted as an error and
// the batch moves on to the next row.
type Ingestor struct {
	Store  RowStore
	Policy validation.Policy
}

func NewIngestor(store RowStore, policy validation.Policy) *Ingestor {
	return &Ingestor{Store: store, Policy: policy}
}

// Ingest processes a multi-line CSV blob with a header line. The row loop is
// strictly sequential; success plus error counts always equal the number of
// non-empty data lines.
func (ing *Ingestor) Ingest(blob string) ingestTypes.Result {
	var lines []string
	for _, line := range strings.Split(blob, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	var result ingestTypes.Result
	for _, line := range lines {
		if err := ing.ingestRow(line); err != nil {
			logger.Warning(fmt.Sprintf("Skipping listing row: %v", err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}

	result.Message = fmt.Sprintf("Uploaded %d restaurants, %d errors", result.SuccessCount, result.ErrorCount)
	return result
}

// ingestRow normalizes and persists a single line. Any returned error marks
// the whole row as failed; a row is never half-written.
func (ing *Ingestor) ingestRow(line string) error {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < minFieldCount {
		return fmt.Errorf("expected %d fields, got %d", minFieldCount, len(fields))
	}

	if fields[1] == "" {
		return fmt.Errorf("name_ko is required")
	}

	avgPrice, err := strconv.Atoi(fields[11])
	if err != nil {
		return fmt.Errorf("avg_price %q: %w", fields[11], err)
	}

	status, err := ing.Policy.ParseListingStatus(fields[15])
	if err != nil {
		return err
	}

	r := &restaurant.Restaurant{
		ID:              fields[0],
		NameKo:          fields[1],
		NameEn:          fields[2],
		NameJa:          fields[3],
		NameZh:          fields[4],
		NameTh:          fields[5],
		Region:          fields[6],
		Sector:          fields[7],
		City:            fields[8],
		Address:         fields[9],
		CuisineType:     fields[10],
		AvgPrice:        avgPrice,
		GovCertified:    validation.ParseCertifiedFlag(fields[12]),
		AirportPriority: fields[13],
		DescriptionKo:   fields[14],
		Status:          status,
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := ing.Store.InsertRestaurant(r); err != nil {
		return fmt.Errorf("insert listing %s: %w", r.ID, err)
	}
	return nil
}
