package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// ParseCSV reads plants from a CSV document with a header row.
// Unknown columns are ignored; numeric cells that are blank or not a
// finite number are treated as missing.
func ParseCSV(r io.Reader) ([]domain.Plant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	_, hasName := cols[ColName]
	_, hasSlug := cols[ColSlug]
	if !hasName && !hasSlug {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingNameColumn)
	}

	var plants []domain.Plant
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		row := csvRow{cols: cols, record: record}
		if row.blank() {
			continue
		}
		plants = append(plants, row.plant())
	}
	return plants, nil
}

type csvRow struct {
	cols   map[string]int
	record []string
}

func (r csvRow) get(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r csvRow) blank() bool {
	for _, v := range r.record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r csvRow) plant() domain.Plant {
	p := domain.Plant{
		Slug:           r.get(ColSlug),
		Name:           r.get(ColName),
		ScientificName: r.get(ColScientificName),
		Family:         r.get(ColFamily),
		Variety:        r.get(ColVariety),
		Description:    r.get(ColDescription),
		Sun:            r.get(ColSun),
		Water:          r.get(ColWater),
		Soil:           r.get(ColSoil),
		FrostHardiness: r.get(ColFrostHardiness),
		SpacingInRowIn: numOrNull(r.get(ColSpacingInRowIn)),
		PlantingDepth:  numOrNull(r.get(ColPlantingDepthIn)),
		Tags:           splitList(r.get(ColTags)),
		Profile: domain.PlantOffsetProfile{
			StartOffsetDays: daysOrNull(r.get(ColStartOffsetDays)),
			DirectSowFrom:   daysOrNull(r.get(ColDirectSowFrom)),
			DirectSowTo:     daysOrNull(r.get(ColDirectSowTo)),
			TransplantFrom:  daysOrNull(r.get(ColTransplantFrom)),
			TransplantTo:    daysOrNull(r.get(ColTransplantTo)),
			DaysToMaturity:  daysOrNull(r.get(ColDaysToMaturity)),
		},
	}
	if p.Profile.DaysToMaturity == nil {
		p.Profile.DaysToMaturity = daysOrNull(r.get(ColDaysToMaturityMin))
	}
	return p
}

// numOrNull parses v as a finite number, or returns nil
func numOrNull(v string) *float64 {
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// daysOrNull is numOrNull rounded to whole days
func daysOrNull(v string) *int {
	n := numOrNull(v)
	if n == nil {
		return nil
	}
	days := int(math.Round(*n))
	return &days
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ListSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
