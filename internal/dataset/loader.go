// Package dataset parses uploaded lead files (Excel or JSON) into Lead
// records using header-variant column matching.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"lead-insights-go/internal/types"
)

// columnMapping holds the resolved header index per lead field, -1 when the
// column is absent.
type columnMapping struct {
	id              int
	name            int
	lastName        int
	make            int
	model           int
	year            int
	mileage         int
	priceEstimation int
	status          int
	transcript      int
	callSuccessful  int
	photoURL        int
}

// findColumn returns the index of the first header matching any variation,
// by exact match first and substring match second.
func findColumn(headers []string, variations ...string) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, v := range variations {
		for i, h := range normalized {
			if h == v || strings.Contains(h, v) {
				return i
			}
		}
	}
	return -1
}

func mapColumns(headers []string) (columnMapping, error) {
	m := columnMapping{
		id:              findColumn(headers, "id"),
		name:            findColumn(headers, "name", "first name", "vorname"),
		lastName:        findColumn(headers, "last name", "lastname", "nachname", "surname"),
		make:            findColumn(headers, "make", "marke", "manufacturer"),
		model:           findColumn(headers, "modell", "model"),
		year:            findColumn(headers, "year", "jahr", "baujahr"),
		mileage:         findColumn(headers, "mileage", "km", "kilometer", "kilometerstand", "laufleistung", "miles"),
		priceEstimation: findColumn(headers, "price estimation", "priceestimation", "price", "preis", "schätzpreis"),
		status:          findColumn(headers, "status"),
		transcript:      findColumn(headers, "transcript", "transkript", "call transcript"),
		callSuccessful:  findColumn(headers, "call successful", "callsuccessful", "erfolg", "successful"),
		photoURL:        findColumn(headers, "photo", "image", "bild", "foto", "picture", "photo url", "image url", "photourl", "imageurl"),
	}

	var missing []string
	for _, req := range []struct {
		idx  int
		name string
	}{
		{m.id, "ID"},
		{m.name, "Name"},
		{m.make, "Make"},
		{m.model, "Modell"},
		{m.year, "Year"},
		{m.priceEstimation, "Price Estimation"},
		{m.transcript, "Transcript"},
	} {
		if req.idx == -1 {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return columnMapping{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return m, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseBool accepts the truthy spellings seen in real uploads.
func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "ja", "1":
		return true
	}
	return false
}

// LoadExcel parses the first sheet of an .xlsx/.xls file into leads. Rows
// without a numeric id are skipped quietly.
func LoadExcel(data []byte) ([]types.Lead, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	m, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []types.Lead
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(cell(row, m.id))
		if err != nil {
			continue
		}
		lead := types.Lead{
			ID:         id,
			Name:       cell(row, m.name),
			LastName:   cell(row, m.lastName),
			Make:       cell(row, m.make),
			Model:      cell(row, m.model),
			Status:     cell(row, m.status),
			Transcript: cell(row, m.transcript),
			PhotoURL:   cell(row, m.photoURL),
		}
		lead.Year, _ = strconv.Atoi(cell(row, m.year))
		lead.PriceEstimation, _ = strconv.ParseFloat(cell(row, m.priceEstimation), 64)
		if v := cell(row, m.mileage); v != "" {
			if mileage, err := strconv.ParseFloat(v, 64); err == nil {
				lead.Mileage = &mileage
			}
		}
		lead.CallSuccessful = parseBool(cell(row, m.callSuccessful))
		out = append(out, lead)
	}
	return out, nil
}

// LoadJSON parses a JSON array of leads. Entries missing an id or transcript
// field are rejected rather than skipped: a JSON upload is expected to match
// the storage shape exactly.
func LoadJSON(data []byte) ([]types.Lead, error) {
	var leads []types.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("parse leads JSON: %w", err)
	}
	if len(leads) == 0 {
		return nil, fmt.Errorf("no leads in file")
	}
	return leads, nil
}

// Load picks the parser from the filename extension.
func Load(filename string, data []byte) ([]types.Lead, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".json"):
		return LoadJSON(data)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return LoadExcel(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}
