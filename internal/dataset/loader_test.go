package dataset

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{header}, rows...)
	for r, row := range all {
		for c, val := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cellRef, val); err != nil {
				t.Fatal(err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var header = []string{"ID", "Name", "Last Name", "Make", "Modell", "Year", "Kilometerstand", "Price Estimation", "Status", "Transcript", "Call Successful", "Photo"}

func TestLoadExcelMapsColumns(t *testing.T) {
	data := buildWorkbook(t, header, [][]string{
		{"1", "Hans", "Meier", "BMW", "320d", "2019", "85000", "21500", "contacted", "Guten Tag, ich möchte verkaufen.", "ja", "https://example.com/1.jpg"},
		{"2", "Anna", "Schmidt", "Audi", "A4", "2017", "", "18000", "new", "", "false", ""},
	})

	leads, err := LoadExcel(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}

	first := leads[0]
	if first.ID != 1 || first.Name != "Hans" || first.LastName != "Meier" {
		t.Fatalf("identity fields wrong: %+v", first)
	}
	if first.Make != "BMW" || first.Model != "320d" || first.Year != 2019 {
		t.Fatalf("vehicle fields wrong: %+v", first)
	}
	if first.Mileage == nil || *first.Mileage != 85000 {
		t.Fatalf("mileage = %v, want 85000", first.Mileage)
	}
	if first.PriceEstimation != 21500 {
		t.Fatalf("price estimation = %v, want 21500", first.PriceEstimation)
	}
	if !first.CallSuccessful {
		t.Fatal(`"ja" must parse as a successful call`)
	}
	if first.PhotoURL != "https://example.com/1.jpg" {
		t.Fatalf("photo = %q", first.PhotoURL)
	}

	second := leads[1]
	if second.Mileage != nil {
		t.Fatalf("empty mileage must stay nil, got %v", *second.Mileage)
	}
	if second.CallSuccessful {
		t.Fatal(`"false" must parse as unsuccessful`)
	}
}

func TestLoadExcelSkipsRowsWithoutNumericID(t *testing.T) {
	data := buildWorkbook(t, header, [][]string{
		{"abc", "Bad", "Row", "VW", "Golf", "2015", "", "9000", "", "text", "", ""},
		{"3", "Good", "Row", "VW", "Golf", "2015", "", "9000", "", "text", "", ""},
	})

	leads, err := LoadExcel(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 1 || leads[0].ID != 3 {
		t.Fatalf("expected only lead 3, got %+v", leads)
	}
}

func TestLoadExcelReportsMissingColumns(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"ID", "Name", "Make", "Modell", "Year"},
		[][]string{{"1", "Hans", "BMW", "320d", "2019"}},
	)

	_, err := LoadExcel(data)
	if err == nil {
		t.Fatal("expected missing-column error")
	}
	for _, col := range []string{"Price Estimation", "Transcript"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error %q should name %q", err, col)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	payload := `[
		{"id": 1, "name": "Hans", "make": "BMW", "model": "320d", "year": 2019, "priceEstimation": 21500, "transcript": "Guten Tag."},
		{"id": 2, "name": "Anna", "make": "Audi", "model": "A4", "year": 2017, "priceEstimation": 18000, "transcript": ""}
	]`

	leads, err := LoadJSON([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 2 || leads[0].ID != 1 || leads[1].PriceEstimation != 18000 {
		t.Fatalf("unexpected leads: %+v", leads)
	}
}

func TestLoadJSONRejectsEmpty(t *testing.T) {
	if _, err := LoadJSON([]byte(`[]`)); err == nil {
		t.Fatal("expected error for empty array")
	}
	if _, err := LoadJSON([]byte(`{"not": "an array"}`)); err == nil {
		t.Fatal("expected error for non-array JSON")
	}
}

func TestLoadPicksParserByExtension(t *testing.T) {
	if _, err := Load("leads.csv", nil); err == nil {
		t.Fatal("expected unsupported-type error for .csv")
	}
	if _, err := Load("leads.json", []byte(`[{"id":1,"transcript":""}]`)); err != nil {
		t.Fatalf("json route failed: %v", err)
	}
}
