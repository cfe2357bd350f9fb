package web

import (
	"strings"
	"testing"
)

func TestParseRosterSkipsInvalidRows(t *testing.T) {
	csvData := "name,age,phone\nAlice,10,555-1234\n,12,\nBob,-1,\n"

	rows, err := ParseRoster(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 valid row, got %d", len(rows))
	}
	if rows[0].Name != "Alice" || rows[0].Age != 10 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	if rows[0].Phone != "555-1234" {
		t.Errorf("expected phone to carry through, got %q", rows[0].Phone)
	}
}

func TestParseRosterHeaderCaseTolerant(t *testing.T) {
	csvData := "Name,AGE\nCarlos,14\n"

	rows, err := ParseRoster(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}

	if len(rows) != 1 || rows[0].Name != "Carlos" || rows[0].Age != 14 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseRosterEmptyFile(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestParseRosterShortRecord(t *testing.T) {
	// Row missing the phone column entirely still parses.
	csvData := "name,age,phone\nDana,11\n"

	rows, err := ParseRoster(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Phone != "" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
