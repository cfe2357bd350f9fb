package web

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/models"
)

// RosterRow is one accepted line of an uploaded roster file.
type RosterRow struct {
	Name  string
	Age   int
	Phone string
}

// ParseRoster reads a delimited roster with a header row. Column names are
// matched case-tolerantly (name/Name, age/Age, phone/Phone). Rows with an
// empty name or a non-positive age are skipped, not errors.
func ParseRoster(r io.Reader) ([]RosterRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows []RosterRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}

		name := strings.TrimSpace(field(record, cols, "name"))
		age, _ := strconv.Atoi(strings.TrimSpace(field(record, cols, "age")))
		if name == "" || age <= 0 {
			continue
		}

		rows = append(rows, RosterRow{
			Name:  name,
			Age:   age,
			Phone: strings.TrimSpace(field(record, cols, "phone")),
		})
	}

	return rows, nil
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// ImportPageHandler renders the CSV upload form.
func (h *Handlers) ImportPageHandler(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "import_csv.html", map[string]interface{}{
		"PageTitle": "Import Players",
	})
}

// ImportHandler creates a player for every valid roster row in one batch
// and reports each created name with its assigned login code.
func (h *Handlers) ImportHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Roster file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := ParseRoster(file)
	if err != nil {
		RenderTemplateStatus(w, http.StatusBadRequest, "import_csv.html", map[string]interface{}{
			"PageTitle": "Import Players",
			"Error":     "Could not parse the uploaded file.",
		})
		return
	}

	staged := make([]models.Player, 0, len(rows))
	created := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		code, err := h.mintImportCode(r, seen)
		if err != nil {
			logging.Error("failed to mint login code", "error", err.Error())
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		seen[code] = true

		player := models.Player{
			Name:      row.Name,
			Age:       row.Age,
			LoginCode: code,
		}
		if row.Phone != "" {
			phone := row.Phone
			player.Phone = &phone
		}
		staged = append(staged, player)
		created = append(created, fmt.Sprintf("%s: %s", row.Name, code))
	}

	if err := h.players.CreateBatch(r.Context(), staged); err != nil {
		logging.Error("failed to import players", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.metricsReg.PlayersCreatedTotal.Add(float64(len(staged)))

	msg := "No valid rows found."
	if len(created) > 0 {
		msg = "Imported players:\n" + strings.Join(created, "\n")
	}
	h.sessions.SetFlash(r.Context(), session.SessionID, msg)

	http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
}

// mintImportCode mints a login code unique against both the table and the
// codes already staged in this batch.
func (h *Handlers) mintImportCode(r *http.Request, staged map[string]bool) (string, error) {
	for i := 0; i < 5; i++ {
		code := common.NewLoginCode()
		if staged[code] {
			continue
		}
		exists, err := h.players.CodeExists(r.Context(), code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errLoginCodeSpace
}
