package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/tech-gecko/DayMinder/internal/models"
)

// Generator renders a user's agenda; split out as an interface so handlers
// can be tested without producing real PDFs.
type Generator interface {
	GenerateAgenda(data AgendaData) ([]byte, error)
}

type AgendaData struct {
	Username    string
	GeneratedAt time.Time
	Tasks       []models.Task
	Reminders   []models.Reminder
}

type AgendaGenerator struct{}

func NewAgendaGenerator() *AgendaGenerator {
	return &AgendaGenerator{}
}

func (g *AgendaGenerator) GenerateAgenda(data AgendaData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Agenda for %s", data.Username), false)
	pdf.SetAuthor("DayMinder", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Agenda for %s", data.Username), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+data.GeneratedAt.UTC().Format("2006-01-02 15:04")+" UTC", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Tasks", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(data.Tasks) == 0 {
		pdf.CellFormat(0, 7, "No tasks.", "", 1, "L", false, 0, "")
	}
	for _, t := range data.Tasks {
		due := "-"
		if t.EndTime != nil {
			due = t.EndTime.UTC().Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("#%d  %s  [%s/%s]  due %s", t.ID, t.Title, t.Status, t.Priority, due)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Reminders", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(data.Reminders) == 0 {
		pdf.CellFormat(0, 7, "No reminders.", "", 1, "L", false, 0, "")
	}
	for _, r := range data.Reminders {
		sent := "pending"
		if r.Sent {
			sent = "sent"
		}
		line := fmt.Sprintf("#%d  task #%d  at %s  (%s)",
			r.ID, r.TaskID, r.ReminderTime.Format("2006-01-02 15:04"), sent)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render agenda pdf: %w", err)
	}
	return buf.Bytes(), nil
}
