package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"pondpatrol-web/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	defaultInquiryLimit = 50
	maxInquiryLimit     = 500
	// Export limit, matching one spreadsheet a person can still read
	maxExportRows = 10000
	exportSheet   = "Inquiries"
)

// ErrNoInquiryStore is returned when inquiries are not persisted
var ErrNoInquiryStore = errors.New("inquiry storage is not configured")

var exportColumns = []struct {
	header string
	width  float64
	value  func(inq domain.Inquiry) interface{}
}{
	{"RECEIVED AT", 20, func(inq domain.Inquiry) interface{} { return inq.CreatedAt.UTC().Format("2006-01-02 15:04") }},
	{"NAME", 24, func(inq domain.Inquiry) interface{} { return inq.Name }},
	{"EMAIL", 30, func(inq domain.Inquiry) interface{} { return inq.Email }},
	{"PHONE", 16, func(inq domain.Inquiry) interface{} { return inq.Phone }},
	{"FARM SIZE", 14, func(inq domain.Inquiry) interface{} { return inq.FarmSize.Label() }},
	{"MESSAGE", 60, func(inq domain.Inquiry) interface{} { return inq.Message }},
	{"SOURCE", 10, func(inq domain.Inquiry) interface{} { return inq.Source }},
}

type inquiryUsecase struct {
	repo domain.InquiryRepository
	now  func() time.Time
}

func NewInquiryUsecase(repo domain.InquiryRepository) domain.InquiryUsecase {
	return &inquiryUsecase{repo: repo, now: time.Now}
}

// List returns the newest inquiries first. limit is clamped to (0, 500].
func (uc *inquiryUsecase) List(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	if uc.repo == nil {
		return nil, ErrNoInquiryStore
	}
	if limit <= 0 {
		limit = defaultInquiryLimit
	}
	if limit > maxInquiryLimit {
		limit = maxInquiryLimit
	}
	return uc.repo.List(ctx, limit)
}

// Export writes up to 10,000 of the newest inquiries to one worksheet
func (uc *inquiryUsecase) Export(ctx context.Context) ([]byte, string, error) {
	if uc.repo == nil {
		return nil, "", ErrNoInquiryStore
	}
	items, err := uc.repo.List(ctx, maxExportRows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch inquiries for export: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, col.header)
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheet, name, name, col.width)
	}

	// Brand navy header with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#0A2342"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(exportSheet, "A1", endCell, headerStyle)
	}

	for rowIdx, inq := range items {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(exportSheet, cell, col.value(inq))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("pondpatrol_inquiries_%s.xlsx", uc.now().UTC().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
