package usecase

import (
	"context"
	"fmt"
	"time"

	"gameden/domain"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Members"

var exportColWidths = []float64{15, 25, 15, 30, 15, 15, 15, 12, 18, 15}

type exportUC struct {
	memberRepo domain.MemberRepo
	TimeOut    time.Duration
}

func NewExportUseCase(repo domain.MemberRepo, timeOut time.Duration) domain.ExportUseCase {
	return &exportUC{
		memberRepo: repo,
		TimeOut:    timeOut,
	}
}

// ExportMembersUC builds the Members workbook, newest members first.
// An empty member list yields domain.ErrNothingToExport and no file.
func (eUC *exportUC) ExportMembersUC(ctx context.Context) (*domain.ExportResult, error) {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	members, err := eUC.memberRepo.GetAllMembers(ctx, "", "created_at", "desc")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := domain.ProjectForExport(*members, now)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("could not name export sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &domain.ExportHeaders); err != nil {
		return nil, fmt.Errorf("could not write export header: %w", err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.CardNumber, row.FullName, row.Phone, row.Email,
			row.ValidityStart, row.ValidityEnd, row.Status,
			row.TotalPlays, row.FreePlaysAvailable, row.MemberSince,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("could not write export row: %w", err)
		}
	}

	for i, width := range exportColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("could not set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not serialize workbook: %w", err)
	}

	return &domain.ExportResult{
		Filename: fmt.Sprintf("GameDen_Members_%s.xlsx", now.Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
