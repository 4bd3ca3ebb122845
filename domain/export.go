package domain

import (
	"context"
	"time"
)

// ExportHeaders is the fixed column order of the Members sheet.
var ExportHeaders = []string{
	"Card Number", "Full Name", "Phone", "Email",
	"Validity Start", "Validity End", "Status",
	"Total Plays", "Free Plays Available", "Member Since",
}

type ExportRow struct {
	CardNumber         string
	FullName           string
	Phone              string
	Email              string
	ValidityStart      string
	ValidityEnd        string
	Status             string
	TotalPlays         int
	FreePlaysAvailable int
	MemberSince        string
}

// ProjectForExport flattens members into spreadsheet rows, preserving
// the caller's ordering. An empty input yields ErrNothingToExport so no
// file gets produced.
func ProjectForExport(members []MemberWithPlayCount, now time.Time) ([]ExportRow, error) {
	if len(members) == 0 {
		return nil, ErrNothingToExport
	}

	rows := make([]ExportRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, ExportRow{
			CardNumber:         m.CardNumber,
			FullName:           m.FullName,
			Phone:              m.Phone,
			Email:              m.Email,
			ValidityStart:      formatMessageDate(m.ValidityStart),
			ValidityEnd:        formatMessageDate(m.ValidityEnd),
			Status:             ValidityStatusText(m.ValidityEnd, now),
			TotalPlays:         m.PlayCount,
			FreePlaysAvailable: FreePlaysEarned(m.PlayCount),
			MemberSince:        formatMessageDate(m.CreatedAt),
		})
	}
	return rows, nil
}

// ExportResult carries a finished workbook and the name it should be
// served under.
type ExportResult struct {
	Filename string
	Content  []byte
}

type ExportUseCase interface {
	ExportMembersUC(ctx context.Context) (*ExportResult, error)
}
