package accesscodeservice

import (
	"context"
	"fmt"
	"time"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Access Codes"

var exportHeader = []any{"Code", "Status", "Expires At", "Used By", "Used At", "Created At"}

// ExportCodesXLSX renders the actor's codes as a single-sheet workbook.
func (s *AccessCodeService) ExportCodesXLSX(ctx context.Context, actor authdomain.Actor) ([]byte, error) {
	codes, err := s.ListCodes(ctx, actor)
	if err != nil {
		return nil, err
	}
	return buildCodesWorkbook(codes, s.now())
}

func buildCodesWorkbook(codes []accesscodedomain.AccessCode, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := exportHeader
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, c := range codes {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			c.Code,
			string(c.Status(now)),
			formatTime(c.ExpiresAt),
			formatUser(c),
			formatTime(c.UsedAt),
			c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(exportSheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "F", 24); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatUser(c accesscodedomain.AccessCode) string {
	if c.UsedBy == nil {
		return ""
	}
	return c.UsedBy.String()
}
