package report

import (
	"context"
	"fmt"
	"io"

	"github.com/EricWal/hr-app/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "الطلبات"

var exportHeaders = []string{
	"رقم الطلب", "نوع الطلب", "التاريخ", "من", "إلى", "المدة (دقيقة)",
	"الحالة", "سبب الرفض", "الموظف", "المسمى الوظيفي", "القسم", "ملاحظات",
}

// ExportXLSX writes the matching requests as a spreadsheet, one row per request.
func (s *Service) ExportXLSX(ctx context.Context, w io.Writer, filter ExportFilter) (int, error) {
	requests, err := s.all(ctx, domain.ListRequestsFilter{Statuses: filter.Statuses, Q: filter.Q})
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn(ctx, "failed to close spreadsheet", "error", err)
		}
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return 0, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return 0, err
	}
	rtl := true
	if err := f.SetSheetView(exportSheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return 0, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return 0, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return 0, err
	}

	for i, r := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(r)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return 0, fmt.Errorf("writing row for request %d: %w", r.ID, err)
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "L", 18); err != nil {
		return 0, err
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("writing spreadsheet: %w", err)
	}
	s.logger.Info(ctx, "requests exported", "rows", len(requests))
	return len(requests), nil
}

func exportRow(r *domain.Request) []interface{} {
	row := []interface{}{
		fmt.Sprint(r.ID), r.Type, r.DisplayDate(), "", "", "",
		string(r.Status), r.RejectionReason,
		r.Employee.Name, r.Employee.Role, r.Employee.Department, "",
	}
	switch {
	case r.ShortAbsence != nil:
		row[3] = r.ShortAbsence.FromTime
		row[4] = r.ShortAbsence.ToTime
		row[5] = r.ShortAbsence.DurationMinutes
		row[11] = r.ShortAbsence.Notes
	case r.Leave != nil:
		row[11] = r.Leave.Reason
	}
	return row
}
