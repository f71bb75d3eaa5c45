package export_bookings

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName        = "الحجوزات المؤكدة"
	fileNamePrefix   = "الحجوزات-المؤكدة"
	asciiPrefix      = "confirmed-bookings"
	phonePlaceholder = "غير متوفر"
	statusConfirmed  = "مؤكد"
)

var headers = []interface{}{"التاريخ", "الاسم", "الهاتف", "حالة التأكيد"}

// FileName имя файла выгрузки для диапазона
func FileName(start, end string) string {
	return fmt.Sprintf("%s-%s-to-%s.xlsx", fileNamePrefix, start, end)
}

// ASCIIFileName латинское имя файла для того же диапазона
func ASCIIFileName(start, end string) string {
	return fmt.Sprintf("%s-%s-to-%s.xlsx", asciiPrefix, start, end)
}

// buildWorkbook собирает книгу с одним листом: заголовок и строки
func buildWorkbook(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rtl := true
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, fmt.Errorf("set sheet view: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply style: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row.Date, row.Name, row.Phone, row.Status}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 22); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
