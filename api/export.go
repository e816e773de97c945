package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/foodwatch/foodwatch-api/schema"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	caseSheetName   = "Cases"
	exportDateFmt   = "2006-01-02"
)

var caseExportHeaders = []string{
	"ID", "Report Date", "Onset Date", "Establishment", "City", "State",
	"Symptoms", "Foods Consumed", "Patients", "Status",
}

// exportCases sends the cases of the cases page, filtered the same way, as a
// workbook
func (s *Server) exportCases(c *gin.Context) {
	params, ok := bindParams(c, "status")
	if !ok {
		return
	}

	view, err := s.dashboard.Cases(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	data, err := caseWorkbook(view.Cases)
	if err != nil {
		log.WithError(err).Error("export cases")
		abortWithEncoding(c, http.StatusInternalServerError, errorExportCases, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cases-%s.xlsx"`, view.Range.Token))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func caseRow(cs schema.Case) []interface{} {
	onset := ""
	if cs.OnsetDate != nil {
		onset = cs.OnsetDate.UTC().Format(exportDateFmt)
	}

	var patients interface{} = ""
	if cs.PatientCount != nil {
		patients = *cs.PatientCount
	}

	city, state := "", ""
	if cs.Establishment != nil {
		city, state = cs.Establishment.City, cs.Establishment.State
	}

	return []interface{}{
		cs.ID,
		cs.ReportDate.UTC().Format(exportDateFmt),
		onset,
		cs.EstablishmentName(),
		city,
		state,
		strings.Join(cs.Symptoms, ", "),
		strings.Join(cs.FoodsConsumed, ", "),
		patients,
		cs.Status,
	}
}

func caseWorkbook(cases []schema.Case) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", caseSheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, 0, len(caseExportHeaders))
	for _, h := range caseExportHeaders {
		header = append(header, h)
	}
	if err := f.SetSheetRow(caseSheetName, "A1", &header); err != nil {
		return nil, err
	}

	last, err := excelize.CoordinatesToCellName(len(caseExportHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(caseSheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, cs := range cases {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := caseRow(cs)
		if err := f.SetSheetRow(caseSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write case %d: %w", cs.ID, err)
		}
	}

	if err := f.SetPanes(caseSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
