package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gobayes/domain/bayes"
	"gobayes/models"

	"github.com/xuri/excelize/v2"
)

// ScenarioReader reads Bayes factor scenarios from Excel or CSV files,
// one scenario per row. The header row names the columns; recognized
// headers are label, data_mean, data_se, h0_value, distribution,
// h1_value, uniform_min, uniform_max, mode, sd and half. Unknown columns
// are ignored.
type ScenarioReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewScenarioReader creates a reader for the given file. Excel files are
// read from Sheet1 unless overridden with WithSheet.
func NewScenarioReader(filePath string) *ScenarioReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &ScenarioReader{filePath: filePath, fileType: fileType, sheet: "Sheet1"}
}

// WithSheet selects the worksheet to read scenarios from
func (r *ScenarioReader) WithSheet(sheet string) *ScenarioReader {
	r.sheet = sheet
	return r
}

// ReadScenarios reads all scenario rows from the file
func (r *ScenarioReader) ReadScenarios(ctx context.Context) ([]models.Scenario, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("scenario file must have a header row and at least one data row")
	}

	return parseScenarios(rows)
}

func (r *ScenarioReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	return rows, nil
}

func (r *ScenarioReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func parseScenarios(rows [][]string) ([]models.Scenario, error) {
	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := columns["data_mean"]; !ok {
		return nil, fmt.Errorf("scenario file is missing a data_mean column")
	}
	if _, ok := columns["data_se"]; !ok {
		return nil, fmt.Errorf("scenario file is missing a data_se column")
	}
	if _, ok := columns["distribution"]; !ok {
		return nil, fmt.Errorf("scenario file is missing a distribution column")
	}

	scenarios := make([]models.Scenario, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		scenario, err := parseScenarioRow(columns, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx+2, err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

func parseScenarioRow(columns map[string]int, row []string) (models.Scenario, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	requiredFloat := func(name string) (float64, error) {
		raw := cell(name)
		if raw == "" {
			return 0, fmt.Errorf("missing %s", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q", name, raw)
		}
		return v, nil
	}
	optionalFloat := func(name string) (*float64, error) {
		raw := cell(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", name, raw)
		}
		return &v, nil
	}

	mean, err := requiredFloat("data_mean")
	if err != nil {
		return models.Scenario{}, err
	}
	se, err := requiredFloat("data_se")
	if err != nil {
		return models.Scenario{}, err
	}

	req := bayes.Request{
		DataMean:     mean,
		DataSE:       se,
		Distribution: bayes.PriorKind(strings.ToLower(cell("distribution"))),
	}
	if h0, err := optionalFloat("h0_value"); err != nil {
		return models.Scenario{}, err
	} else if h0 != nil {
		req.H0Value = *h0
	}
	if req.H1Value, err = optionalFloat("h1_value"); err != nil {
		return models.Scenario{}, err
	}
	if req.UniformMin, err = optionalFloat("uniform_min"); err != nil {
		return models.Scenario{}, err
	}
	if req.UniformMax, err = optionalFloat("uniform_max"); err != nil {
		return models.Scenario{}, err
	}
	if req.Mode, err = optionalFloat("mode"); err != nil {
		return models.Scenario{}, err
	}
	if req.SD, err = optionalFloat("sd"); err != nil {
		return models.Scenario{}, err
	}
	if raw := strings.ToLower(cell("half")); raw != "" {
		half := bayes.Half(raw)
		if half != bayes.HalfUpper && half != bayes.HalfLower {
			return models.Scenario{}, fmt.Errorf("invalid half value %q", raw)
		}
		req.Half = &half
	}

	return models.Scenario{Label: cell("label"), Request: req}, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
