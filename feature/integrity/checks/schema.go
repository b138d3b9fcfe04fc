package checks

import (
	"fmt"
	"reflect"
	"strings"

	"roundest/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing model definitions with the live schema.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the differences found for one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that every column declared on the models exists in
// the connected database. Models must implement TableName.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range models {
		t := reflect.TypeOf(model)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %T is not a struct", model)
		}

		tabler, ok := reflect.New(t).Interface().(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", t.Name())
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         "ok",
		}
		if len(actualCols) == 0 {
			// PRAGMA and information_schema return no rows for a missing table
			report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", tableName))
			tbl.Status = "error"
			report.Matched = false
			report.Tables[tableName] = tbl
			continue
		}

		actual := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actual[col.Field] = col
		}

		for i := 0; i < t.NumField(); i++ {
			gormTag := t.Field(i).Tag.Get("gorm")

			colName := parseGormColumn(gormTag)
			if colName == "" {
				// associations carry no column
				continue
			}

			col, exists := actual[colName]
			if !exists {
				tbl.MissingColumns = append(tbl.MissingColumns, colName)
				tbl.Status = "error"
				report.Matched = false
				continue
			}

			if expType := strings.ToLower(parseGormType(gormTag)); expType != "" && !strings.Contains(col.Type, expType) {
				tbl.TypeMismatches = append(tbl.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
				tbl.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[tableName] = tbl
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	return parseGormSetting(tag, "column:")
}

func parseGormType(tag string) string {
	return parseGormSetting(tag, "type:")
}

func parseGormSetting(tag, prefix string) string {
	for _, p := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(p), prefix); ok {
			return v
		}
	}
	return ""
}
