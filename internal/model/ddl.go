package model

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// DDL 由 gorm 模型推导建表语句（与 AutoMigrate 同源），按 Models() 顺序输出
func DDL(db *gorm.DB) ([]string, error) {
	statements := make([]string, 0, len(Models()))
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("解析模型%T失败: %w", m, err)
		}

		var cols []string
		hasPrimary := false
		for _, name := range stmt.Schema.DBNames {
			field := stmt.Schema.FieldsByDBName[name]
			expr := db.Migrator().FullDataTypeOf(field)
			if strings.Contains(strings.ToUpper(expr.SQL), "PRIMARY KEY") {
				hasPrimary = true
			}
			cols = append(cols, fmt.Sprintf("  %s %s", stmt.Quote(name), expr.SQL))
		}
		if !hasPrimary && len(stmt.Schema.PrimaryFieldDBNames) > 0 {
			quoted := make([]string, 0, len(stmt.Schema.PrimaryFieldDBNames))
			for _, name := range stmt.Schema.PrimaryFieldDBNames {
				quoted = append(quoted, stmt.Quote(name))
			}
			cols = append(cols, fmt.Sprintf("  PRIMARY KEY (%s)", strings.Join(quoted, ", ")))
		}

		ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);", stmt.Quote(stmt.Schema.Table), strings.Join(cols, ",\n"))
		for _, idx := range indexDDL(stmt) {
			ddl += "\n" + idx
		}
		statements = append(statements, ddl)
	}
	return statements, nil
}

// indexDDL 与 AutoMigrate 相同的索引（index / uniqueIndex 标签），按索引名排序
func indexDDL(stmt *gorm.Statement) []string {
	var out []string
	for _, idx := range stmt.Schema.ParseIndexes() {
		cols := make([]string, 0, len(idx.Fields))
		for _, opt := range idx.Fields {
			if opt.Expression != "" {
				cols = append(cols, opt.Expression)
				continue
			}
			cols = append(cols, stmt.Quote(opt.DBName))
		}
		create := "CREATE INDEX"
		if idx.Class != "" {
			create = "CREATE " + idx.Class + " INDEX"
		}
		sql := fmt.Sprintf("%s %s ON %s (%s)", create, stmt.Quote(idx.Name), stmt.Quote(stmt.Schema.Table), strings.Join(cols, ", "))
		if idx.Where != "" {
			sql += " WHERE " + idx.Where
		}
		out = append(out, sql+";")
	}
	sort.Strings(out)
	return out
}
