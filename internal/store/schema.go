package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const kvTableName = "kv_records"

var (
	// KVRecordsColumns holds the columns for the "kv_records" table.
	KVRecordsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KVRecordsTable holds the schema information for the "kv_records" table.
	KVRecordsTable = &schema.Table{
		Name:       kvTableName,
		Columns:    KVRecordsColumns,
		PrimaryKey: []*schema.Column{KVRecordsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KVRecordsTable,
	}
)
