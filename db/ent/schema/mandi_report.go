package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MandiReport is the append-only metadata record written after a report PDF
// is published. The full category/item structure is never persisted; full
// fidelity lives only in the uploaded document.
type MandiReport struct{ ent.Schema }

func (MandiReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mandi_reports"},
	}
}

func (MandiReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("market").NotEmpty().Immutable(),
		// report date as printed in the source message, e.g. 15.01.2025
		field.String("date").NotEmpty().Immutable(),
		field.String("source").Default("").Immutable(),
		field.String("pdf_url").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("pdf_filename").NotEmpty().Immutable(),
		field.Int("total_items").NonNegative().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		// advisory only; deletion depends on the bucket lifecycle rule
		field.Time("expires_at").Immutable(),
	}
}

func (MandiReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("market", "date"),
	}
}
