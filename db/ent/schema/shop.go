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

type Shop struct{ ent.Schema }

func (Shop) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "shops"},
	}
}

func (Shop) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("city").Optional().Nillable(),
		field.String("logo_image").Optional().Nillable(),
		field.Bool("is_featured").Default(false),
		field.Bool("is_active").Default(true),
		field.Float("average_rating").Default(0),
		field.Int("total_reviews").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Shop) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("created_at"),
	}
}
