package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Bid struct{ ent.Schema }

func (Bid) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bids"},
	}
}

func (Bid) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("product_id", uuid.UUID{}),
		field.UUID("bidder_id", uuid.UUID{}),
		field.String("bidder_name").Default(""),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("message").Optional().Nillable(),
		field.Bool("is_accepted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bid) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("bids").
			Field("product_id").
			Required().
			Unique(),
		edge.From("bidder", User.Type).
			Ref("bids").
			Field("bidder_id").
			Required().
			Unique(),
	}
}

func (Bid) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id"),
		index.Fields("created_at"),
	}
}
