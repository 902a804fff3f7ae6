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

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("seller_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("description").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("category").Default(""),
		field.Strings("images").Optional(),
		field.String("seller_name").Default(""),
		field.Bool("is_active").Default(true),
		field.Bool("is_approved").Default(false),
		field.Float("average_rating").Default(0),
		field.Int("total_reviews").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY products -> ONE seller (FK: products.seller_id)
		edge.From("seller", User.Type).
			Ref("products").
			Field("seller_id").
			Required().
			Unique(),
		// ONE product -> MANY bids
		edge.To("bids", Bid.Type),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("seller_id"),
		index.Fields("created_at"),
	}
}
