package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Admin struct{ ent.Schema }

func (Admin) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "admins"},
	}
}

func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty().Unique(),
		field.String("password").NotEmpty().Sensitive(),
		field.String("name").Optional().Nillable(),
		field.String("role").Default("admin"),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("last_login").Optional().Nillable(),
	}
}
