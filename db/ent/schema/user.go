package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/constants"
	"github.com/pakricemarket/mandi-admin/db/ent/schema/utils"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.String("role").Default(string(constants.RoleUser)).
			Validate(utils.EnumValidator(constants.UserRoles...)),
		field.String("profile_image").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("cnic").Optional().Nillable(),
		field.String("gender").Optional().Nillable().
			Validate(utils.EnumValidator(constants.Genders...)),
		field.Bool("is_approved").Default(false),
		field.Float("average_rating").Default(0),
		field.Int("total_reviews").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("products", Product.Type),
		edge.To("bids", Bid.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("created_at"),
	}
}
