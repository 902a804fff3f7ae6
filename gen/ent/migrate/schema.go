// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminsColumns holds the columns for the "admins" table.
	AdminsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Default: "admin"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
	}
	// AdminsTable holds the schema information for the "admins" table.
	AdminsTable = &schema.Table{
		Name:       "admins",
		Columns:    AdminsColumns,
		PrimaryKey: []*schema.Column{AdminsColumns[0]},
	}
	// BidsColumns holds the columns for the "bids" table.
	BidsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bidder_name", Type: field.TypeString, Default: ""},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "is_accepted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
		{Name: "bidder_id", Type: field.TypeUUID},
	}
	// BidsTable holds the schema information for the "bids" table.
	BidsTable = &schema.Table{
		Name:       "bids",
		Columns:    BidsColumns,
		PrimaryKey: []*schema.Column{BidsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bids_products_bids",
				Columns:    []*schema.Column{BidsColumns[7]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "bids_users_bids",
				Columns:    []*schema.Column{BidsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bid_product_id",
				Unique:  false,
				Columns: []*schema.Column{BidsColumns[7]},
			},
			{
				Name:    "bid_created_at",
				Unique:  false,
				Columns: []*schema.Column{BidsColumns[5]},
			},
		},
	}
	// MandiReportsColumns holds the columns for the "mandi_reports" table.
	MandiReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "market", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "pdf_url", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "pdf_filename", Type: field.TypeString},
		{Name: "total_items", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// MandiReportsTable holds the schema information for the "mandi_reports" table.
	MandiReportsTable = &schema.Table{
		Name:       "mandi_reports",
		Columns:    MandiReportsColumns,
		PrimaryKey: []*schema.Column{MandiReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mandireport_created_at",
				Unique:  false,
				Columns: []*schema.Column{MandiReportsColumns[7]},
			},
			{
				Name:    "mandireport_market_date",
				Unique:  false,
				Columns: []*schema.Column{MandiReportsColumns[1], MandiReportsColumns[2]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "seller_name", Type: field.TypeString, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_approved", Type: field.TypeBool, Default: false},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "total_reviews", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "seller_id", Type: field.TypeUUID},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_users_products",
				Columns:    []*schema.Column{ProductsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_seller_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[13]},
			},
			{
				Name:    "product_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[11]},
			},
		},
	}
	// ShopsColumns holds the columns for the "shops" table.
	ShopsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "logo_image", Type: field.TypeString, Nullable: true},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "total_reviews", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ShopsTable holds the schema information for the "shops" table.
	ShopsTable = &schema.Table{
		Name:       "shops",
		Columns:    ShopsColumns,
		PrimaryKey: []*schema.Column{ShopsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "shop_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ShopsColumns[1]},
			},
			{
				Name:    "shop_created_at",
				Unique:  false,
				Columns: []*schema.Column{ShopsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "profile_image", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "cnic", Type: field.TypeString, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "is_approved", Type: field.TypeBool, Default: false},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "total_reviews", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminsTable,
		BidsTable,
		MandiReportsTable,
		ProductsTable,
		ShopsTable,
		UsersTable,
	}
)

func init() {
	AdminsTable.Annotation = &entsql.Annotation{
		Table: "admins",
	}
	BidsTable.ForeignKeys[0].RefTable = ProductsTable
	BidsTable.ForeignKeys[1].RefTable = UsersTable
	BidsTable.Annotation = &entsql.Annotation{
		Table: "bids",
	}
	MandiReportsTable.Annotation = &entsql.Annotation{
		Table: "mandi_reports",
	}
	ProductsTable.ForeignKeys[0].RefTable = UsersTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	ShopsTable.Annotation = &entsql.Annotation{
		Table: "shops",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
