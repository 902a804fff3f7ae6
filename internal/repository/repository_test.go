package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pakricemarket/mandi-admin/constants"
	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/enttest"
	"github.com/pakricemarket/mandi-admin/internal/common"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestReportRepositoryCreateAndListRecent(t *testing.T) {
	client := openTestClient(t)
	repo := NewReportRepository(client, slog.Default())
	ctx := context.Background()

	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		created := base.AddDate(0, 0, i)
		_, err := repo.Create(ctx, &CreateReportRequest{
			Market:      "غلہ منڈی عارفوالا",
			Date:        fmt.Sprintf("1%d.01.2025", i),
			Source:      "WhatsApp",
			PDFURL:      "https://example.com/r.pdf",
			PDFFilename: fmt.Sprintf("Mandi-List-1%d-01-2025.pdf", i),
			TotalItems:  i + 1,
			CreatedAt:   created,
			ExpiresAt:   created.Add(constants.ReportTTL),
		})
		require.NoError(t, err)
	}

	recs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	// newest first
	assert.Equal(t, "12.01.2025", recs[0].Date)
	assert.Equal(t, "11.01.2025", recs[1].Date)
	assert.Equal(t, recs[0].CreatedAt.Add(constants.ReportTTL), recs[0].ExpiresAt)
}

func TestUserRepositoryPagination(t *testing.T) {
	client := openTestClient(t)
	repo := NewUserRepository(client, slog.Default())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.User.Create().
			SetEmail(fmt.Sprintf("user%d@example.com", i)).
			SetName(fmt.Sprintf("User %d", i)).
			SetRole("user").
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, page.Users, 3)
	assert.True(t, page.HasMore)

	page, err = repo.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
	assert.False(t, page.HasMore)
}

func TestUserRepositoryApprovalAndRoles(t *testing.T) {
	client := openTestClient(t)
	repo := NewUserRepository(client, slog.Default())
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("seller@example.com").
		SetName("Seller").
		SetRole("shop").
		Save(ctx)
	require.NoError(t, err)
	assert.False(t, u.IsApproved)

	updated, err := repo.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsApproved)

	shops, err := repo.ListByRole(ctx, "shop")
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "seller@example.com", shops[0].Email)

	none, err := repo.ListByRole(ctx, "admin")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMutationsOnMissingRowsReturnNotFound(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()
	missing := uuid.New()

	users := NewUserRepository(client, slog.Default())
	_, err := users.SetApproval(ctx, missing, true)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, missing), common.ErrNotFound)

	products := NewProductRepository(client, slog.Default())
	_, err = products.SetApproval(ctx, missing, true)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = products.SetActive(ctx, missing, false)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, products.Delete(ctx, missing), common.ErrNotFound)

	shops := NewShopRepository(client, slog.Default())
	_, err = shops.SetFeatured(ctx, missing, true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdminRepositoryAuthenticate(t *testing.T) {
	client := openTestClient(t)
	repo := NewAdminRepository(client, slog.Default())
	ctx := context.Background()

	created, err := repo.Create(ctx, "admin@pakricemarket.com", "s3cret", "Admin")
	require.NoError(t, err)

	admin, err := repo.Authenticate(ctx, "admin@pakricemarket.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)

	_, err = repo.Authenticate(ctx, "admin@pakricemarket.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	require.NoError(t, repo.Deactivate(ctx, created.ID))
	_, err = repo.Authenticate(ctx, "admin@pakricemarket.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestStatsRepositoryDashboardStats(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	approved, err := client.User.Create().
		SetEmail("a@example.com").SetName("A").SetRole("user").SetIsApproved(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetEmail("b@example.com").SetName("B").SetRole("shop").
		Save(ctx)
	require.NoError(t, err)

	p, err := client.Product.Create().
		SetSellerID(approved.ID).
		SetTitle("Super Basmati").
		SetDescription("Long grain").
		SetPrice(11000).
		SetCategory(string(constants.Rice)).
		SetSellerName("A").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Bid.Create().
		SetProductID(p.ID).
		SetBidderID(approved.ID).
		SetBidderName("A").
		SetAmount(10500).
		Save(ctx)
	require.NoError(t, err)

	stats, err := NewStatsRepository(client, slog.Default()).DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.ActiveProducts)
	assert.Equal(t, 1, stats.TotalBids)
}
