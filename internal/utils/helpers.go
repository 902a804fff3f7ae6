package utils

import (
	"time"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToMandiReport(e *ent.MandiReport) *entity.MandiReport {
	return &entity.MandiReport{
		ID:          e.ID,
		Market:      e.Market,
		Date:        e.Date,
		Source:      e.Source,
		PDFURL:      e.PdfURL,
		PDFFilename: e.PdfFilename,
		TotalItems:  e.TotalItems,
		CreatedAt:   e.CreatedAt,
		ExpiresAt:   e.ExpiresAt,
	}
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:            e.ID,
		Email:         e.Email,
		Name:          e.Name,
		Role:          e.Role,
		ProfileImage:  e.ProfileImage,
		Phone:         e.Phone,
		Address:       e.Address,
		CNIC:          e.Cnic,
		Gender:        e.Gender,
		IsApproved:    e.IsApproved,
		AverageRating: e.AverageRating,
		TotalReviews:  e.TotalReviews,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToProduct(e *ent.Product) *entity.Product {
	return &entity.Product{
		ID:            e.ID,
		SellerID:      e.SellerID,
		Title:         e.Title,
		Description:   e.Description,
		Price:         e.Price,
		Category:      e.Category,
		Images:        e.Images,
		SellerName:    e.SellerName,
		IsActive:      e.IsActive,
		IsApproved:    e.IsApproved,
		AverageRating: e.AverageRating,
		TotalReviews:  e.TotalReviews,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToBid(e *ent.Bid) *entity.Bid {
	return &entity.Bid{
		ID:         e.ID,
		ProductID:  e.ProductID,
		BidderID:   e.BidderID,
		BidderName: e.BidderName,
		Amount:     e.Amount,
		Message:    e.Message,
		IsAccepted: e.IsAccepted,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToShop(e *ent.Shop) *entity.Shop {
	return &entity.Shop{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Name:          e.Name,
		Description:   e.Description,
		City:          e.City,
		LogoImage:     e.LogoImage,
		IsFeatured:    e.IsFeatured,
		IsActive:      e.IsActive,
		AverageRating: e.AverageRating,
		TotalReviews:  e.TotalReviews,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToAdmin(e *ent.Admin) *entity.Admin {
	return &entity.Admin{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Role:      e.Role,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		LastLogin: e.LastLogin,
	}
}

func ToPBReport(r *entity.MandiReport) *mandipb.MandiReport {
	return &mandipb.MandiReport{
		Id:          r.ID.String(),
		Market:      r.Market,
		Date:        r.Date,
		Source:      r.Source,
		PdfUrl:      r.PDFURL,
		PdfFilename: r.PDFFilename,
		TotalItems:  int32(r.TotalItems),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:   r.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func ToPBUser(u *entity.User) *mandipb.User {
	return &mandipb.User{
		Id:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		ProfileImage:  strOrEmpty(u.ProfileImage),
		Phone:         strOrEmpty(u.Phone),
		Address:       strOrEmpty(u.Address),
		Cnic:          strOrEmpty(u.CNIC),
		Gender:        strOrEmpty(u.Gender),
		IsApproved:    u.IsApproved,
		AverageRating: u.AverageRating,
		TotalReviews:  int32(u.TotalReviews),
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBProduct(p *entity.Product) *mandipb.Product {
	return &mandipb.Product{
		Id:            p.ID.String(),
		SellerId:      p.SellerID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		Images:        p.Images,
		SellerName:    p.SellerName,
		IsActive:      p.IsActive,
		IsApproved:    p.IsApproved,
		AverageRating: p.AverageRating,
		TotalReviews:  int32(p.TotalReviews),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBid(b *entity.Bid) *mandipb.Bid {
	return &mandipb.Bid{
		Id:         b.ID.String(),
		ProductId:  b.ProductID.String(),
		BidderId:   b.BidderID.String(),
		BidderName: b.BidderName,
		Amount:     b.Amount,
		Message:    strOrEmpty(b.Message),
		IsAccepted: b.IsAccepted,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBShop(s *entity.Shop) *mandipb.Shop {
	return &mandipb.Shop{
		Id:            s.ID.String(),
		OwnerId:       s.OwnerID.String(),
		Name:          s.Name,
		Description:   s.Description,
		City:          strOrEmpty(s.City),
		LogoImage:     strOrEmpty(s.LogoImage),
		IsFeatured:    s.IsFeatured,
		IsActive:      s.IsActive,
		AverageRating: s.AverageRating,
		TotalReviews:  int32(s.TotalReviews),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBAdmin(a *entity.Admin) *mandipb.Admin {
	out := &mandipb.Admin{
		Id:        a.ID.String(),
		Email:     a.Email,
		Name:      strOrEmpty(a.Name),
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.LastLogin != nil {
		out.LastLogin = a.LastLogin.UTC().Format(time.RFC3339)
	}
	return out
}
