// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mandi/v1/mandi.proto

package mandiv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type MandiReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Market        string                 `protobuf:"bytes,2,opt,name=market,proto3" json:"market,omitempty"`
	Date          string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	PdfUrl        string                 `protobuf:"bytes,5,opt,name=pdf_url,json=pdfUrl,proto3" json:"pdf_url,omitempty"`
	PdfFilename   string                 `protobuf:"bytes,6,opt,name=pdf_filename,json=pdfFilename,proto3" json:"pdf_filename,omitempty"`
	TotalItems    int32                  `protobuf:"varint,7,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt     string                 `protobuf:"bytes,9,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MandiReport) Reset() {
	*x = MandiReport{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MandiReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MandiReport) ProtoMessage() {}

func (x *MandiReport) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MandiReport.ProtoReflect.Descriptor instead.
func (*MandiReport) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{0}
}

func (x *MandiReport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MandiReport) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *MandiReport) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *MandiReport) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *MandiReport) GetPdfUrl() string {
	if x != nil {
		return x.PdfUrl
	}
	return ""
}

func (x *MandiReport) GetPdfFilename() string {
	if x != nil {
		return x.PdfFilename
	}
	return ""
}

func (x *MandiReport) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *MandiReport) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *MandiReport) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	ProfileImage  string                 `protobuf:"bytes,5,opt,name=profile_image,json=profileImage,proto3" json:"profile_image,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Address       string                 `protobuf:"bytes,7,opt,name=address,proto3" json:"address,omitempty"`
	Cnic          string                 `protobuf:"bytes,8,opt,name=cnic,proto3" json:"cnic,omitempty"`
	Gender        string                 `protobuf:"bytes,9,opt,name=gender,proto3" json:"gender,omitempty"`
	IsApproved    bool                   `protobuf:"varint,10,opt,name=is_approved,json=isApproved,proto3" json:"is_approved,omitempty"`
	AverageRating float64                `protobuf:"fixed64,11,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	TotalReviews  int32                  `protobuf:"varint,12,opt,name=total_reviews,json=totalReviews,proto3" json:"total_reviews,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{1}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *User) GetProfileImage() string {
	if x != nil {
		return x.ProfileImage
	}
	return ""
}

func (x *User) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *User) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *User) GetCnic() string {
	if x != nil {
		return x.Cnic
	}
	return ""
}

func (x *User) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *User) GetIsApproved() bool {
	if x != nil {
		return x.IsApproved
	}
	return false
}

func (x *User) GetAverageRating() float64 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

func (x *User) GetTotalReviews() int32 {
	if x != nil {
		return x.TotalReviews
	}
	return 0
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Product struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SellerId      string                 `protobuf:"bytes,2,opt,name=seller_id,json=sellerId,proto3" json:"seller_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Price         float64                `protobuf:"fixed64,5,opt,name=price,proto3" json:"price,omitempty"`
	Category      string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`
	Images        []string               `protobuf:"bytes,7,rep,name=images,proto3" json:"images,omitempty"`
	SellerName    string                 `protobuf:"bytes,8,opt,name=seller_name,json=sellerName,proto3" json:"seller_name,omitempty"`
	IsActive      bool                   `protobuf:"varint,9,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	IsApproved    bool                   `protobuf:"varint,10,opt,name=is_approved,json=isApproved,proto3" json:"is_approved,omitempty"`
	AverageRating float64                `protobuf:"fixed64,11,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	TotalReviews  int32                  `protobuf:"varint,12,opt,name=total_reviews,json=totalReviews,proto3" json:"total_reviews,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Product) Reset() {
	*x = Product{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Product) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Product) ProtoMessage() {}

func (x *Product) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Product.ProtoReflect.Descriptor instead.
func (*Product) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{2}
}

func (x *Product) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Product) GetSellerId() string {
	if x != nil {
		return x.SellerId
	}
	return ""
}

func (x *Product) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Product) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Product) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Product) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Product) GetImages() []string {
	if x != nil {
		return x.Images
	}
	return nil
}

func (x *Product) GetSellerName() string {
	if x != nil {
		return x.SellerName
	}
	return ""
}

func (x *Product) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Product) GetIsApproved() bool {
	if x != nil {
		return x.IsApproved
	}
	return false
}

func (x *Product) GetAverageRating() float64 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

func (x *Product) GetTotalReviews() int32 {
	if x != nil {
		return x.TotalReviews
	}
	return 0
}

func (x *Product) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Product) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Bid struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	BidderId      string                 `protobuf:"bytes,3,opt,name=bidder_id,json=bidderId,proto3" json:"bidder_id,omitempty"`
	BidderName    string                 `protobuf:"bytes,4,opt,name=bidder_name,json=bidderName,proto3" json:"bidder_name,omitempty"`
	Amount        float64                `protobuf:"fixed64,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Message       string                 `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
	IsAccepted    bool                   `protobuf:"varint,7,opt,name=is_accepted,json=isAccepted,proto3" json:"is_accepted,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bid) Reset() {
	*x = Bid{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bid) ProtoMessage() {}

func (x *Bid) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bid.ProtoReflect.Descriptor instead.
func (*Bid) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{3}
}

func (x *Bid) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bid) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *Bid) GetBidderId() string {
	if x != nil {
		return x.BidderId
	}
	return ""
}

func (x *Bid) GetBidderName() string {
	if x != nil {
		return x.BidderName
	}
	return ""
}

func (x *Bid) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Bid) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Bid) GetIsAccepted() bool {
	if x != nil {
		return x.IsAccepted
	}
	return false
}

func (x *Bid) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Bid) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Shop struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	City          string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	LogoImage     string                 `protobuf:"bytes,6,opt,name=logo_image,json=logoImage,proto3" json:"logo_image,omitempty"`
	IsFeatured    bool                   `protobuf:"varint,7,opt,name=is_featured,json=isFeatured,proto3" json:"is_featured,omitempty"`
	IsActive      bool                   `protobuf:"varint,8,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	AverageRating float64                `protobuf:"fixed64,9,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	TotalReviews  int32                  `protobuf:"varint,10,opt,name=total_reviews,json=totalReviews,proto3" json:"total_reviews,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Shop) Reset() {
	*x = Shop{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shop) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shop) ProtoMessage() {}

func (x *Shop) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shop.ProtoReflect.Descriptor instead.
func (*Shop) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{4}
}

func (x *Shop) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Shop) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Shop) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Shop) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Shop) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Shop) GetLogoImage() string {
	if x != nil {
		return x.LogoImage
	}
	return ""
}

func (x *Shop) GetIsFeatured() bool {
	if x != nil {
		return x.IsFeatured
	}
	return false
}

func (x *Shop) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Shop) GetAverageRating() float64 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

func (x *Shop) GetTotalReviews() int32 {
	if x != nil {
		return x.TotalReviews
	}
	return 0
}

func (x *Shop) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Shop) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Admin struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	IsActive      bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastLogin     string                 `protobuf:"bytes,7,opt,name=last_login,json=lastLogin,proto3" json:"last_login,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Admin) Reset() {
	*x = Admin{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Admin) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Admin) ProtoMessage() {}

func (x *Admin) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Admin.ProtoReflect.Descriptor instead.
func (*Admin) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{5}
}

func (x *Admin) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Admin) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Admin) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Admin) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Admin) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Admin) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Admin) GetLastLogin() string {
	if x != nil {
		return x.LastLogin
	}
	return ""
}

type ParseMandiMessageRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Raw WhatsApp message text pasted by the admin, verbatim.
	RawText       string `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseMandiMessageRequest) Reset() {
	*x = ParseMandiMessageRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseMandiMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseMandiMessageRequest) ProtoMessage() {}

func (x *ParseMandiMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseMandiMessageRequest.ProtoReflect.Descriptor instead.
func (*ParseMandiMessageRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{6}
}

func (x *ParseMandiMessageRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ParseMandiMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *MandiReport           `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	PublicUrl     string                 `protobuf:"bytes,2,opt,name=public_url,json=publicUrl,proto3" json:"public_url,omitempty"`
	PresignedUrl  string                 `protobuf:"bytes,3,opt,name=presigned_url,json=presignedUrl,proto3" json:"presigned_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseMandiMessageResponse) Reset() {
	*x = ParseMandiMessageResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseMandiMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseMandiMessageResponse) ProtoMessage() {}

func (x *ParseMandiMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseMandiMessageResponse.ProtoReflect.Descriptor instead.
func (*ParseMandiMessageResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{7}
}

func (x *ParseMandiMessageResponse) GetReport() *MandiReport {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *ParseMandiMessageResponse) GetPublicUrl() string {
	if x != nil {
		return x.PublicUrl
	}
	return ""
}

func (x *ParseMandiMessageResponse) GetPresignedUrl() string {
	if x != nil {
		return x.PresignedUrl
	}
	return ""
}

type ListReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsRequest) Reset() {
	*x = ListReportsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsRequest) ProtoMessage() {}

func (x *ListReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsRequest.ProtoReflect.Descriptor instead.
func (*ListReportsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{8}
}

func (x *ListReportsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*MandiReport         `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsResponse) Reset() {
	*x = ListReportsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsResponse) ProtoMessage() {}

func (x *ListReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsResponse.ProtoReflect.Descriptor instead.
func (*ListReportsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{9}
}

func (x *ListReportsResponse) GetReports() []*MandiReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type ExportReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsRequest) Reset() {
	*x = ExportReportsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsRequest) ProtoMessage() {}

func (x *ExportReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportReportsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{10}
}

func (x *ExportReportsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportReportsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// XLSX workbook bytes.
	Archive       []byte `protobuf:"bytes,1,opt,name=archive,proto3" json:"archive,omitempty"`
	Filename      string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsResponse) Reset() {
	*x = ExportReportsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsResponse) ProtoMessage() {}

func (x *ExportReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportReportsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{11}
}

func (x *ExportReportsResponse) GetArchive() []byte {
	if x != nil {
		return x.Archive
	}
	return nil
}

func (x *ExportReportsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ListUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersRequest.ProtoReflect.Descriptor instead.
func (*ListUsersRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{12}
}

func (x *ListUsersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListUsersRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersResponse.ProtoReflect.Descriptor instead.
func (*ListUsersResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{13}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

func (x *ListUsersResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

type ListUsersByRoleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersByRoleRequest) Reset() {
	*x = ListUsersByRoleRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersByRoleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersByRoleRequest) ProtoMessage() {}

func (x *ListUsersByRoleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersByRoleRequest.ProtoReflect.Descriptor instead.
func (*ListUsersByRoleRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{14}
}

func (x *ListUsersByRoleRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type ListUsersByRoleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersByRoleResponse) Reset() {
	*x = ListUsersByRoleResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersByRoleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersByRoleResponse) ProtoMessage() {}

func (x *ListUsersByRoleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersByRoleResponse.ProtoReflect.Descriptor instead.
func (*ListUsersByRoleResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{15}
}

func (x *ListUsersByRoleResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type SetUserApprovalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Approved      bool                   `protobuf:"varint,2,opt,name=approved,proto3" json:"approved,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUserApprovalRequest) Reset() {
	*x = SetUserApprovalRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUserApprovalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUserApprovalRequest) ProtoMessage() {}

func (x *SetUserApprovalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUserApprovalRequest.ProtoReflect.Descriptor instead.
func (*SetUserApprovalRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{16}
}

func (x *SetUserApprovalRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SetUserApprovalRequest) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

type SetUserApprovalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUserApprovalResponse) Reset() {
	*x = SetUserApprovalResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUserApprovalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUserApprovalResponse) ProtoMessage() {}

func (x *SetUserApprovalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUserApprovalResponse.ProtoReflect.Descriptor instead.
func (*SetUserApprovalResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{17}
}

func (x *SetUserApprovalResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type DeleteUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserRequest) Reset() {
	*x = DeleteUserRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserRequest) ProtoMessage() {}

func (x *DeleteUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserRequest.ProtoReflect.Descriptor instead.
func (*DeleteUserRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DeleteUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserResponse) Reset() {
	*x = DeleteUserResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserResponse) ProtoMessage() {}

func (x *DeleteUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserResponse.ProtoReflect.Descriptor instead.
func (*DeleteUserResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{19}
}

type ListProductsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProductsRequest) Reset() {
	*x = ListProductsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProductsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProductsRequest) ProtoMessage() {}

func (x *ListProductsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProductsRequest.ProtoReflect.Descriptor instead.
func (*ListProductsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{20}
}

func (x *ListProductsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListProductsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListProductsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Products      []*Product             `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProductsResponse) Reset() {
	*x = ListProductsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProductsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProductsResponse) ProtoMessage() {}

func (x *ListProductsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProductsResponse.ProtoReflect.Descriptor instead.
func (*ListProductsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{21}
}

func (x *ListProductsResponse) GetProducts() []*Product {
	if x != nil {
		return x.Products
	}
	return nil
}

func (x *ListProductsResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

type SetProductApprovalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Approved      bool                   `protobuf:"varint,2,opt,name=approved,proto3" json:"approved,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProductApprovalRequest) Reset() {
	*x = SetProductApprovalRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProductApprovalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProductApprovalRequest) ProtoMessage() {}

func (x *SetProductApprovalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProductApprovalRequest.ProtoReflect.Descriptor instead.
func (*SetProductApprovalRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{22}
}

func (x *SetProductApprovalRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *SetProductApprovalRequest) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

type SetProductApprovalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Product       *Product               `protobuf:"bytes,1,opt,name=product,proto3" json:"product,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProductApprovalResponse) Reset() {
	*x = SetProductApprovalResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProductApprovalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProductApprovalResponse) ProtoMessage() {}

func (x *SetProductApprovalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProductApprovalResponse.ProtoReflect.Descriptor instead.
func (*SetProductApprovalResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{23}
}

func (x *SetProductApprovalResponse) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type SetProductStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Active        bool                   `protobuf:"varint,2,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProductStatusRequest) Reset() {
	*x = SetProductStatusRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProductStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProductStatusRequest) ProtoMessage() {}

func (x *SetProductStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProductStatusRequest.ProtoReflect.Descriptor instead.
func (*SetProductStatusRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{24}
}

func (x *SetProductStatusRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *SetProductStatusRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SetProductStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Product       *Product               `protobuf:"bytes,1,opt,name=product,proto3" json:"product,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProductStatusResponse) Reset() {
	*x = SetProductStatusResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProductStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProductStatusResponse) ProtoMessage() {}

func (x *SetProductStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProductStatusResponse.ProtoReflect.Descriptor instead.
func (*SetProductStatusResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{25}
}

func (x *SetProductStatusResponse) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type DeleteProductRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProductRequest) Reset() {
	*x = DeleteProductRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProductRequest) ProtoMessage() {}

func (x *DeleteProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProductRequest.ProtoReflect.Descriptor instead.
func (*DeleteProductRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{26}
}

func (x *DeleteProductRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type DeleteProductResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProductResponse) Reset() {
	*x = DeleteProductResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProductResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProductResponse) ProtoMessage() {}

func (x *DeleteProductResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProductResponse.ProtoReflect.Descriptor instead.
func (*DeleteProductResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{27}
}

type ListBidsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsRequest) Reset() {
	*x = ListBidsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsRequest) ProtoMessage() {}

func (x *ListBidsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsRequest.ProtoReflect.Descriptor instead.
func (*ListBidsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{28}
}

func (x *ListBidsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListBidsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bids          []*Bid                 `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsResponse) Reset() {
	*x = ListBidsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsResponse) ProtoMessage() {}

func (x *ListBidsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsResponse.ProtoReflect.Descriptor instead.
func (*ListBidsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{29}
}

func (x *ListBidsResponse) GetBids() []*Bid {
	if x != nil {
		return x.Bids
	}
	return nil
}

type ListBidsForProductRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsForProductRequest) Reset() {
	*x = ListBidsForProductRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsForProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsForProductRequest) ProtoMessage() {}

func (x *ListBidsForProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsForProductRequest.ProtoReflect.Descriptor instead.
func (*ListBidsForProductRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{30}
}

func (x *ListBidsForProductRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type ListBidsForProductResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bids          []*Bid                 `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsForProductResponse) Reset() {
	*x = ListBidsForProductResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsForProductResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsForProductResponse) ProtoMessage() {}

func (x *ListBidsForProductResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsForProductResponse.ProtoReflect.Descriptor instead.
func (*ListBidsForProductResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{31}
}

func (x *ListBidsForProductResponse) GetBids() []*Bid {
	if x != nil {
		return x.Bids
	}
	return nil
}

type ListShopsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListShopsRequest) Reset() {
	*x = ListShopsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShopsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShopsRequest) ProtoMessage() {}

func (x *ListShopsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShopsRequest.ProtoReflect.Descriptor instead.
func (*ListShopsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{32}
}

func (x *ListShopsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListShopsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListShopsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shops         []*Shop                `protobuf:"bytes,1,rep,name=shops,proto3" json:"shops,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListShopsResponse) Reset() {
	*x = ListShopsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShopsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShopsResponse) ProtoMessage() {}

func (x *ListShopsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShopsResponse.ProtoReflect.Descriptor instead.
func (*ListShopsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{33}
}

func (x *ListShopsResponse) GetShops() []*Shop {
	if x != nil {
		return x.Shops
	}
	return nil
}

func (x *ListShopsResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

type SetShopFeaturedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	Featured      bool                   `protobuf:"varint,2,opt,name=featured,proto3" json:"featured,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetShopFeaturedRequest) Reset() {
	*x = SetShopFeaturedRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetShopFeaturedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetShopFeaturedRequest) ProtoMessage() {}

func (x *SetShopFeaturedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetShopFeaturedRequest.ProtoReflect.Descriptor instead.
func (*SetShopFeaturedRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{34}
}

func (x *SetShopFeaturedRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

func (x *SetShopFeaturedRequest) GetFeatured() bool {
	if x != nil {
		return x.Featured
	}
	return false
}

type SetShopFeaturedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          *Shop                  `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetShopFeaturedResponse) Reset() {
	*x = SetShopFeaturedResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetShopFeaturedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetShopFeaturedResponse) ProtoMessage() {}

func (x *SetShopFeaturedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetShopFeaturedResponse.ProtoReflect.Descriptor instead.
func (*SetShopFeaturedResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{35}
}

func (x *SetShopFeaturedResponse) GetShop() *Shop {
	if x != nil {
		return x.Shop
	}
	return nil
}

type GetDashboardStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDashboardStatsRequest) Reset() {
	*x = GetDashboardStatsRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardStatsRequest) ProtoMessage() {}

func (x *GetDashboardStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardStatsRequest.ProtoReflect.Descriptor instead.
func (*GetDashboardStatsRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{36}
}

type GetDashboardStatsResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TotalUsers       int32                  `protobuf:"varint,1,opt,name=total_users,json=totalUsers,proto3" json:"total_users,omitempty"`
	TotalProducts    int32                  `protobuf:"varint,2,opt,name=total_products,json=totalProducts,proto3" json:"total_products,omitempty"`
	TotalBids        int32                  `protobuf:"varint,3,opt,name=total_bids,json=totalBids,proto3" json:"total_bids,omitempty"`
	PendingApprovals int32                  `protobuf:"varint,4,opt,name=pending_approvals,json=pendingApprovals,proto3" json:"pending_approvals,omitempty"`
	ActiveUsers      int32                  `protobuf:"varint,5,opt,name=active_users,json=activeUsers,proto3" json:"active_users,omitempty"`
	ActiveProducts   int32                  `protobuf:"varint,6,opt,name=active_products,json=activeProducts,proto3" json:"active_products,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetDashboardStatsResponse) Reset() {
	*x = GetDashboardStatsResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardStatsResponse) ProtoMessage() {}

func (x *GetDashboardStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardStatsResponse.ProtoReflect.Descriptor instead.
func (*GetDashboardStatsResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{37}
}

func (x *GetDashboardStatsResponse) GetTotalUsers() int32 {
	if x != nil {
		return x.TotalUsers
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetTotalProducts() int32 {
	if x != nil {
		return x.TotalProducts
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetTotalBids() int32 {
	if x != nil {
		return x.TotalBids
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetPendingApprovals() int32 {
	if x != nil {
		return x.PendingApprovals
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetActiveUsers() int32 {
	if x != nil {
		return x.ActiveUsers
	}
	return 0
}

func (x *GetDashboardStatsResponse) GetActiveProducts() int32 {
	if x != nil {
		return x.ActiveProducts
	}
	return 0
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{38}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Admin         *Admin                 `protobuf:"bytes,1,opt,name=admin,proto3" json:"admin,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_mandi_v1_mandi_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mandi_v1_mandi_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_mandi_v1_mandi_proto_rawDescGZIP(), []int{39}
}

func (x *LoginResponse) GetAdmin() *Admin {
	if x != nil {
		return x.Admin
	}
	return nil
}

var File_mandi_v1_mandi_proto protoreflect.FileDescriptor

const file_mandi_v1_mandi_proto_rawDesc = "" +
	"\n" +
	"\x14mandi/v1/mandi.proto\x12\bmandi.v1\"\xfc\x01\n" +
	"\vMandiReport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06market\x18\x02 \x01(\tR\x06market\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x17\n" +
	"\apdf_url\x18\x05 \x01(\tR\x06pdfUrl\x12!\n" +
	"\fpdf_filename\x18\x06 \x01(\tR\vpdfFilename\x12\x1f\n" +
	"\vtotal_items\x18\a \x01(\x05R\n" +
	"totalItems\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\t \x01(\tR\texpiresAt\"\x80\x03\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12#\n" +
	"\rprofile_image\x18\x05 \x01(\tR\fprofileImage\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\a \x01(\tR\aaddress\x12\x12\n" +
	"\x04cnic\x18\b \x01(\tR\x04cnic\x12\x16\n" +
	"\x06gender\x18\t \x01(\tR\x06gender\x12\x1f\n" +
	"\vis_approved\x18\n" +
	" \x01(\bR\n" +
	"isApproved\x12%\n" +
	"\x0eaverage_rating\x18\v \x01(\x01R\raverageRating\x12#\n" +
	"\rtotal_reviews\x18\f \x01(\x05R\ftotalReviews\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xa1\x03\n" +
	"\aProduct\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tseller_id\x18\x02 \x01(\tR\bsellerId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x14\n" +
	"\x05price\x18\x05 \x01(\x01R\x05price\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12\x16\n" +
	"\x06images\x18\a \x03(\tR\x06images\x12\x1f\n" +
	"\vseller_name\x18\b \x01(\tR\n" +
	"sellerName\x12\x1b\n" +
	"\tis_active\x18\t \x01(\bR\bisActive\x12\x1f\n" +
	"\vis_approved\x18\n" +
	" \x01(\bR\n" +
	"isApproved\x12%\n" +
	"\x0eaverage_rating\x18\v \x01(\x01R\raverageRating\x12#\n" +
	"\rtotal_reviews\x18\f \x01(\x05R\ftotalReviews\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x83\x02\n" +
	"\x03Bid\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12\x1b\n" +
	"\tbidder_id\x18\x03 \x01(\tR\bbidderId\x12\x1f\n" +
	"\vbidder_name\x18\x04 \x01(\tR\n" +
	"bidderName\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x01R\x06amount\x12\x18\n" +
	"\amessage\x18\x06 \x01(\tR\amessage\x12\x1f\n" +
	"\vis_accepted\x18\a \x01(\bR\n" +
	"isAccepted\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xe2\x02\n" +
	"\x04Shop\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x1d\n" +
	"\n" +
	"logo_image\x18\x06 \x01(\tR\tlogoImage\x12\x1f\n" +
	"\vis_featured\x18\a \x01(\bR\n" +
	"isFeatured\x12\x1b\n" +
	"\tis_active\x18\b \x01(\bR\bisActive\x12%\n" +
	"\x0eaverage_rating\x18\t \x01(\x01R\raverageRating\x12#\n" +
	"\rtotal_reviews\x18\n" +
	" \x01(\x05R\ftotalReviews\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xb0\x01\n" +
	"\x05Admin\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"last_login\x18\a \x01(\tR\tlastLogin\"5\n" +
	"\x18ParseMandiMessageRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\"\x8e\x01\n" +
	"\x19ParseMandiMessageResponse\x12-\n" +
	"\x06report\x18\x01 \x01(\v2\x15.mandi.v1.MandiReportR\x06report\x12\x1d\n" +
	"\n" +
	"public_url\x18\x02 \x01(\tR\tpublicUrl\x12#\n" +
	"\rpresigned_url\x18\x03 \x01(\tR\fpresignedUrl\"*\n" +
	"\x12ListReportsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"F\n" +
	"\x13ListReportsResponse\x12/\n" +
	"\areports\x18\x01 \x03(\v2\x15.mandi.v1.MandiReportR\areports\",\n" +
	"\x14ExportReportsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"M\n" +
	"\x15ExportReportsResponse\x12\x18\n" +
	"\aarchive\x18\x01 \x01(\fR\aarchive\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"G\n" +
	"\x10ListUsersRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"T\n" +
	"\x11ListUsersResponse\x12$\n" +
	"\x05users\x18\x01 \x03(\v2\x0e.mandi.v1.UserR\x05users\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\",\n" +
	"\x16ListUsersByRoleRequest\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\"?\n" +
	"\x17ListUsersByRoleResponse\x12$\n" +
	"\x05users\x18\x01 \x03(\v2\x0e.mandi.v1.UserR\x05users\"M\n" +
	"\x16SetUserApprovalRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bapproved\x18\x02 \x01(\bR\bapproved\"=\n" +
	"\x17SetUserApprovalResponse\x12\"\n" +
	"\x04user\x18\x01 \x01(\v2\x0e.mandi.v1.UserR\x04user\",\n" +
	"\x11DeleteUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\x14\n" +
	"\x12DeleteUserResponse\"J\n" +
	"\x13ListProductsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"`\n" +
	"\x14ListProductsResponse\x12-\n" +
	"\bproducts\x18\x01 \x03(\v2\x11.mandi.v1.ProductR\bproducts\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\"V\n" +
	"\x19SetProductApprovalRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x1a\n" +
	"\bapproved\x18\x02 \x01(\bR\bapproved\"I\n" +
	"\x1aSetProductApprovalResponse\x12+\n" +
	"\aproduct\x18\x01 \x01(\v2\x11.mandi.v1.ProductR\aproduct\"P\n" +
	"\x17SetProductStatusRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x16\n" +
	"\x06active\x18\x02 \x01(\bR\x06active\"G\n" +
	"\x18SetProductStatusResponse\x12+\n" +
	"\aproduct\x18\x01 \x01(\v2\x11.mandi.v1.ProductR\aproduct\"5\n" +
	"\x14DeleteProductRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"\x17\n" +
	"\x15DeleteProductResponse\"'\n" +
	"\x0fListBidsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"5\n" +
	"\x10ListBidsResponse\x12!\n" +
	"\x04bids\x18\x01 \x03(\v2\r.mandi.v1.BidR\x04bids\":\n" +
	"\x19ListBidsForProductRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"?\n" +
	"\x1aListBidsForProductResponse\x12!\n" +
	"\x04bids\x18\x01 \x03(\v2\r.mandi.v1.BidR\x04bids\"G\n" +
	"\x10ListShopsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"T\n" +
	"\x11ListShopsResponse\x12$\n" +
	"\x05shops\x18\x01 \x03(\v2\x0e.mandi.v1.ShopR\x05shops\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\"M\n" +
	"\x16SetShopFeaturedRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\x12\x1a\n" +
	"\bfeatured\x18\x02 \x01(\bR\bfeatured\"=\n" +
	"\x17SetShopFeaturedResponse\x12\"\n" +
	"\x04shop\x18\x01 \x01(\v2\x0e.mandi.v1.ShopR\x04shop\"\x1a\n" +
	"\x18GetDashboardStatsRequest\"\xfb\x01\n" +
	"\x19GetDashboardStatsResponse\x12\x1f\n" +
	"\vtotal_users\x18\x01 \x01(\x05R\n" +
	"totalUsers\x12%\n" +
	"\x0etotal_products\x18\x02 \x01(\x05R\rtotalProducts\x12\x1d\n" +
	"\n" +
	"total_bids\x18\x03 \x01(\x05R\ttotalBids\x12+\n" +
	"\x11pending_approvals\x18\x04 \x01(\x05R\x10pendingApprovals\x12!\n" +
	"\factive_users\x18\x05 \x01(\x05R\vactiveUsers\x12'\n" +
	"\x0factive_products\x18\x06 \x01(\x05R\x0eactiveProducts\"@\n" +
	"\fLoginRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"6\n" +
	"\rLoginResponse\x12%\n" +
	"\x05admin\x18\x01 \x01(\v2\x0f.mandi.v1.AdminR\x05admin2\x8c\x02\n" +
	"\x0eReportsService\x12\\\n" +
	"\x11ParseMandiMessage\x12\".mandi.v1.ParseMandiMessageRequest\x1a#.mandi.v1.ParseMandiMessageResponse\x12J\n" +
	"\vListReports\x12\x1c.mandi.v1.ListReportsRequest\x1a\x1d.mandi.v1.ListReportsResponse\x12P\n" +
	"\rExportReports\x12\x1e.mandi.v1.ExportReportsRequest\x1a\x1f.mandi.v1.ExportReportsResponse2\xcd\x02\n" +
	"\fUsersService\x12D\n" +
	"\tListUsers\x12\x1a.mandi.v1.ListUsersRequest\x1a\x1b.mandi.v1.ListUsersResponse\x12V\n" +
	"\x0fListUsersByRole\x12 .mandi.v1.ListUsersByRoleRequest\x1a!.mandi.v1.ListUsersByRoleResponse\x12V\n" +
	"\x0fSetUserApproval\x12 .mandi.v1.SetUserApprovalRequest\x1a!.mandi.v1.SetUserApprovalResponse\x12G\n" +
	"\n" +
	"DeleteUser\x12\x1b.mandi.v1.DeleteUserRequest\x1a\x1c.mandi.v1.DeleteUserResponse2\xee\x02\n" +
	"\x0fProductsService\x12M\n" +
	"\fListProducts\x12\x1d.mandi.v1.ListProductsRequest\x1a\x1e.mandi.v1.ListProductsResponse\x12_\n" +
	"\x12SetProductApproval\x12#.mandi.v1.SetProductApprovalRequest\x1a$.mandi.v1.SetProductApprovalResponse\x12Y\n" +
	"\x10SetProductStatus\x12!.mandi.v1.SetProductStatusRequest\x1a\".mandi.v1.SetProductStatusResponse\x12P\n" +
	"\rDeleteProduct\x12\x1e.mandi.v1.DeleteProductRequest\x1a\x1f.mandi.v1.DeleteProductResponse2\xb1\x01\n" +
	"\vBidsService\x12A\n" +
	"\bListBids\x12\x19.mandi.v1.ListBidsRequest\x1a\x1a.mandi.v1.ListBidsResponse\x12_\n" +
	"\x12ListBidsForProduct\x12#.mandi.v1.ListBidsForProductRequest\x1a$.mandi.v1.ListBidsForProductResponse2\xac\x01\n" +
	"\fShopsService\x12D\n" +
	"\tListShops\x12\x1a.mandi.v1.ListShopsRequest\x1a\x1b.mandi.v1.ListShopsResponse\x12V\n" +
	"\x0fSetShopFeatured\x12 .mandi.v1.SetShopFeaturedRequest\x1a!.mandi.v1.SetShopFeaturedResponse2p\n" +
	"\x10DashboardService\x12\\\n" +
	"\x11GetDashboardStats\x12\".mandi.v1.GetDashboardStatsRequest\x1a#.mandi.v1.GetDashboardStatsResponse2G\n" +
	"\vAuthService\x128\n" +
	"\x05Login\x12\x16.mandi.v1.LoginRequest\x1a\x17.mandi.v1.LoginResponseBAZ?github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1;mandiv1b\x06proto3"

var (
	file_mandi_v1_mandi_proto_rawDescOnce sync.Once
	file_mandi_v1_mandi_proto_rawDescData []byte
)

func file_mandi_v1_mandi_proto_rawDescGZIP() []byte {
	file_mandi_v1_mandi_proto_rawDescOnce.Do(func() {
		file_mandi_v1_mandi_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mandi_v1_mandi_proto_rawDesc), len(file_mandi_v1_mandi_proto_rawDesc)))
	})
	return file_mandi_v1_mandi_proto_rawDescData
}

var file_mandi_v1_mandi_proto_msgTypes = make([]protoimpl.MessageInfo, 40)
var file_mandi_v1_mandi_proto_goTypes = []any{
	(*MandiReport)(nil),                // 0: mandi.v1.MandiReport
	(*User)(nil),                       // 1: mandi.v1.User
	(*Product)(nil),                    // 2: mandi.v1.Product
	(*Bid)(nil),                        // 3: mandi.v1.Bid
	(*Shop)(nil),                       // 4: mandi.v1.Shop
	(*Admin)(nil),                      // 5: mandi.v1.Admin
	(*ParseMandiMessageRequest)(nil),   // 6: mandi.v1.ParseMandiMessageRequest
	(*ParseMandiMessageResponse)(nil),  // 7: mandi.v1.ParseMandiMessageResponse
	(*ListReportsRequest)(nil),         // 8: mandi.v1.ListReportsRequest
	(*ListReportsResponse)(nil),        // 9: mandi.v1.ListReportsResponse
	(*ExportReportsRequest)(nil),       // 10: mandi.v1.ExportReportsRequest
	(*ExportReportsResponse)(nil),      // 11: mandi.v1.ExportReportsResponse
	(*ListUsersRequest)(nil),           // 12: mandi.v1.ListUsersRequest
	(*ListUsersResponse)(nil),          // 13: mandi.v1.ListUsersResponse
	(*ListUsersByRoleRequest)(nil),     // 14: mandi.v1.ListUsersByRoleRequest
	(*ListUsersByRoleResponse)(nil),    // 15: mandi.v1.ListUsersByRoleResponse
	(*SetUserApprovalRequest)(nil),     // 16: mandi.v1.SetUserApprovalRequest
	(*SetUserApprovalResponse)(nil),    // 17: mandi.v1.SetUserApprovalResponse
	(*DeleteUserRequest)(nil),          // 18: mandi.v1.DeleteUserRequest
	(*DeleteUserResponse)(nil),         // 19: mandi.v1.DeleteUserResponse
	(*ListProductsRequest)(nil),        // 20: mandi.v1.ListProductsRequest
	(*ListProductsResponse)(nil),       // 21: mandi.v1.ListProductsResponse
	(*SetProductApprovalRequest)(nil),  // 22: mandi.v1.SetProductApprovalRequest
	(*SetProductApprovalResponse)(nil), // 23: mandi.v1.SetProductApprovalResponse
	(*SetProductStatusRequest)(nil),    // 24: mandi.v1.SetProductStatusRequest
	(*SetProductStatusResponse)(nil),   // 25: mandi.v1.SetProductStatusResponse
	(*DeleteProductRequest)(nil),       // 26: mandi.v1.DeleteProductRequest
	(*DeleteProductResponse)(nil),      // 27: mandi.v1.DeleteProductResponse
	(*ListBidsRequest)(nil),            // 28: mandi.v1.ListBidsRequest
	(*ListBidsResponse)(nil),           // 29: mandi.v1.ListBidsResponse
	(*ListBidsForProductRequest)(nil),  // 30: mandi.v1.ListBidsForProductRequest
	(*ListBidsForProductResponse)(nil), // 31: mandi.v1.ListBidsForProductResponse
	(*ListShopsRequest)(nil),           // 32: mandi.v1.ListShopsRequest
	(*ListShopsResponse)(nil),          // 33: mandi.v1.ListShopsResponse
	(*SetShopFeaturedRequest)(nil),     // 34: mandi.v1.SetShopFeaturedRequest
	(*SetShopFeaturedResponse)(nil),    // 35: mandi.v1.SetShopFeaturedResponse
	(*GetDashboardStatsRequest)(nil),   // 36: mandi.v1.GetDashboardStatsRequest
	(*GetDashboardStatsResponse)(nil),  // 37: mandi.v1.GetDashboardStatsResponse
	(*LoginRequest)(nil),               // 38: mandi.v1.LoginRequest
	(*LoginResponse)(nil),              // 39: mandi.v1.LoginResponse
}
var file_mandi_v1_mandi_proto_depIdxs = []int32{
	0,  // 0: mandi.v1.ParseMandiMessageResponse.report:type_name -> mandi.v1.MandiReport
	0,  // 1: mandi.v1.ListReportsResponse.reports:type_name -> mandi.v1.MandiReport
	1,  // 2: mandi.v1.ListUsersResponse.users:type_name -> mandi.v1.User
	1,  // 3: mandi.v1.ListUsersByRoleResponse.users:type_name -> mandi.v1.User
	1,  // 4: mandi.v1.SetUserApprovalResponse.user:type_name -> mandi.v1.User
	2,  // 5: mandi.v1.ListProductsResponse.products:type_name -> mandi.v1.Product
	2,  // 6: mandi.v1.SetProductApprovalResponse.product:type_name -> mandi.v1.Product
	2,  // 7: mandi.v1.SetProductStatusResponse.product:type_name -> mandi.v1.Product
	3,  // 8: mandi.v1.ListBidsResponse.bids:type_name -> mandi.v1.Bid
	3,  // 9: mandi.v1.ListBidsForProductResponse.bids:type_name -> mandi.v1.Bid
	4,  // 10: mandi.v1.ListShopsResponse.shops:type_name -> mandi.v1.Shop
	4,  // 11: mandi.v1.SetShopFeaturedResponse.shop:type_name -> mandi.v1.Shop
	5,  // 12: mandi.v1.LoginResponse.admin:type_name -> mandi.v1.Admin
	6,  // 13: mandi.v1.ReportsService.ParseMandiMessage:input_type -> mandi.v1.ParseMandiMessageRequest
	8,  // 14: mandi.v1.ReportsService.ListReports:input_type -> mandi.v1.ListReportsRequest
	10, // 15: mandi.v1.ReportsService.ExportReports:input_type -> mandi.v1.ExportReportsRequest
	12, // 16: mandi.v1.UsersService.ListUsers:input_type -> mandi.v1.ListUsersRequest
	14, // 17: mandi.v1.UsersService.ListUsersByRole:input_type -> mandi.v1.ListUsersByRoleRequest
	16, // 18: mandi.v1.UsersService.SetUserApproval:input_type -> mandi.v1.SetUserApprovalRequest
	18, // 19: mandi.v1.UsersService.DeleteUser:input_type -> mandi.v1.DeleteUserRequest
	20, // 20: mandi.v1.ProductsService.ListProducts:input_type -> mandi.v1.ListProductsRequest
	22, // 21: mandi.v1.ProductsService.SetProductApproval:input_type -> mandi.v1.SetProductApprovalRequest
	24, // 22: mandi.v1.ProductsService.SetProductStatus:input_type -> mandi.v1.SetProductStatusRequest
	26, // 23: mandi.v1.ProductsService.DeleteProduct:input_type -> mandi.v1.DeleteProductRequest
	28, // 24: mandi.v1.BidsService.ListBids:input_type -> mandi.v1.ListBidsRequest
	30, // 25: mandi.v1.BidsService.ListBidsForProduct:input_type -> mandi.v1.ListBidsForProductRequest
	32, // 26: mandi.v1.ShopsService.ListShops:input_type -> mandi.v1.ListShopsRequest
	34, // 27: mandi.v1.ShopsService.SetShopFeatured:input_type -> mandi.v1.SetShopFeaturedRequest
	36, // 28: mandi.v1.DashboardService.GetDashboardStats:input_type -> mandi.v1.GetDashboardStatsRequest
	38, // 29: mandi.v1.AuthService.Login:input_type -> mandi.v1.LoginRequest
	7,  // 30: mandi.v1.ReportsService.ParseMandiMessage:output_type -> mandi.v1.ParseMandiMessageResponse
	9,  // 31: mandi.v1.ReportsService.ListReports:output_type -> mandi.v1.ListReportsResponse
	11, // 32: mandi.v1.ReportsService.ExportReports:output_type -> mandi.v1.ExportReportsResponse
	13, // 33: mandi.v1.UsersService.ListUsers:output_type -> mandi.v1.ListUsersResponse
	15, // 34: mandi.v1.UsersService.ListUsersByRole:output_type -> mandi.v1.ListUsersByRoleResponse
	17, // 35: mandi.v1.UsersService.SetUserApproval:output_type -> mandi.v1.SetUserApprovalResponse
	19, // 36: mandi.v1.UsersService.DeleteUser:output_type -> mandi.v1.DeleteUserResponse
	21, // 37: mandi.v1.ProductsService.ListProducts:output_type -> mandi.v1.ListProductsResponse
	23, // 38: mandi.v1.ProductsService.SetProductApproval:output_type -> mandi.v1.SetProductApprovalResponse
	25, // 39: mandi.v1.ProductsService.SetProductStatus:output_type -> mandi.v1.SetProductStatusResponse
	27, // 40: mandi.v1.ProductsService.DeleteProduct:output_type -> mandi.v1.DeleteProductResponse
	29, // 41: mandi.v1.BidsService.ListBids:output_type -> mandi.v1.ListBidsResponse
	31, // 42: mandi.v1.BidsService.ListBidsForProduct:output_type -> mandi.v1.ListBidsForProductResponse
	33, // 43: mandi.v1.ShopsService.ListShops:output_type -> mandi.v1.ListShopsResponse
	35, // 44: mandi.v1.ShopsService.SetShopFeatured:output_type -> mandi.v1.SetShopFeaturedResponse
	37, // 45: mandi.v1.DashboardService.GetDashboardStats:output_type -> mandi.v1.GetDashboardStatsResponse
	39, // 46: mandi.v1.AuthService.Login:output_type -> mandi.v1.LoginResponse
	30, // [30:47] is the sub-list for method output_type
	13, // [13:30] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_mandi_v1_mandi_proto_init() }
func file_mandi_v1_mandi_proto_init() {
	if File_mandi_v1_mandi_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mandi_v1_mandi_proto_rawDesc), len(file_mandi_v1_mandi_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   40,
			NumExtensions: 0,
			NumServices:   7,
		},
		GoTypes:           file_mandi_v1_mandi_proto_goTypes,
		DependencyIndexes: file_mandi_v1_mandi_proto_depIdxs,
		MessageInfos:      file_mandi_v1_mandi_proto_msgTypes,
	}.Build()
	File_mandi_v1_mandi_proto = out.File
	file_mandi_v1_mandi_proto_goTypes = nil
	file_mandi_v1_mandi_proto_depIdxs = nil
}
