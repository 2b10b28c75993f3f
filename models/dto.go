package models

type RegisterRequest struct {
	Email       string `json:"email" form:"email" binding:"required,email"`
	Password    string `json:"password" form:"password" binding:"required"`
	DisplayName string `json:"display_name" form:"display_name" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName *string          `json:"display_name" binding:"omitempty,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,max=30"`
	PhotoURL    *string          `json:"photo_url" binding:"omitempty,url"`
	Preferences *UserPreferences `json:"preferences"`
}

type UpdateUserRequest struct {
	Disabled *bool `json:"disabled"`
	IsAdmin  *bool `json:"is_admin"`
}

type ProductRequest struct {
	Name              string          `json:"name" validate:"required,min=2,max=200"`
	Description       string          `json:"description" validate:"max=5000"`
	ShortDescription  string          `json:"short_description" validate:"max=300"`
	Price             float64         `json:"price" validate:"gte=0"`
	Currency          string          `json:"currency" validate:"omitempty,len=3"`
	CategoryID        string          `json:"category_id" validate:"required"`
	Images            []string        `json:"images" validate:"dive,url"`
	ThumbnailURL      string          `json:"thumbnail_url" validate:"omitempty,url"`
	AvailableQuantity int             `json:"available_quantity" validate:"gte=0"`
	Metadata          ProductMetadata `json:"metadata"`
	Tags              []string        `json:"tags" validate:"dive,max=50"`
	Featured          bool            `json:"featured"`
	IsActive          *bool           `json:"is_active"`
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Slug        string  `json:"slug" validate:"omitempty,max=120"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	ParentID    *string `json:"parent_id"`
	Order       int     `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

type CouponRequest struct {
	Code         string     `json:"code" binding:"required,min=3,max=40"`
	Discount     float64    `json:"discount" binding:"gt=0"`
	Type         CouponType `json:"type" binding:"required,oneof=percentage fixed"`
	ExpiresAt    *string    `json:"expires_at" binding:"omitempty"`
	MinCartValue *float64   `json:"min_cart_value" binding:"omitempty,gte=0"`
	UsageLimit   *int       `json:"usage_limit" binding:"omitempty,gte=1"`
	OnePerUser   bool       `json:"one_per_user"`
}

type AddCartItemRequest struct {
	ProductID  string            `json:"product_id" binding:"required"`
	Quantity   int               `json:"quantity" binding:"omitempty,gte=1"`
	Attributes map[string]string `json:"attributes"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CheckoutPreviewRequest struct {
	ShippingAddress Address        `json:"shipping_address" binding:"required"`
	BillingAddress  *Address       `json:"billing_address"`
	ShippingMethod  ShippingMethod `json:"shipping_method" binding:"required,oneof=standard express pickup"`
	PaymentMethod   PaymentMethod  `json:"payment_method" binding:"required,oneof=credit_card bank_transfer paypal stripe cash_on_delivery"`
	Notes           string         `json:"notes" binding:"max=1000"`
	GiftMessage     string         `json:"gift_message" binding:"max=500"`
}
