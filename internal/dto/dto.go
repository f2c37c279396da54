package dto

import "github.com/shopspring/decimal"

type CartItem struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

// CheckoutRequest is shared by the cash order and card checkout endpoints.
// ShippingAddress is free-form snapshot data; only productId/qty are
// validated.
type CheckoutRequest struct {
	Items           []CartItem        `json:"items"`
	ShippingAddress map[string]string `json:"shippingAddress"`
	Phone           string            `json:"phone"`
}

type CashOrderResponse struct {
	OrderID uint `json:"orderId"`
}

type CardCheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
	OrderID   uint   `json:"orderId"`
}

// VerifyResponse reports checkout-session verification. OK=false with a
// PaymentStatus means the session is not completed yet; it is not an error.
type VerifyResponse struct {
	OK            bool   `json:"ok"`
	OrderID       uint   `json:"orderId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     string          `json:"created_at"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID            uint              `json:"id"`
	Email         string            `json:"email"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Phone         string            `json:"phone"`
	Role          string            `json:"role"`
	LoyaltyPoints int               `json:"loyaltyPoints"`
	ReferralCode  string            `json:"referralCode"`
	Favorites     []string          `json:"favorites"`
	Preferences   map[string]string `json:"preferences"`
	Permissions   map[string]map[string]bool `json:"adminPermissions"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName   *string            `json:"firstName"`
	LastName    *string            `json:"lastName"`
	Phone       *string            `json:"phone"`
	Favorites   []string           `json:"favorites"`
	Preferences map[string]string  `json:"preferences"`
}

type CreateBookingRequest struct {
	ServiceID uint   `json:"serviceId"`
	StaffID   *uint  `json:"staffId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

type BookingFeedbackRequest struct {
	Rating   *int   `json:"rating"`
	Feedback string `json:"feedback"`
}

type ProductRequest struct {
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	Price         *decimal.Decimal     `json:"price"`
	OriginalPrice *decimal.Decimal     `json:"originalPrice"`
	Stock         int                  `json:"stock"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"imageUrl"`
	Rating        float64              `json:"rating"`
	Reviews       int                  `json:"reviews"`
	IsActive      *bool                `json:"isActive"`
}

type ServiceRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Duration    int              `json:"duration"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
}

type StaffRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Availability string `json:"availability"`
	ImageURL     string `json:"imageUrl"`
}

type ClientRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Bookings      int    `json:"bookings"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

type UpdatePermissionsRequest struct {
	Permissions map[string]map[string]bool `json:"permissions"`
}
