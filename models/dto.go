package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AddCartLineRequest carries a validated candidate line. Quantity and price
// are checked here because the cart store itself trusts its callers.
type AddCartLineRequest struct {
	ID        string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Image     string  `json:"image"`
}

type UpdateQuantityRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// LineKeyRequest addresses an existing line by its natural key.
type LineKeyRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Size string `json:"size"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Description string   `json:"description" form:"description" binding:"required"`
	CategoryID  int      `json:"category_id" form:"category_id" binding:"required"`
	Price       float64  `json:"price" form:"price" binding:"required,gt=0"`
	Sizes       []string `json:"sizes" form:"sizes"`
	ImageURL    string   `json:"image_url" form:"image_url"`
	IsActive    bool     `json:"is_active" form:"is_active"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	CategoryID  int      `json:"category_id" form:"category_id"`
	Price       float64  `json:"price" form:"price"`
	Sizes       []string `json:"sizes" form:"sizes"`
	ImageURL    string   `json:"image_url" form:"image_url"`
	IsActive    bool     `json:"is_active" form:"is_active"`
}

type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}

type FavoriteRequest struct {
	ID string `json:"id" binding:"required"`
}
