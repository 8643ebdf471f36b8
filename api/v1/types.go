package v1

// Error is the body of every non-2xx JSON response.
type Error struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  string `json:"user"`
	Role  string `json:"role"`
}

type Warehouse struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	ModifiedBy string `json:"modifiedBy"`
}

// WarehouseWrite is the body of warehouse create and rename requests.
type WarehouseWrite struct {
	Name string `json:"name"`
}

type WarehouseNames struct {
	Names []string `json:"names"`
}

type NextWarehouseID struct {
	Id string `json:"id"`
}

type Product struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    int64  `json:"quantity"`
	Department  string `json:"department"`
	WarehouseId string `json:"warehouseId"`
	Warehouse   string `json:"warehouse"`
	CreatedAt   string `json:"createdAt"`
	ModifiedAt  string `json:"modifiedAt"`
	ModifiedBy  string `json:"modifiedBy"`
}

// ProductWrite carries price and quantity as text; they are parsed by the store.
// The warehouse may be given by id or by name.
type ProductWrite struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Department  string `json:"department"`
	Warehouse   string `json:"warehouse"`
	WarehouseId string `json:"warehouseId"`
}

type ProductListResponse struct {
	Products  []Product `json:"products"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
}
