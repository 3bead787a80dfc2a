package models

// OrderStatus is the server-driven lifecycle state of an order. Transitions
// happen server-side; the client only reads the status and may cancel while
// it is non-terminal.
type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "PEDIDO_EN_PROCESO"
	OrderStatusProcessing OrderStatus = "EN_PROCESO"
	OrderStatusPreparing  OrderStatus = "EN_PREPARACION"
	OrderStatusDelivered  OrderStatus = "PEDIDO_ENTREGADO"
	OrderStatusCancelled  OrderStatus = "CANCELADO"
)

// IsTerminal reports whether the order can no longer change.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderDetail is one line of a remote order, mirroring a cart line.
type OrderDetail struct {
	ID            int      `json:"id"`
	IDMenu        int      `json:"idMenu"`
	IDCommerce    int      `json:"idCommerce"`
	Quantity      int      `json:"quantity"`
	Observaciones []string `json:"observaciones"`
}

// OrderAddress is the delivery address snapshot embedded in an order.
type OrderAddress struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Streets   string `json:"streets"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// OrderPayment is one payment attempt recorded on an order.
type OrderPayment struct {
	ID               int      `json:"id"`
	Price            float64  `json:"price"`
	PriceFee         *float64 `json:"priceFee"`
	PriceDelivery    *float64 `json:"priceDelivery"`
	PriceTransaction *float64 `json:"priceTransaction"`
	Details          string   `json:"details"`
	PaymentMethod    *string  `json:"paymentMethod"`
	IDUser           int      `json:"idUser"`
	IDCommerce       int      `json:"idCommerce"`
	PaymentLink      *string  `json:"paymentLink"`
	PaymentType      string   `json:"paymentType"`
	PaymentStatus    string   `json:"paymentStatus"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// Order is a server-side order resource. While the cart is open it acts as
// the remote draft the client keeps in sync with local cart mutations.
type Order struct {
	ID              int            `json:"id"`
	Total           float64        `json:"total"`
	IDCustomer      int            `json:"idCustomer"`
	DeliveryName    string         `json:"deliveryName"`
	Delivery        bool           `json:"delivery"`
	DeliveryTime    string         `json:"deliveryTime"`
	Modified        bool           `json:"modified"`
	CostDelivery    float64        `json:"costDelivery"`
	CostFee         float64        `json:"costFee"`
	DeliveryAddress OrderAddress   `json:"deliveryAddress"`
	OrderStatus     OrderStatus    `json:"orderStatus"`
	OrderPayment    []OrderPayment `json:"orderPayment"`
	DetailsOrder    []OrderDetail  `json:"detailsOrder"`
}

// TotalItems returns the summed quantity over all order lines.
func (o Order) TotalItems() int {
	total := 0
	for _, detail := range o.DetailsOrder {
		total += detail.Quantity
	}
	return total
}

// LatestPayment returns the most recent payment attempt, or nil.
func (o Order) LatestPayment() *OrderPayment {
	if len(o.OrderPayment) == 0 {
		return nil
	}
	return &o.OrderPayment[len(o.OrderPayment)-1]
}

// OrderPage is the paginated shape of the purchase-order listing.
type OrderPage struct {
	Content       []Order `json:"content"`
	TotalElements int     `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

// OrderRequest is one menu line submitted when creating or updating an
// order.
type OrderRequest struct {
	IDMenu        int      `json:"idMenu"`
	Quantity      int      `json:"quantity"`
	Observaciones []string `json:"observaciones"`
}

// CreateOrderBody is the payload of create-order-add-menus. The same
// endpoint both creates a draft order (IDOrder zero) and replaces the line
// set of an existing one (IDOrder set).
type CreateOrderBody struct {
	IDCommerce         int            `json:"idCommerce" validate:"required"`
	AddProduct         bool           `json:"addProduct"`
	UsePositiveBalance bool           `json:"usePositiveBalance"`
	Delivery           bool           `json:"delivery"`
	Floor              string         `json:"floor"`
	Reference          string         `json:"reference"`
	IDOrder            int            `json:"idOrder,omitempty"`
	IDDeliveryAddress  int            `json:"idDeliveryAddress" validate:"required"`
	OrderRequests      []OrderRequest `json:"orderRequests" validate:"required,min=1,dive"`
}

// PaymentOrder is the result of initiating payment for an order. A nil
// PaymentLink means the order was confirmed for cash on delivery; otherwise
// the link must be opened in an external checkout flow.
type PaymentOrder struct {
	ID            int     `json:"id"`
	Details       string  `json:"details"`
	IDCommerce    int     `json:"idCommerce"`
	IDUser        int     `json:"idUser"`
	PaymentLink   *string `json:"paymentLink"`
	PaymentStatus string  `json:"paymentStatus"`
	PriceDelivery float64 `json:"priceDelivery"`
	PriceFee      float64 `json:"priceFee"`
	PriceMenu     float64 `json:"priceMenu"`
	PriceTotal    float64 `json:"priceTotal"`
}

// IsCash reports whether the payment was confirmed without an external
// checkout link.
func (p PaymentOrder) IsCash() bool {
	return p.PaymentLink == nil
}

// CancelOrderResponse is the confirmation body of delete-order.
type CancelOrderResponse struct {
	Description string `json:"description"`
}
