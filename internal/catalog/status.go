package catalog

// Status vocabularies owned by the backend services. Values outside the
// known set still round-trip as raw strings; they must render and filter
// without crashing the view.

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "AVAILABLE"
	ProductOutOfStock  ProductStatus = "OUT_OF_STOCK"
	ProductOnPromotion ProductStatus = "ON_PROMOTION"
	ProductDisabled    ProductStatus = "DISABLED"
)

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderInTransit  OrderStatus = "IN_TRANSIT"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// PaymentStatuses lists the mutually exclusive, jointly exhaustive statuses
// the payment service partitions its listing endpoint by.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentSuccess, PaymentFailed}

type PaymentMethod string

const (
	MethodMobileMoney PaymentMethod = "MOBILE_MONEY"
	MethodCard        PaymentMethod = "CARD"
	MethodCash        PaymentMethod = "CASH"
	MethodTransfer    PaymentMethod = "TRANSFER"
)
