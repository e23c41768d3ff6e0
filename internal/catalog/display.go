package catalog

// Presentation metadata for the console UI. Kept out of the aggregation and
// filtering code on purpose: those operate on the raw status values.

type StatusMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

var orderStatusMeta = map[OrderStatus]StatusMeta{
	OrderPending:    {Label: "Pending", Icon: "⏳", Color: "#ffc107"},
	OrderProcessing: {Label: "Processing", Icon: "📦", Color: "#17a2b8"},
	OrderInTransit:  {Label: "In Transit", Icon: "🚚", Color: "#007bff"},
	OrderDelivered:  {Label: "Delivered", Icon: "✅", Color: "#28a745"},
	OrderCancelled:  {Label: "Cancelled", Icon: "❌", Color: "#dc3545"},
}

var paymentStatusMeta = map[PaymentStatus]StatusMeta{
	PaymentPending: {Label: "Pending", Icon: "⏳", Color: "#ffc107"},
	PaymentSuccess: {Label: "Succeeded", Icon: "✅", Color: "#28a745"},
	PaymentFailed:  {Label: "Failed", Icon: "❌", Color: "#dc3545"},
}

var paymentMethodMeta = map[PaymentMethod]StatusMeta{
	MethodMobileMoney: {Label: "Mobile Money", Icon: "📱"},
	MethodCard:        {Label: "Card", Icon: "💳"},
	MethodCash:        {Label: "Cash", Icon: "💵"},
	MethodTransfer:    {Label: "Bank Transfer", Icon: "🏦"},
}

var productStatusMeta = map[ProductStatus]StatusMeta{
	ProductAvailable:   {Label: "Available", Color: "#28a745"},
	ProductOutOfStock:  {Label: "Out of Stock", Color: "#dc3545"},
	ProductOnPromotion: {Label: "On Promotion", Color: "#fd7e14"},
	ProductDisabled:    {Label: "Disabled", Color: "#6c757d"},
}

// Meta lookups fall back to the raw value as label so an unknown status
// renders instead of breaking the view.

func (s OrderStatus) Meta() StatusMeta {
	if m, ok := orderStatusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}

func (s PaymentStatus) Meta() StatusMeta {
	if m, ok := paymentStatusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}

func (m PaymentMethod) Meta() StatusMeta {
	if meta, ok := paymentMethodMeta[m]; ok {
		return meta
	}
	return StatusMeta{Label: string(m)}
}

func (s ProductStatus) Meta() StatusMeta {
	if m, ok := productStatusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}
