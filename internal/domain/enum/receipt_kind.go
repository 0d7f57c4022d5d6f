package enum

// ReceiptKind distinguishes where a printed receipt is headed.
type ReceiptKind string

const (
	// ReceiptKindFrontDesk is the customer-facing payment receipt; it only
	// prints at the designated front-desk printer.
	ReceiptKindFrontDesk ReceiptKind = "front_desk"
	// ReceiptKindKitchen is the prep slip; it prints at every kitchen
	// printer serving the order table's floor.
	ReceiptKindKitchen ReceiptKind = "kitchen"
)
