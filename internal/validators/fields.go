package validators

// Field names, as they appear in the JSON bodies. They are used both in
// [FieldError] and to scope validation.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCustomer    = "customer"
	FieldOrderNumber = "orderNumber"
	FieldTotalAmount = "totalAmount"
	FieldStatus      = "status"
	FieldPrice       = "price"
)

func selectFields(requested []string, defaults ...string) []string {
	if len(requested) == 0 {
		return defaults
	}
	return requested
}
