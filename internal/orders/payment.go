package orders

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
)

// PaymentMethods is the ordered set offered at checkout.
var PaymentMethods = []PaymentMethod{PaymentCOD, PaymentUPI, PaymentCard}

var paymentLabels = map[PaymentMethod]string{
	PaymentCOD:  "Cash on Delivery",
	PaymentUPI:  "UPI",
	PaymentCard: "Credit / Debit Card",
}

func ValidPayment(p PaymentMethod) bool {
	_, ok := paymentLabels[p]
	return ok
}

func (p PaymentMethod) Label() string {
	if l, ok := paymentLabels[p]; ok {
		return l
	}
	return string(p)
}
