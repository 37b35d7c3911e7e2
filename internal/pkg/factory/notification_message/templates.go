package notification_message

import "text/template"

type messageTemplate struct {
	subject string
	body    *template.Template
}

func newTemplate(name, subject, body string) messageTemplate {
	return messageTemplate{
		subject: subject,
		body:    template.Must(template.New(name).Option("missingkey=error").Parse(body)),
	}
}

var (
	orderCreatedTemplate = newTemplate("order_created",
		"Order received",
		`Your order {{.OrderID}} for {{.TotalPrice}} has been placed.
{{if eq .PaymentMethod "gateway"}}We are waiting for the payment confirmation.{{else}}You will pay on delivery.{{end}}`)

	orderProcessingTemplate = newTemplate("order_processing",
		"Order is being prepared",
		`Your order {{.OrderID}} is being prepared for shipment.`)

	orderShippedTemplate = newTemplate("order_shipped",
		"Order shipped",
		`Your order {{.OrderID}} has been handed over to the carrier.`)

	orderDeliveredTemplate = newTemplate("order_delivered",
		"Order delivered",
		`Your order {{.OrderID}} has been delivered. Total paid: {{.TotalPrice}}.`)

	orderCancelledTemplate = newTemplate("order_cancelled",
		"Order cancelled",
		`Your order {{.OrderID}} has been cancelled.
{{if eq .PaymentStatus "completed"}}The payment of {{.TotalPrice}} will be refunded.{{else}}No payment was taken.{{end}}`)

	paymentCompletedTemplate = newTemplate("payment_completed",
		"Payment received",
		`We have received {{.TotalPrice}} for your order {{.OrderID}}.`)

	paymentFailedTemplate = newTemplate("payment_failed",
		"Payment failed",
		`The payment for your order {{.OrderID}} did not go through.`)

	paymentPendingTemplate = newTemplate("payment_pending",
		"Payment awaiting",
		`The payment for your order {{.OrderID}} is awaiting confirmation again.`)
)
