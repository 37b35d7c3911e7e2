package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"storefront/internal/generated/dto"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	colorBlue   = lipgloss.Color("12")
	colorCyan   = lipgloss.Color("14")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorRed    = lipgloss.Color("9")
	colorGray   = lipgloss.Color("245")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Width(16)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

var stateColors = map[string]lipgloss.Color{
	string(dto.OrderStatusPending):     colorYellow,
	string(dto.OrderStatusProcessing):  colorCyan,
	string(dto.OrderStatusShipped):     colorBlue,
	string(dto.OrderStatusDelivered):   colorGreen,
	string(dto.OrderStatusCancelled):   colorRed,
	string(dto.PaymentStatusCompleted): colorGreen,
	string(dto.PaymentStatusFailed):    colorRed,
	"SERVING":                          colorGreen,
	"NOT_SERVING":                      colorRed,
}

// stateText красит статус заказа, оплаты или health.
func stateText(state string) string {
	color, ok := stateColors[state]
	if !ok {
		return state
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(state)
}

func field(label, value string) string {
	return labelStyle.Render(label) + value
}

func renderOrder(w io.Writer, order dto.Order) {
	lines := []string{
		titleStyle.Render("Order " + order.Id),
		field("user", order.User),
		field("status", stateText(string(order.Status))),
		field("payment", stateText(string(order.PaymentStatus))+" "+mutedStyle.Render("("+string(order.PaymentMethod)+")")),
		field("price", order.Price),
		field("total", order.TotalPrice),
		field("address", fmt.Sprintf("%s, %s, %s",
			order.DeliveryAddress.Street, order.DeliveryAddress.City, order.DeliveryAddress.State)),
		field("created", order.CreatedAt.Format(timeLayout)),
		field("updated", order.UpdatedAt.Format(timeLayout)),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func renderOrders(w io.Writer, orders []dto.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no orders"))
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			order.Id,
			order.User,
			stateText(string(order.Status)),
			stateText(string(order.PaymentStatus)),
			order.TotalPrice,
			order.CreatedAt.Format(timeLayout),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "USER", "STATUS", "PAYMENT", "TOTAL", "CREATED").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

func renderActions(w io.Writer, actions dto.OrderActions) {
	nextStatuses := make([]string, 0, len(actions.NextStatuses))
	for _, s := range actions.NextStatuses {
		nextStatuses = append(nextStatuses, stateText(string(s)))
	}
	nextPayments := make([]string, 0, len(actions.NextPaymentStatuses))
	for _, s := range actions.NextPaymentStatuses {
		nextPayments = append(nextPayments, stateText(string(s)))
	}

	lines := []string{
		titleStyle.Render("Order " + actions.OrderId),
		field("status", stateText(string(actions.Status))),
		field("next status", choices(nextStatuses)),
		field("payment", stateText(string(actions.PaymentStatus))),
		field("next payment", choices(nextPayments)),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func choices(items []string) string {
	if len(items) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(items, ", ")
}

func renderTransition(w io.Writer, what, from, to string) {
	fmt.Fprintln(w, field(what, stateText(from)+" → "+stateText(to)))
}

func renderHealth(w io.Writer, service, status string) {
	if service == "" {
		service = "(overall)"
	}
	fmt.Fprintln(w, field(service, stateText(status)))
}
