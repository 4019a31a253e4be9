package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/titaska/bitukai-client/internal/api"
	"github.com/titaska/bitukai-client/internal/booking"
	"github.com/titaska/bitukai-client/internal/config"
	"github.com/titaska/bitukai-client/internal/flows"
	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: bitukai <command> [flags]

Commands:
  login         authenticate a staff member
  businesses    list registered businesses
  staff         list staff for a business
  services      list the product/service catalog
  availability  show per-staff bookable slots for a service and date
  reserve       book an appointment
  cancel        cancel an appointment
  reservations  list reservations with details
  order         manage catering orders (new, list, show, pay)
  tax           list tax rates

Configuration comes from BITUKAI_API_BASE, BITUKAI_REGISTRATION_NUMBER and
BITUKAI_HTTP_TIMEOUT.`)
	os.Exit(2)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func main() {
	utils.InitLogger()

	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.Load()
	client := api.NewClient(cfg)
	if token := utils.Getenv("BITUKAI_TOKEN", ""); token != "" {
		if expiry, err := utils.TokenExpiry(token); err == nil && time.Now().After(expiry) {
			fmt.Fprintf(os.Stderr, "warning: BITUKAI_TOKEN expired at %s, log in again\n", expiry.Format(time.RFC3339))
		}
		client.SetToken(token)
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, client, os.Args[2:])
	case "businesses":
		runBusinesses(ctx, client)
	case "staff":
		runStaff(ctx, client, cfg, os.Args[2:])
	case "services":
		runServices(ctx, client, cfg, os.Args[2:])
	case "availability":
		runAvailability(ctx, client, cfg, os.Args[2:])
	case "reserve":
		runReserve(ctx, client, cfg, os.Args[2:])
	case "cancel":
		runCancel(ctx, client, os.Args[2:])
	case "reservations":
		runReservations(ctx, client)
	case "order":
		runOrder(ctx, client, cfg, os.Args[2:])
	case "tax":
		runTax(ctx, client)
	default:
		usage()
	}
}

func runLogin(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "staff email")
	password := fs.String("password", "", "staff password")
	fs.Parse(args)

	resp, err := client.Login(ctx, *email, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Logged in as %s (%s)\n", resp.FullName(), resp.Email)
	if resp.AccessToken != "" {
		fmt.Println("Export this for subsequent commands:")
		fmt.Printf("  BITUKAI_TOKEN=%s\n", resp.AccessToken)
	}
	fmt.Printf("  BITUKAI_REGISTRATION_NUMBER=%s\n", resp.RegistrationNumber)
}

func runBusinesses(ctx context.Context, client *api.Client) {
	businesses, err := client.ListBusinesses(ctx)
	if err != nil {
		fatal(err)
	}
	for _, b := range businesses {
		fmt.Printf("%-12s  %-8s  %-20s  %s\n", b.RegistrationNumber, b.Type, b.Name, b.Location)
	}
}

func runStaff(ctx context.Context, client *api.Client, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("staff", flag.ExitOnError)
	reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
	fs.Parse(args)

	staff, err := client.ListStaff(ctx, *reg)
	if err != nil {
		fatal(err)
	}
	for _, s := range staff {
		status := "inactive"
		if s.IsActive() {
			status = "active"
		}
		fmt.Printf("%-36s  %-24s  %-8s  hired %s\n", s.StaffID, s.FullName(), status, s.HireDate)
	}
}

func runServices(ctx context.Context, client *api.Client, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("services", flag.ExitOnError)
	reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
	kind := fs.String("type", "", "filter: ITEM or SERVICE")
	search := fs.String("search", "", "name filter")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	result, err := client.ListProducts(ctx, models.ProductListParams{
		RegistrationNumber: *reg,
		Type:               models.ProductType(*kind),
		Search:             *search,
		Page:               *page,
	})
	if err != nil {
		fatal(err)
	}
	for _, p := range result.Data {
		duration := "-"
		if p.DurationMinutes != nil {
			duration = fmt.Sprintf("%d min", *p.DurationMinutes)
		}
		fmt.Printf("%-36s  %-8s  %-24s  %8s  %s\n",
			p.ProductID, p.ProductType, p.Name, utils.FormatMoney(p.BasePrice, ""), duration)
	}
	if result.Pagination != nil {
		fmt.Printf("page %d/%d (%d total)\n", result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
	}
}

func runAvailability(ctx context.Context, client *api.Client, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("availability", flag.ExitOnError)
	reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
	serviceID := fs.String("service", "", "service product id")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	fs.Parse(args)
	cfg = cfg.WithTenant(*reg)

	service, err := client.GetProduct(ctx, *serviceID)
	if err != nil {
		fatal(err)
	}
	staff, err := client.ListStaff(ctx, cfg.RegistrationNumber)
	if err != nil {
		fatal(err)
	}

	engine := booking.NewEngine(client)
	schedule, err := engine.DaySchedule(ctx, staff, *service, *date)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s on %s\n", service.Name, *date)
	for _, member := range schedule {
		fmt.Printf("\n%s (%s)\n", member.StaffName, member.StaffID)
		for _, status := range member.Slots {
			marker := " "
			if status.Taken {
				marker = "x"
			}
			fmt.Printf("  [%s] %s\n", marker, status.Slot.Label())
		}
	}
}

func runReserve(ctx context.Context, client *api.Client, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
	staffID := fs.String("staff", "", "staff id")
	serviceID := fs.String("service", "", "service product id")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	slot := fs.String("slot", "", `slot label, e.g. "09:00 - 09:30"`)
	name := fs.String("name", "", "client name")
	surname := fs.String("surname", "", "client surname")
	phone := fs.String("phone", "", "client phone")
	notes := fs.String("notes", "", "free-text notes")
	fs.Parse(args)
	cfg = cfg.WithTenant(*reg)

	var service models.Product
	if !utils.IsEmpty(*serviceID) {
		fetched, err := client.GetProduct(ctx, *serviceID)
		if err != nil {
			fatal(err)
		}
		service = *fetched
	}

	flow := flows.NewReservationFlow(client)
	created, taken, err := flow.Submit(ctx, flows.ReservationRequest{
		RegistrationNumber: cfg.RegistrationNumber,
		EmployeeID:         *staffID,
		Service:            service,
		Date:               *date,
		SlotLabel:          *slot,
		ClientName:         *name,
		ClientSurname:      *surname,
		ClientPhone:        *phone,
		Notes:              *notes,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Appointment %s booked at %s\n", created.AppointmentID, created.StartTime)
	fmt.Printf("Staff member now has %d reservation(s) on %s\n", len(taken), *date)
}

func runCancel(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "appointment id")
	fs.Parse(args)

	flow := flows.NewReservationFlow(client)
	if err := flow.Cancel(ctx, *id); err != nil {
		fatal(err)
	}
	fmt.Printf("Appointment %s cancelled\n", *id)
}

func runReservations(ctx context.Context, client *api.Client) {
	details, err := client.ReservationDetails(ctx)
	if err != nil {
		fatal(err)
	}
	for _, r := range details {
		fmt.Printf("%-36s  %-19s  %3d min  %-10s  %-20s  %s %s\n",
			r.AppointmentID, r.StartTime, r.DurationMinutes, r.Status, r.ServiceName,
			r.EmployeeName, r.EmployeeSurname)
	}
}

func runOrder(ctx context.Context, client *api.Client, cfg config.Config, args []string) {
	if len(args) < 1 {
		usage()
	}
	flow := flows.NewOrderFlow(client)

	switch args[0] {
	case "new":
		fs := flag.NewFlagSet("order new", flag.ExitOnError)
		reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
		var items multiFlag
		fs.Var(&items, "item", "cart entry productId:qty (repeatable)")
		fs.Parse(args[1:])

		cart, err := parseCart(ctx, client, items)
		if err != nil {
			fatal(err)
		}
		orderID, err := flow.Create(ctx, *reg, cart)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Order %s created with %d line(s)\n", orderID, len(cart))

	case "list":
		fs := flag.NewFlagSet("order list", flag.ExitOnError)
		reg := fs.String("reg", cfg.RegistrationNumber, "business registration number")
		status := fs.String("status", "", "filter: Open, Closed, Refunded or Cancelled")
		fs.Parse(args[1:])

		if *status != "" && !models.IsValidOrderStatus(*status) {
			fatal(fmt.Errorf("unknown order status %q", *status))
		}
		orders, err := client.ListOrders(ctx, *reg, *status)
		if err != nil {
			fatal(err)
		}
		for _, o := range orders {
			total := "-"
			if o.TotalDue != nil {
				total = utils.FormatMoney(*o.TotalDue, "")
			}
			fmt.Printf("%-36s  %-10s  %2d line(s)  %8s  created %s\n",
				o.OrderID, o.Status, len(o.Lines), total, o.CreatedAt)
		}

	case "show":
		fs := flag.NewFlagSet("order show", flag.ExitOnError)
		id := fs.String("id", "", "order id")
		fs.Parse(args[1:])

		order, err := client.GetOrder(ctx, *id)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Order %s  %s  created %s\n", order.OrderID, order.Status, order.CreatedAt)
		for _, line := range order.Lines {
			fmt.Printf("  %dx %-36s  %8s\n", line.Quantity, line.ProductID, utils.FormatMoney(line.SubTotal, ""))
		}
		if order.TotalDue != nil {
			fmt.Printf("  subtotal %s  tax %s  total due %s\n",
				utils.FormatMoney(derefFloat(order.SubtotalAmount), ""),
				utils.FormatMoney(derefFloat(order.TaxAmount), ""),
				utils.FormatMoney(*order.TotalDue, ""))
		}

	case "pay":
		fs := flag.NewFlagSet("order pay", flag.ExitOnError)
		id := fs.String("id", "", "order id")
		fs.Parse(args[1:])

		if err := flow.Checkout(ctx, *id); err != nil {
			fatal(err)
		}
		fmt.Printf("Order %s paid and closed\n", *id)

	default:
		usage()
	}
}

func runTax(ctx context.Context, client *api.Client) {
	taxes, err := client.ListTaxes(ctx)
	if err != nil {
		fatal(err)
	}
	for _, t := range taxes {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		fmt.Printf("%-36s  %-12s  %6.2f%%  %s\n", t.ID, t.Name, t.Percentage, desc)
	}
}

// multiFlag collects repeated -item flags.
type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

// parseCart resolves "productId:qty" entries into cart items, pulling the
// unit price from the catalog.
func parseCart(ctx context.Context, client *api.Client, items []string) ([]models.OrderItem, error) {
	cart := make([]models.OrderItem, 0, len(items))
	for _, raw := range items {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed cart entry %q, expected productId:qty", raw)
		}
		qty, err := utils.StrToInt(parts[1])
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("malformed quantity in cart entry %q", raw)
		}
		product, err := client.GetProduct(ctx, parts[0])
		if err != nil {
			return nil, err
		}
		cart = append(cart, models.OrderItem{
			ProductID: product.ProductID,
			Quantity:  qty,
			BasePrice: product.BasePrice,
		})
	}
	return cart, nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
