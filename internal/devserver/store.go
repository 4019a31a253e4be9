package devserver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/titaska/bitukai-client/internal/models"
)

// Store errors.
var (
	ErrNotFound           = errors.New("requested record not found")
	ErrConflict           = errors.New("reservation overlaps an existing one")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOrderNotOpen       = errors.New("order is not open")
	ErrBadStartTime       = errors.New("start time must be in 2006-01-02T15:04:05 form")
)

type storedStaff struct {
	models.Staff
	PasswordHash []byte
}

// Store is the dev server's in-memory state. It stands in for the real
// backend's database so the CLI and the end-to-end tests can run against a
// fully local stack. All access goes through the mutex.
type Store struct {
	mu           sync.RWMutex
	businesses   map[string]models.Business
	staff        map[string]storedStaff
	products     map[string]models.Product
	productStaff map[string]models.ProductStaff
	reservations map[string]models.Reservation
	orders       map[string]models.Order
	taxes        map[string]models.Tax
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		businesses:   make(map[string]models.Business),
		staff:        make(map[string]storedStaff),
		products:     make(map[string]models.Product),
		productStaff: make(map[string]models.ProductStaff),
		reservations: make(map[string]models.Reservation),
		orders:       make(map[string]models.Order),
		taxes:        make(map[string]models.Tax),
	}
}

// --- Businesses ---

// AddBusiness registers a tenant. The business type must be one of the
// supported profiles.
func (s *Store) AddBusiness(b models.Business) error {
	if !models.IsValidBusinessType(b.Type) {
		return fmt.Errorf("unknown business type %q for %s", b.Type, b.RegistrationNumber)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[b.RegistrationNumber] = b
	return nil
}

// ListBusinesses returns every tenant, ordered by registration number.
func (s *Store) ListBusinesses() []models.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Business, 0, len(s.businesses))
	for _, b := range s.businesses {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegistrationNumber < out[j].RegistrationNumber })
	return out
}

// GetBusiness resolves a tenant by registration number.
func (s *Store) GetBusiness(registrationNumber string) (models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[registrationNumber]
	if !ok {
		return models.Business{}, ErrNotFound
	}
	return b, nil
}

// --- Staff ---

// CreateStaff stores a new staff member. The plain password, when provided,
// is hashed before storage.
func (s *Store) CreateStaff(payload models.StaffCreate) (models.Staff, error) {
	staff := models.Staff{
		StaffID:            uuid.NewString(),
		RegistrationNumber: payload.RegistrationNumber,
		Status:             payload.Status,
		FirstName:          payload.FirstName,
		LastName:           payload.LastName,
		Email:              payload.Email,
		PhoneNumber:        payload.PhoneNumber,
		Role:               payload.Role,
		HireDate:           payload.HireDate,
	}

	var hash []byte
	if payload.Password != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Staff{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[staff.StaffID] = storedStaff{Staff: staff, PasswordHash: hash}
	return staff, nil
}

// ListStaff returns staff, optionally scoped to a tenant, ordered by name.
func (s *Store) ListStaff(registrationNumber string) []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Staff, 0, len(s.staff))
	for _, st := range s.staff {
		if registrationNumber != "" && st.RegistrationNumber != registrationNumber {
			continue
		}
		out = append(out, st.Staff)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })
	return out
}

// GetStaff fetches one staff member.
func (s *Store) GetStaff(staffID string) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[staffID]
	if !ok {
		return models.Staff{}, ErrNotFound
	}
	return st.Staff, nil
}

// UpdateStaff replaces a staff member's mutable fields.
func (s *Store) UpdateStaff(staffID string, payload models.StaffUpdate) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.staff[staffID]
	if !ok {
		return models.Staff{}, ErrNotFound
	}
	st.Status = payload.Status
	st.FirstName = payload.FirstName
	st.LastName = payload.LastName
	st.Email = payload.Email
	st.PhoneNumber = payload.PhoneNumber
	st.Role = payload.Role
	st.HireDate = payload.HireDate
	s.staff[staffID] = st
	return st.Staff, nil
}

// DeleteStaff removes a staff member.
func (s *Store) DeleteStaff(staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[staffID]; !ok {
		return ErrNotFound
	}
	delete(s.staff, staffID)
	return nil
}

// Authenticate verifies a staff member's credentials by email.
func (s *Store) Authenticate(email, password string) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.staff {
		if !strings.EqualFold(st.Email, email) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(st.PasswordHash, []byte(password)); err != nil {
			return models.Staff{}, ErrInvalidCredentials
		}
		return st.Staff, nil
	}
	return models.Staff{}, ErrInvalidCredentials
}

// --- Products ---

// CreateProduct stores a new catalog entry.
func (s *Store) CreateProduct(payload models.ProductCreate) models.Product {
	product := models.Product{
		ProductID:          uuid.NewString(),
		RegistrationNumber: payload.RegistrationNumber,
		ProductType:        payload.Type,
		Name:               payload.Name,
		Description:        payload.Description,
		BasePrice:          payload.BasePrice,
		DurationMinutes:    payload.DurationMinutes,
		TaxCode:            payload.TaxCode,
		Status:             payload.Status,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ProductID] = product
	return product
}

// ListProducts returns one page of the catalog after filtering.
func (s *Store) ListProducts(params models.ProductListParams) ([]models.Product, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []models.Product
	search := strings.ToLower(params.Search)
	for _, p := range s.products {
		if params.RegistrationNumber != "" && p.RegistrationNumber != params.RegistrationNumber {
			continue
		}
		if params.Type != "" && p.ProductType != params.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })

	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return filtered[start:end], models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// GetProduct fetches one catalog entry.
func (s *Store) GetProduct(productID string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[productID]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// UpdateProduct replaces a catalog entry's mutable fields.
func (s *Store) UpdateProduct(productID string, payload models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	p.Name = payload.Name
	p.Description = payload.Description
	p.BasePrice = payload.BasePrice
	p.DurationMinutes = payload.DurationMinutes
	p.TaxCode = payload.TaxCode
	p.Status = payload.Status
	s.products[productID] = p
	return p, nil
}

// DeleteProduct removes a catalog entry and its staff links.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return ErrNotFound
	}
	delete(s.products, productID)
	for id, link := range s.productStaff {
		if link.ProductID == productID {
			delete(s.productStaff, id)
		}
	}
	return nil
}

// --- Product-staff links ---

// ListProductStaff returns the eligibility links of a service.
func (s *Store) ListProductStaff(productID string) []models.ProductStaff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProductStaff
	for _, link := range s.productStaff {
		if link.ProductID == productID {
			out = append(out, link)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })
	return out
}

// LinkProductStaff creates an eligibility link.
func (s *Store) LinkProductStaff(productID string, payload models.ProductStaffLink) (models.ProductStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return models.ProductStaff{}, ErrNotFound
	}
	if _, ok := s.staff[payload.StaffID]; !ok {
		return models.ProductStaff{}, ErrNotFound
	}
	link := models.ProductStaff{
		ProductStaffID: uuid.NewString(),
		ProductID:      productID,
		StaffID:        payload.StaffID,
		Status:         payload.Status,
		ValidFrom:      payload.ValidFrom,
		ValidTo:        payload.ValidTo,
	}
	s.productStaff[link.ProductStaffID] = link
	return link, nil
}

// UpdateProductStaff changes an existing eligibility link.
func (s *Store) UpdateProductStaff(productID, staffID string, payload models.ProductStaffLink) (models.ProductStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, link := range s.productStaff {
		if link.ProductID == productID && link.StaffID == staffID {
			link.Status = payload.Status
			link.ValidFrom = payload.ValidFrom
			link.ValidTo = payload.ValidTo
			s.productStaff[id] = link
			return link, nil
		}
	}
	return models.ProductStaff{}, ErrNotFound
}

// UnlinkProductStaff removes an eligibility link.
func (s *Store) UnlinkProductStaff(productID, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, link := range s.productStaff {
		if link.ProductID == productID && link.StaffID == staffID {
			delete(s.productStaff, id)
			return nil
		}
	}
	return ErrNotFound
}

// --- Reservations ---

func parseStartTime(raw string) (time.Time, error) {
	if len(raw) > 19 {
		raw = raw[:19]
	}
	ts, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadStartTime, raw)
	}
	return ts, nil
}

// overlapsLocked reports whether [start, start+duration) intersects any
// non-cancelled reservation of the employee, excluding excludeID.
// Caller holds the lock.
func (s *Store) overlapsLocked(employeeID string, start time.Time, durationMinutes int, excludeID string) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, r := range s.reservations {
		if r.AppointmentID == excludeID || r.EmployeeID != employeeID || r.Status == models.ReservationStatusCancelled {
			continue
		}
		existingStart, err := parseStartTime(r.StartTime)
		if err != nil {
			continue
		}
		existingEnd := existingStart.Add(time.Duration(r.DurationMinutes) * time.Minute)
		if start.Before(existingEnd) && end.After(existingStart) {
			return true
		}
	}
	return false
}

// CreateReservation books an appointment, rejecting overlapping intervals for
// the same employee with ErrConflict.
func (s *Store) CreateReservation(payload models.ReservationCreate) (models.Reservation, error) {
	start, err := parseStartTime(payload.StartTime)
	if err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlapsLocked(payload.EmployeeID, start, payload.DurationMinutes, "") {
		return models.Reservation{}, ErrConflict
	}

	reservation := models.Reservation{
		AppointmentID:      uuid.NewString(),
		RegistrationNumber: payload.RegistrationNumber,
		EmployeeID:         payload.EmployeeID,
		ServiceProductID:   payload.ServiceProductID,
		StartTime:          start.Format("2006-01-02T15:04:05"),
		DurationMinutes:    payload.DurationMinutes,
		Status:             models.ReservationStatusBooked,
		ClientName:         payload.ClientName,
		ClientSurname:      payload.ClientSurname,
		ClientPhone:        payload.ClientPhone,
		Notes:              payload.Notes,
	}
	s.reservations[reservation.AppointmentID] = reservation
	return reservation, nil
}

// UpdateReservation replaces an appointment, re-running the overlap check
// against everything except itself.
func (s *Store) UpdateReservation(appointmentID string, payload models.ReservationCreate) (models.Reservation, error) {
	start, err := parseStartTime(payload.StartTime)
	if err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[appointmentID]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	if s.overlapsLocked(payload.EmployeeID, start, payload.DurationMinutes, appointmentID) {
		return models.Reservation{}, ErrConflict
	}

	r.RegistrationNumber = payload.RegistrationNumber
	r.EmployeeID = payload.EmployeeID
	r.ServiceProductID = payload.ServiceProductID
	r.StartTime = start.Format("2006-01-02T15:04:05")
	r.DurationMinutes = payload.DurationMinutes
	r.ClientName = payload.ClientName
	r.ClientSurname = payload.ClientSurname
	r.ClientPhone = payload.ClientPhone
	r.Notes = payload.Notes
	s.reservations[appointmentID] = r
	return r, nil
}

// UpdateReservationStatus transitions an appointment's status.
func (s *Store) UpdateReservationStatus(appointmentID, status string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[appointmentID]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	r.Status = status
	s.reservations[appointmentID] = r
	return r, nil
}

// TakenSlots returns the start timestamps of the employee's non-cancelled
// reservations on the given date, sorted ascending. This mirrors the real
// backend's availability contract: bare timestamps, no durations.
func (s *Store) TakenSlots(employeeID, date string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, r := range s.reservations {
		if r.EmployeeID != employeeID || r.Status == models.ReservationStatusCancelled {
			continue
		}
		if strings.HasPrefix(r.StartTime, date) {
			out = append(out, r.StartTime)
		}
	}
	sort.Strings(out)
	return out
}

// ReservationDetails returns every reservation joined with service and
// employee display names.
func (s *Store) ReservationDetails() []models.ReservationInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ReservationInfo, 0, len(s.reservations))
	for _, r := range s.reservations {
		info := models.ReservationInfo{
			AppointmentID:      r.AppointmentID,
			RegistrationNumber: r.RegistrationNumber,
			ServiceProductID:   r.ServiceProductID,
			EmployeeID:         r.EmployeeID,
			StartTime:          r.StartTime,
			DurationMinutes:    r.DurationMinutes,
			Status:             r.Status,
			Notes:              r.Notes,
			ClientName:         r.ClientName,
			ClientSurname:      r.ClientSurname,
			ClientPhone:        r.ClientPhone,
		}
		if p, ok := s.products[r.ServiceProductID]; ok {
			info.ServiceName = p.Name
		}
		if st, ok := s.staff[r.EmployeeID]; ok {
			info.EmployeeName = st.FirstName
			info.EmployeeSurname = st.LastName
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// --- Orders ---

// CreateOrder opens a new order.
func (s *Store) CreateOrder(payload models.OrderCreate) models.Order {
	order := models.Order{
		OrderID:            uuid.NewString(),
		RegistrationNumber: payload.RegistrationNumber,
		CustomerID:         payload.CustomerID,
		Status:             models.OrderStatusOpen,
		CreatedAt:          time.Now().Format("2006-01-02T15:04:05"),
		Lines:              []models.OrderLine{},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = order
	return order
}

// cloneOrderLocked returns a copy of the order whose Lines slice does not
// alias stored state, so in-place line mutations never reach a copy handed
// out earlier. Caller holds the lock.
func cloneOrderLocked(o models.Order) models.Order {
	lines := make([]models.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}

// GetOrder fetches an order with its lines.
func (s *Store) GetOrder(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return cloneOrderLocked(o), nil
}

// ListOrders returns orders, optionally scoped to a tenant and a status,
// newest first.
func (s *Store) ListOrders(registrationNumber, status string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if registrationNumber != "" && o.RegistrationNumber != registrationNumber {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, cloneOrderLocked(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// AddOrderLine appends a line to an open order. The subtotal is computed
// server-side as unitPrice * quantity.
func (s *Store) AddOrderLine(orderID string, payload models.OrderLineCreate) (models.OrderLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return models.OrderLine{}, ErrNotFound
	}
	if o.Status != models.OrderStatusOpen {
		return models.OrderLine{}, ErrOrderNotOpen
	}
	line := models.OrderLine{
		OrderLineID:     uuid.NewString(),
		OrderID:         orderID,
		ProductID:       payload.ProductID,
		Quantity:        payload.Quantity,
		AssignedStaffID: payload.AssignedStaffID,
		AppointmentID:   payload.AppointmentID,
		Notes:           payload.Notes,
		UnitPrice:       payload.UnitPrice,
		SubTotal:        payload.UnitPrice * float64(payload.Quantity),
	}
	o.Lines = append(o.Lines, line)
	s.orders[orderID] = o
	return line, nil
}

// UpdateOrderLine changes a line's quantity and recomputes its subtotal.
func (s *Store) UpdateOrderLine(orderID, lineID string, payload models.OrderLineUpdate) (models.OrderLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return models.OrderLine{}, ErrNotFound
	}
	if o.Status != models.OrderStatusOpen {
		return models.OrderLine{}, ErrOrderNotOpen
	}
	for i := range o.Lines {
		if o.Lines[i].OrderLineID == lineID {
			o.Lines[i].Quantity = payload.Quantity
			o.Lines[i].SubTotal = o.Lines[i].UnitPrice * float64(payload.Quantity)
			s.orders[orderID] = o
			return o.Lines[i], nil
		}
	}
	return models.OrderLine{}, ErrNotFound
}

// DeleteOrderLine removes a line from an open order.
func (s *Store) DeleteOrderLine(orderID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	if o.Status != models.OrderStatusOpen {
		return ErrOrderNotOpen
	}
	for i := range o.Lines {
		if o.Lines[i].OrderLineID == lineID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			s.orders[orderID] = o
			return nil
		}
	}
	return ErrNotFound
}

// CalculateOrder recomputes the order's monetary totals from its lines and
// the tax table. A line's tax is resolved through its product's tax code,
// matched against either the tax id or the tax name (the catalog references
// taxes both ways).
func (s *Store) CalculateOrder(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, ErrNotFound
	}

	var subtotal, tax float64
	for _, line := range o.Lines {
		subtotal += line.SubTotal
		if p, ok := s.products[line.ProductID]; ok {
			if rate, found := s.taxRateLocked(p.TaxCode); found {
				tax += line.SubTotal * rate / 100
			}
		}
	}
	serviceCharge := 0.0
	total := subtotal + tax + serviceCharge

	o.SubtotalAmount = &subtotal
	o.TaxAmount = &tax
	o.ServiceChargeAmount = &serviceCharge
	o.TotalDue = &total
	s.orders[orderID] = o
	return cloneOrderLocked(o), nil
}

func (s *Store) taxRateLocked(code string) (float64, bool) {
	if t, ok := s.taxes[code]; ok {
		return t.Percentage, true
	}
	for _, t := range s.taxes {
		if strings.EqualFold(t.Name, code) {
			return t.Percentage, true
		}
	}
	return 0, false
}

// CloseOrder finalizes an open order as paid.
func (s *Store) CloseOrder(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if o.Status != models.OrderStatusOpen {
		return models.Order{}, ErrOrderNotOpen
	}
	o.Status = models.OrderStatusClosedPaid
	closedAt := time.Now().Format("2006-01-02T15:04:05")
	o.ClosedAt = &closedAt
	s.orders[orderID] = o
	return cloneOrderLocked(o), nil
}

// --- Taxes ---

// CreateTax stores a new tax rate.
func (s *Store) CreateTax(payload models.TaxCreateUpdate) models.Tax {
	tax := models.Tax{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Description: payload.Description,
		Percentage:  payload.Percentage,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxes[tax.ID] = tax
	return tax
}

// ListTaxes returns every tax rate ordered by name.
func (s *Store) ListTaxes() []models.Tax {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tax, 0, len(s.taxes))
	for _, t := range s.taxes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetTax fetches one tax rate.
func (s *Store) GetTax(taxID string) (models.Tax, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.taxes[taxID]
	if !ok {
		return models.Tax{}, ErrNotFound
	}
	return t, nil
}

// UpdateTax replaces a tax rate's fields.
func (s *Store) UpdateTax(taxID string, payload models.TaxCreateUpdate) (models.Tax, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.taxes[taxID]
	if !ok {
		return models.Tax{}, ErrNotFound
	}
	t.Name = payload.Name
	t.Description = payload.Description
	t.Percentage = payload.Percentage
	s.taxes[taxID] = t
	return t, nil
}

// DeleteTax removes a tax rate.
func (s *Store) DeleteTax(taxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.taxes[taxID]; !ok {
		return ErrNotFound
	}
	delete(s.taxes, taxID)
	return nil
}
