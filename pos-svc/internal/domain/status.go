package domain

type Channel string

const (
	ChannelDineIn   Channel = "dine_in"
	ChannelTakeaway Channel = "takeaway"
	ChannelDelivery Channel = "delivery"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelDineIn, ChannelTakeaway, ChannelDelivery:
		return true
	}
	return false
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// orderFlow is the only forward path an order can take. Cancelled sits
// outside it and is never offered as a next step.
var orderFlow = []OrderStatus{
	OrderPending,
	OrderPreparing,
	OrderReady,
	OrderServed,
	OrderCompleted,
}

// OrderStatuses lists every status in display order.
func OrderStatuses() []OrderStatus {
	return append(append([]OrderStatus{}, orderFlow...), OrderCancelled)
}

// Next returns the status immediately after s, or false when s is terminal
// or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range orderFlow {
		if st == s && i+1 < len(orderFlow) {
			return orderFlow[i+1], true
		}
	}
	return "", false
}

func (s OrderStatus) CanAdvance() bool {
	_, ok := s.Next()
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

func (s OrderStatus) Valid() bool {
	if s == OrderCancelled {
		return true
	}
	for _, st := range orderFlow {
		if st == s {
			return true
		}
	}
	return false
}

// Color is the badge colour used by the sales report.
func (s OrderStatus) Color() string {
	switch s {
	case OrderPending:
		return "amber"
	case OrderPreparing:
		return "blue"
	case OrderReady:
		return "green"
	case OrderServed:
		return "purple"
	case OrderCompleted:
		return "gray"
	case OrderCancelled:
		return "red"
	}
	return "slate"
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated, ReservationCancelled:
		return true
	}
	return false
}

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleBranchAdmin Role = "branch_admin"
	RoleManager     Role = "manager"
	RoleStaff       Role = "staff"
)
