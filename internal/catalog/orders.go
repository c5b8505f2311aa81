// Package catalog carries the back office's static reference data:
// orders, the model roster, the shoot schedule, and promotion copy.
// Everything here is literal data created once per session; views
// project it but never mutate it.
package catalog

// OrderStatus is the closed set of order states.
type OrderStatus int

const (
	StatusProcessing OrderStatus = iota
	StatusShipped
	StatusCompleted
)

// Label returns the status as shown in the back office.
func (s OrderStatus) Label() string {
	switch s {
	case StatusProcessing:
		return "處理中"
	case StatusShipped:
		return "已出貨"
	case StatusCompleted:
		return "已完成"
	default:
		return "未知"
	}
}

// String returns the status key used for theming and logs.
func (s OrderStatus) String() string {
	switch s {
	case StatusProcessing:
		return "processing"
	case StatusShipped:
		return "shipped"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Order is one customer order.
type Order struct {
	ID       string
	Customer string
	Product  string
	Quantity int
	Status   OrderStatus
}

// StatusFilter selects which orders a view displays.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterProcessing
	FilterShipped
	FilterCompleted
)

// Label returns the filter as shown in the order view title.
func (f StatusFilter) Label() string {
	switch f {
	case FilterProcessing:
		return StatusProcessing.Label()
	case FilterShipped:
		return StatusShipped.Label()
	case FilterCompleted:
		return StatusCompleted.Label()
	default:
		return "全部"
	}
}

// Next cycles to the following filter, wrapping back to FilterAll.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case FilterAll:
		return FilterProcessing
	case FilterProcessing:
		return FilterShipped
	case FilterShipped:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// FilterByStatus returns the orders matching the filter. FilterAll
// returns a copy of the input. The input slice is never modified.
func FilterByStatus(orders []Order, f StatusFilter) []Order {
	var want OrderStatus
	switch f {
	case FilterProcessing:
		want = StatusProcessing
	case FilterShipped:
		want = StatusShipped
	case FilterCompleted:
		want = StatusCompleted
	default:
		out := make([]Order, len(orders))
		copy(out, orders)
		return out
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == want {
			out = append(out, o)
		}
	}
	return out
}

// Orders returns the session's order list.
func Orders() []Order {
	return []Order{
		{ID: "A001", Customer: "王小姐", Product: "高腰瑜珈褲A", Quantity: 2, Status: StatusShipped},
		{ID: "A002", Customer: "李先生", Product: "運動內衣C", Quantity: 1, Status: StatusProcessing},
		{ID: "A003", Customer: "張小姐", Product: "喇叭瑜珈褲D", Quantity: 3, Status: StatusCompleted},
		{ID: "A004", Customer: "陳先生", Product: "運動外套E", Quantity: 1, Status: StatusProcessing},
	}
}
