// Package orderview derives the order display list from server
// state. It replaces a reactive UI store with an explicit state
// struct folded through pure reducer functions.
package orderview

// Order is the wire shape of a listed order as the view consumes it.
type Order struct {
	ID             string `json:"id"`
	OrderNumber    string `json:"orderNumber"`
	Description    string `json:"description"`
	StreetAddress  string `json:"streetAddress"`
	Town           string `json:"town"`
	Country        string `json:"country"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	PaymentDueDate string `json:"paymentDueDate"`
}

// DefaultHomeCountry sorts first in the display list.
const DefaultHomeCountry = "Estonia"

// State is the complete view state. It is a value; Reduce returns a
// new State and never mutates shared slices in place.
type State struct {
	HomeCountry        string
	Orders             []Order
	FilteredOrders     []Order
	SelectedCountry    string
	DescriptionFilter  string
	AvailableCountries []string
	Loading            bool
	Err                string
	CreateSucceeded    bool
}

// NewState returns the initial view state. An empty homeCountry
// falls back to DefaultHomeCountry.
func NewState(homeCountry string) State {
	if homeCountry == "" {
		homeCountry = DefaultHomeCountry
	}
	return State{HomeCountry: homeCountry}
}

// Event is a view state transition input.
type Event interface {
	isEvent()
}

// LoadStarted marks the beginning of a listing fetch.
type LoadStarted struct{}

// LoadSucceeded carries the full order set in server order
// (payment due date ascending).
type LoadSucceeded struct {
	Orders []Order
}

// LoadFailed carries the display message for a failed fetch.
type LoadFailed struct {
	Err string
}

// CountrySelected sets the country equality filter; empty clears it.
type CountrySelected struct {
	Country string
}

// DescriptionFilterChanged sets the case-insensitive description
// substring filter; empty clears it.
type DescriptionFilterChanged struct {
	Filter string
}

// CreateStarted marks a pending creation request.
type CreateStarted struct{}

// OrderCreated appends a newly created order to the set.
type OrderCreated struct {
	Order Order
}

// CreateFailed carries the display message for a failed creation.
type CreateFailed struct {
	Err string
}

func (LoadStarted) isEvent()              {}
func (LoadSucceeded) isEvent()            {}
func (LoadFailed) isEvent()               {}
func (CountrySelected) isEvent()          {}
func (DescriptionFilterChanged) isEvent() {}
func (CreateStarted) isEvent()            {}
func (OrderCreated) isEvent()             {}
func (CreateFailed) isEvent()             {}
