package orderview

import (
	"slices"
	"strings"
)

// Reduce applies an event to the state and returns the next state.
// It is pure: the input state is not modified.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case LoadStarted:
		s.Loading = true
		s.Err = ""

	case LoadSucceeded:
		s.Loading = false
		s.Orders = sortHomeFirst(ev.Orders, s.HomeCountry)
		s.AvailableCountries = availableCountries(s.Orders)
		s.FilteredOrders = applyFilters(s)

	case LoadFailed:
		s.Loading = false
		s.Err = ev.Err

	case CountrySelected:
		s.SelectedCountry = ev.Country
		s.FilteredOrders = applyFilters(s)

	case DescriptionFilterChanged:
		s.DescriptionFilter = ev.Filter
		s.FilteredOrders = applyFilters(s)

	case CreateStarted:
		s.Loading = true
		s.Err = ""
		s.CreateSucceeded = false

	case OrderCreated:
		s.Loading = false
		s.CreateSucceeded = true
		orders := make([]Order, 0, len(s.Orders)+1)
		orders = append(orders, s.Orders...)
		s.Orders = append(orders, ev.Order)
		s.AvailableCountries = availableCountries(s.Orders)
		s.FilteredOrders = applyFilters(s)

	case CreateFailed:
		s.Loading = false
		s.Err = ev.Err
		s.CreateSucceeded = false
	}

	return s
}

// sortHomeFirst orders home-country orders before all others while
// preserving the incoming relative order within and across groups.
// The server's due-date order therefore survives as the tie-break.
func sortHomeFirst(orders []Order, homeCountry string) []Order {
	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	slices.SortStableFunc(sorted, func(a, b Order) int {
		switch {
		case a.Country == homeCountry && b.Country != homeCountry:
			return -1
		case a.Country != homeCountry && b.Country == homeCountry:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// applyFilters derives the display list. Filtering never reorders
// the surviving elements.
func applyFilters(s State) []Order {
	needle := strings.ToLower(s.DescriptionFilter)

	filtered := make([]Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		matchesCountry := s.SelectedCountry == "" || o.Country == s.SelectedCountry
		matchesDescription := needle == "" ||
			strings.Contains(strings.ToLower(o.Description), needle)
		if matchesCountry && matchesDescription {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// availableCountries returns the unique countries, sorted, for the
// filter dropdown.
func availableCountries(orders []Order) []string {
	seen := make(map[string]struct{}, len(orders))
	countries := make([]string, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.Country]; ok {
			continue
		}
		seen[o.Country] = struct{}{}
		countries = append(countries, o.Country)
	}
	slices.Sort(countries)
	return countries
}
