// orderctl fetches the order list and renders it through the view
// reducer, applying the same home-country-first ordering and filters
// the web client uses.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kristjanluik/ordertrack/internal/orderview"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	country := flag.String("country", "", "filter by country (exact match)")
	filter := flag.String("filter", "", "filter by description substring (case-insensitive)")
	home := flag.String("home", orderview.DefaultHomeCountry, "home country, listed first")
	flag.Parse()

	state := orderview.NewState(*home)
	state = orderview.Reduce(state, orderview.LoadStarted{})

	orders, err := fetchOrders(*addr)
	if err != nil {
		state = orderview.Reduce(state, orderview.LoadFailed{Err: err.Error()})
		fmt.Fprintln(os.Stderr, "error:", state.Err)
		os.Exit(1)
	}

	state = orderview.Reduce(state, orderview.LoadSucceeded{Orders: orders})
	state = orderview.Reduce(state, orderview.CountrySelected{Country: *country})
	state = orderview.Reduce(state, orderview.DescriptionFilterChanged{Filter: *filter})

	render(state)
}

func fetchOrders(baseURL string) ([]orderview.Order, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(baseURL + "/api/orders")
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: unexpected status %s", resp.Status)
	}

	var orders []orderview.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func render(state orderview.State) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER NUMBER\tDESCRIPTION\tCOUNTRY\tAMOUNT\tCURRENCY\tDUE DATE")
	for _, o := range state.FilteredOrders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OrderNumber, o.Description, o.Country, o.Amount, o.Currency, o.PaymentDueDate)
	}
	w.Flush()

	fmt.Printf("\n%d of %d orders shown\n", len(state.FilteredOrders), len(state.Orders))
}
