package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/autohub/autohub-cli/internal/client/filter"
	"github.com/autohub/autohub-cli/internal/client/models"
)

// browseStatus is the listing screen's explicit state. A fetch failure is a
// distinct state the user can see and retry from, not an empty list.
type browseStatus int

const (
	statusIdle browseStatus = iota
	statusLoading
	statusReady
	statusFailed
)

// browseState holds everything the listing screen owns: the fetched set,
// the search term, and the price bounds. The set is fetched once on entry;
// search and filter changes only re-run the filter over it.
type browseState struct {
	status browseStatus
	cars   []models.Car
	term   string
	bounds filter.Bounds
}

func (s *browseState) filtered() []models.Car {
	return filter.Apply(s.cars, s.term, s.bounds)
}

// Browse is the car listing screen. It fetches the catalog once, then
// loops on search/filter commands, re-filtering the fetched set on every
// change without refetching.
//
// Commands inside the screen: search [text], min [price], max [price],
// clear, list, open <id>, retry, back.
func (a *App) Browse(ctx context.Context) error {
	st := &browseState{status: statusLoading}
	a.fetchListing(ctx, st)
	a.renderListing(st)

	for {
		fmt.Print("autohub cars> ")
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return nil
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: search [text], min [price], max [price], clear, list, open <id>, retry, back")

		case "search":
			st.term = strings.Join(args, " ")
			a.renderListing(st)

		case "min":
			st.bounds.Min = firstOrEmpty(args)
			a.renderListing(st)

		case "max":
			st.bounds.Max = firstOrEmpty(args)
			a.renderListing(st)

		case "clear":
			st.term = ""
			st.bounds = filter.Bounds{}
			a.renderListing(st)

		case "l", "list":
			a.renderListing(st)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "retry":
			st.status = statusLoading
			a.fetchListing(ctx, st)
			a.renderListing(st)

		case "back", "exit", "quit":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func firstOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (a *App) fetchListing(ctx context.Context, st *browseState) {
	cars, err := a.api.ListCars(ctx)
	if err != nil {
		a.log.Error(ctx, "listing fetch failed", "error", err)
		st.status = statusFailed
		st.cars = nil
		return
	}
	st.status = statusReady
	st.cars = cars
}

func (a *App) renderListing(st *browseState) {
	switch st.status {
	case statusFailed:
		printlnFn("Could not load cars. Type 'retry' to try again.")
		return
	case statusReady:
	default:
		return
	}

	cars := st.filtered()
	if len(cars) == 0 {
		printlnFn("No cars match your search.")
		return
	}
	for _, c := range cars {
		printlnFn(listingLine(c))
	}
	printlnFn(fmt.Sprintf("%d car(s). Type 'open <id>' to view one.", len(cars)))
}

func listingLine(c models.Car) string {
	name := c.Name
	if name == "" {
		name = "Unknown Car"
	}
	price := c.Price.String()
	if price == "" {
		price = "Price on request"
	} else {
		price = "$" + price
	}
	return fmt.Sprintf("%-26s %s  %d  %s", c.ID, name, c.Year, price)
}
