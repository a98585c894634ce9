package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/autohub/autohub-cli/internal/client/api"
	"github.com/autohub/autohub-cli/internal/client/carousel"
	"github.com/autohub/autohub-cli/internal/client/models"
)

// Show is the single-car screen: the record's details, the seller panel,
// and an image carousel navigated with n(ext) / p(rev), saturating at both
// ends. With no images a placeholder is shown and there is nothing to
// navigate.
func (a *App) Show(ctx context.Context, id string) error {
	car, err := a.api.GetCar(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Car not found")
			return nil
		}
		printlnFn("Could not load car:", err.Error())
		return err
	}

	a.renderCar(car)

	cur := carousel.New(len(car.Images))
	if cur.Empty() {
		printlnFn("No Image Available")
		return nil
	}

	a.renderImage(car, cur)
	for {
		fmt.Print("image [n=next p=prev q=done]> ")
		line, err := a.reader.ReadString('\n')
		cmd := strings.TrimSpace(line)
		switch cmd {
		case "n", "next":
			cur.Next()
			a.renderImage(car, cur)
		case "p", "prev":
			cur.Prev()
			a.renderImage(car, cur)
		case "q", "done", "back":
			return nil
		case "":
		default:
			printlnFn("Unknown command:", cmd)
		}
		if err != nil {
			return nil
		}
	}
}

func (a *App) renderCar(car *models.Car) {
	printlnFn(car.Name)
	if p := car.Price.String(); p != "" {
		printlnFn("Price: $" + p)
	}
	if car.Description != "" {
		printlnFn(car.Description)
	}
	printlnFn(fmt.Sprintf("Year: %d", car.Year))
	printlnFn("Engine: " + car.Engine)
	printlnFn("Fuel Type: " + car.Fuel)
	printlnFn("Transmission: " + car.Transmission)
	printlnFn(fmt.Sprintf("Mileage: %d km", car.Mileage))
	if car.Color != "" {
		printlnFn("Color: " + car.Color)
	}

	printlnFn("Seller: " + car.SellerName)
	if car.SellerPhone != "" {
		printlnFn("  " + car.SellerPhone)
	}
	if car.SellerEmail != "" {
		printlnFn("  " + car.SellerEmail)
	}
	if car.SellerLocation != "" {
		printlnFn("  " + car.SellerLocation)
	}
}

func (a *App) renderImage(car *models.Car, cur *carousel.Cursor) {
	printlnFn(fmt.Sprintf("Image %d/%d: %s", cur.Index()+1, cur.Count(), car.Images[cur.Index()]))
}
