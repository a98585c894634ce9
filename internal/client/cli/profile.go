package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/autohub/autohub-cli/internal/client/api"
	"github.com/autohub/autohub-cli/internal/client/models"
	"github.com/autohub/autohub-cli/internal/xlsx"
)

// Profile is the account screen: the current user's fields, the picture
// upload, and the user's own listings with delete and export. Entry
// revalidates the session and loads the listings; a rejected token sends
// the user back to login.
func (a *App) Profile(ctx context.Context) error {
	return a.requireAuth(ctx, a.profile)
}

func (a *App) profile(ctx context.Context) error {
	if err := a.session.FetchUser(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn("Your session has expired, please log in again.")
			return a.Login(ctx)
		}
		printlnFn("Could not load profile:", err.Error())
		return err
	}

	cars, err := a.api.MyCars(ctx)
	if err != nil {
		a.log.Error(ctx, "my-cars fetch failed", "error", err)
		printlnFn("Could not load your listings:", err.Error())
		cars = nil
	}

	soldCount := 0
	a.renderProfile(cars, soldCount)

	for {
		fmt.Print("autohub profile> ")
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
			printlnFn("Available commands: show, edit, photo <path>, cars, delete <id>, sold, export [file], back")

		case "show":
			a.renderProfile(cars, soldCount)

		case "edit":
			_ = a.editProfile(ctx)

		case "photo":
			if len(args) == 0 {
				printlnFn("Usage: photo <path>")
				continue
			}
			_ = a.updatePicture(ctx, args[0])

		case "cars":
			a.renderMyCars(cars)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			cars = a.deleteCar(ctx, cars, args[0])

		case "sold":
			// Client-only tally, nothing is persisted.
			soldCount++
			printlnFn("Car marked as sold!")

		case "export":
			path := "my-cars.xlsx"
			if len(args) > 0 {
				path = args[0]
			}
			if err := xlsx.ExportCars(cars, path); err != nil {
				printlnFn("Export failed:", err.Error())
				continue
			}
			printlnFn("Exported to " + path)

		case "back", "exit", "quit":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) renderProfile(cars []models.Car, soldCount int) {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return
	}
	printlnFn(u.FullName())
	printlnFn("Email: " + u.Email)
	if u.Phone != "" {
		printlnFn("Phone: " + u.Phone)
	}
	if u.Address != "" {
		printlnFn("Address: " + u.Address)
	}
	if dob := u.DateOfBirth(); dob != "" {
		printlnFn("Date of birth: " + dob)
	}
	if u.ProfilePicture != "" {
		printlnFn("Picture: " + u.ProfilePicture)
	}
	printlnFn(fmt.Sprintf("Listed cars: %d, sold: %d", len(cars), soldCount))
}

func (a *App) renderMyCars(cars []models.Car) {
	if len(cars) == 0 {
		printlnFn("You have no cars listed.")
		return
	}
	for _, c := range cars {
		printlnFn(listingLine(c))
	}
}

// editProfile updates phone, address and date of birth. Empty input keeps
// the current value; the date is validated locally before the request.
func (a *App) editProfile(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	phone, err := getSimpleText(a.reader, "Phone ["+u.Phone+"]", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address ["+u.Address+"]", os.Stdout)
	if err != nil {
		return err
	}
	dob, err := a.promptField("Date of birth (YYYY-MM-DD) ["+u.DateOfBirth()+"]", optionalDate)
	if err != nil {
		return err
	}

	upd := api.ProfileUpdate{
		Phone:   fallback(phone, u.Phone),
		Address: fallback(address, u.Address),
		DOB:     fallback(dob, u.DateOfBirth()),
	}
	if _, err := a.api.UpdateProfile(ctx, upd); err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}

	printlnFn("Profile updated successfully!")
	return a.session.FetchUser(ctx)
}

// updatePicture uploads the image to the external host, then persists the
// hosted URL on the profile.
func (a *App) updatePicture(ctx context.Context, path string) error {
	url, err := a.uploader.Upload(ctx, path)
	if err != nil {
		printlnFn("Failed to upload profile picture:", err.Error())
		return err
	}
	if _, err := a.api.UpdateProfilePicture(ctx, url); err != nil {
		printlnFn("Failed to upload profile picture:", err.Error())
		return err
	}

	printlnFn("Profile picture updated!")
	return a.session.FetchUser(ctx)
}

// deleteCar removes a listing. Only a confirmed delete removes the record
// from the in-memory list; on failure the list stays as-is.
func (a *App) deleteCar(ctx context.Context, cars []models.Car, id string) []models.Car {
	if err := a.api.DeleteCar(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return cars
	}

	remaining := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	printlnFn("Car deleted successfully")
	return remaining
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func optionalDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("invalid date format, want YYYY-MM-DD")
	}
	return nil
}
