package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/autohub/autohub-cli/internal/client/models"
	"github.com/autohub/autohub-cli/internal/client/uploads"
)

// maxImages caps the image sequence of a listing, pasted URLs and uploaded
// files combined.
const maxImages = 8

// getLines and materializePreview are test seams.
var (
	getLines           = GetLines
	materializePreview = uploads.MaterializePreview
)

// Sell is the listing form. Field validation happens locally before any
// network call, with the message shown next to the offending field (the
// user is re-prompted). Local image files are previewed, then uploaded
// concurrently to the image host with all-or-nothing failure; pasted URLs
// precede uploaded-file URLs in the final image sequence.
func (a *App) Sell(ctx context.Context) error {
	return a.requireAuth(ctx, a.sell)
}

func (a *App) sell(ctx context.Context) error {
	name, err := a.promptField("Name", required)
	if err != nil {
		return err
	}
	priceText, err := a.promptField("Price", requiredNumber)
	if err != nil {
		return err
	}
	yearText, err := a.promptField("Year", requiredInteger)
	if err != nil {
		return err
	}
	mileageText, err := a.promptField("Mileage", requiredInteger)
	if err != nil {
		return err
	}
	transmission, err := a.promptField("Transmission", required)
	if err != nil {
		return err
	}
	fuel, err := a.promptField("Fuel", required)
	if err != nil {
		return err
	}
	engine, err := a.promptField("Engine", required)
	if err != nil {
		return err
	}
	color, err := a.promptField("Color (optional)", anyText)
	if err != nil {
		return err
	}
	description, err := a.promptField("Description (optional)", anyText)
	if err != nil {
		return err
	}
	sellerPhone, err := a.promptField("Seller phone (optional)", anyText)
	if err != nil {
		return err
	}
	sellerEmail, err := a.promptField("Seller email (optional)", optionalEmail)
	if err != nil {
		return err
	}
	sellerLocation, err := a.promptField("Seller location (optional)", anyText)
	if err != nil {
		return err
	}

	urls, files, err := a.collectImages()
	if err != nil {
		return err
	}

	uploaded, err := a.uploader.UploadAll(ctx, files)
	if err != nil {
		printlnFn("Error creating car:", err.Error())
		return err
	}
	images := append(urls, uploaded...)

	year, _ := strconv.Atoi(yearText)
	mileage, _ := strconv.Atoi(mileageText)

	car := models.Car{
		Name:           name,
		Price:          models.Numeric(priceText),
		Year:           year,
		Mileage:        mileage,
		Transmission:   transmission,
		Fuel:           fuel,
		Engine:         engine,
		Color:          color,
		Description:    description,
		Images:         images,
		SellerPhone:    sellerPhone,
		SellerEmail:    sellerEmail,
		SellerLocation: sellerLocation,
	}
	if u := a.session.Current(); u != nil {
		car.SellerName = u.FullName()
		car.SellerImage = u.ProfilePicture
	} else {
		car.SellerName = "Guest"
	}

	created, err := a.api.CreateCar(ctx, car)
	if err != nil {
		printlnFn("Error creating car:", err.Error())
		return err
	}

	printlnFn("Car listed successfully:", created.ID)
	return a.Browse(ctx)
}

// collectImages gathers pasted URLs, then local file paths, and enforces
// the combined cap. Each local file gets a preview copy the user can
// inspect before the actual upload happens.
func (a *App) collectImages() (urls []string, files []string, err error) {
	urls, err = getLines(a.reader, "Paste image URLs", os.Stdout)
	if err != nil {
		return nil, nil, err
	}
	files, err = getLines(a.reader, "Enter local image paths", os.Stdout)
	if err != nil {
		return nil, nil, err
	}

	if len(urls) > maxImages {
		urls = urls[:maxImages]
	}
	if len(urls)+len(files) > maxImages {
		files = files[:maxImages-len(urls)]
		printlnFn(fmt.Sprintf("Keeping the first %d images.", maxImages))
	}

	for _, f := range files {
		preview, err := materializePreview(f)
		if err != nil {
			printlnFn("Photos: " + err.Error())
			return nil, nil, err
		}
		printlnFn("preview: " + preview)
	}
	return urls, files, nil
}

// promptField re-prompts until validate accepts the input, printing the
// validation message next to the field label.
func (a *App) promptField(label string, validate func(string) error) (string, error) {
	for {
		v, err := getSimpleText(a.reader, label, os.Stdout)
		if err != nil {
			return "", err
		}
		if verr := validate(v); verr != nil {
			printlnFn(label + ": " + verr.Error())
			continue
		}
		return v, nil
	}
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

func requiredNumber(v string) error {
	if err := required(v); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func requiredInteger(v string) error {
	if err := required(v); err != nil {
		return err
	}
	if _, err := strconv.Atoi(v); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

func anyText(string) error { return nil }

func optionalEmail(v string) error {
	if v == "" {
		return nil
	}
	at := strings.IndexByte(v, '@')
	if at <= 0 || at == len(v)-1 || !strings.Contains(v[at:], ".") {
		return fmt.Errorf("invalid email")
	}
	return nil
}
