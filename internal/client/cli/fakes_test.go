package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/autohub/autohub-cli/internal/client/api"
	"github.com/autohub/autohub-cli/internal/client/config"
	"github.com/autohub/autohub-cli/internal/client/models"
	"github.com/autohub/autohub-cli/internal/client/session"
	"github.com/autohub/autohub-cli/internal/logging"
)

// captureOutput redirects printlnFn into a slice for the duration of the
// test, one entry per call, without the trailing newline.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func outputContains(lines []string, want string) bool {
	for _, l := range lines {
		if strings.Contains(l, want) {
			return true
		}
	}
	return false
}

// stubSimpleText replaces the line-input seam with a queue of canned
// answers. Running out of answers reads as EOF.
func stubSimpleText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// stubLines replaces the multi-line input seam with a queue of batches,
// one batch per call.
func stubLines(t *testing.T, batches ...[]string) {
	t.Helper()
	orig := getLines
	i := 0
	getLines = func(_ *bufio.Reader, _ string, _ io.Writer) ([]string, error) {
		if i >= len(batches) {
			return nil, nil
		}
		b := batches[i]
		i++
		return b, nil
	}
	t.Cleanup(func() { getLines = orig })
}

type fakeSession struct {
	user     *models.User
	hasToken bool

	fetchErr  error
	loginErr  error
	loginUser *models.User
	signupErr error
	verifyErr error

	fetchCalls  int
	logoutCalls int
	loginEmail  string
	loginPass   string
	signupForm  *session.SignupForm
	verifyToken string
}

func (f *fakeSession) Current() *models.User { return f.user }

func (f *fakeSession) HasToken(ctx context.Context) bool { return f.hasToken }

func (f *fakeSession) FetchUser(ctx context.Context) error {
	f.fetchCalls++
	return f.fetchErr
}

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.hasToken = true
	f.user = f.loginUser
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logoutCalls++
	f.hasToken = false
	f.user = nil
}

func (f *fakeSession) Signup(ctx context.Context, form session.SignupForm) error {
	f.signupForm = &form
	return f.signupErr
}

func (f *fakeSession) Verify(ctx context.Context, token string) error {
	f.verifyToken = token
	return f.verifyErr
}

type fakeAPI struct {
	cars        []models.Car
	listErr     error
	listErrOnce error
	listCalls   int

	car    *models.Car
	getErr error

	myCars []models.Car
	myErr  error

	created   []models.Car
	createErr error

	deleted   []string
	deleteErr error

	profileUpd *api.ProfileUpdate
	pictureURL string
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) error { return nil }
func (f *fakeAPI) Verify(ctx context.Context, token string) error              { return nil }

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	return "", nil, nil
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) { return nil, nil }

func (f *fakeAPI) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (*models.User, error) {
	f.profileUpd = &upd
	return nil, nil
}

func (f *fakeAPI) UpdateProfilePicture(ctx context.Context, url string) (*models.User, error) {
	f.pictureURL = url
	return nil, nil
}

func (f *fakeAPI) ListCars(ctx context.Context) ([]models.Car, error) {
	f.listCalls++
	if f.listErrOnce != nil {
		err := f.listErrOnce
		f.listErrOnce = nil
		return nil, err
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cars, nil
}

func (f *fakeAPI) GetCar(ctx context.Context, id string) (*models.Car, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.car, nil
}

func (f *fakeAPI) MyCars(ctx context.Context) ([]models.Car, error) {
	if f.myErr != nil {
		return nil, f.myErr
	}
	return f.myCars, nil
}

func (f *fakeAPI) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, car)
	created := car
	created.ID = fmt.Sprintf("c%d", len(f.created))
	return &created, nil
}

func (f *fakeAPI) DeleteCar(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) SetToken(token string) {}

type fakeUploader struct {
	uploadURL string
	uploadErr error

	batchURLs []string
	batchErr  error
	batch     []string
}

func (f *fakeUploader) Upload(ctx context.Context, path string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadURL, nil
}

func (f *fakeUploader) UploadAll(ctx context.Context, paths []string) ([]string, error) {
	f.batch = paths
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batchURLs, nil
}

func newTestApp(input string, sess *fakeSession, apiC *fakeAPI, up *fakeUploader) *App {
	return &App{
		config:   &config.Config{},
		log:      logging.NewDefault(io.Discard),
		api:      apiC,
		session:  sess,
		uploader: up,
		reader:   bufio.NewReader(strings.NewReader(input)),
	}
}
