package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/an0ushkaaa/twodo/internal/db"
	"github.com/an0ushkaaa/twodo/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	databasePath := filepath.Join(t.TempDir(), "twodo-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

// testCookieJar carries Set-Cookie state (notably the flash cookie) from one
// helper request to the next, the way a browser would. One jar per test app.
type testCookieJar struct {
	mu      sync.Mutex
	cookies map[string]string
}

var testCookieJars sync.Map // *fiber.App -> *testCookieJar

func jarForTestApp(app *fiber.App) *testCookieJar {
	jar, _ := testCookieJars.LoadOrStore(app, &testCookieJar{cookies: map[string]string{}})
	return jar.(*testCookieJar)
}

func (jar *testCookieJar) storeResponseCookies(response *http.Response) {
	jar.mu.Lock()
	defer jar.mu.Unlock()
	for _, cookie := range response.Cookies() {
		expired := cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(time.Now()))
		if cookie.Value == "" || expired {
			delete(jar.cookies, cookie.Name)
			continue
		}
		jar.cookies[cookie.Name] = cookie.Value
	}
}

// cookieHeader merges jar cookies with an explicitly supplied Cookie header;
// names present in the explicit header win.
func (jar *testCookieJar) cookieHeader(explicit string) string {
	jar.mu.Lock()
	defer jar.mu.Unlock()

	parts := []string{}
	explicitNames := map[string]bool{}
	for _, pair := range strings.Split(explicit, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, _, _ := strings.Cut(pair, "=")
		explicitNames[strings.TrimSpace(name)] = true
		parts = append(parts, pair)
	}
	for name, value := range jar.cookies {
		if !explicitNames[name] {
			parts = append(parts, name+"="+value)
		}
	}
	return strings.Join(parts, "; ")
}

func createTestUser(t *testing.T, database *gorm.DB, username string, displayName string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: string(passwordHash),
		DisplayName:  displayName,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func linkTestPartners(t *testing.T, database *gorm.DB, first models.User, second models.User) {
	t.Helper()

	if err := db.NewUserRepository(database).LinkPartners(first.ID, second.ID); err != nil {
		t.Fatalf("link partners: %v", err)
	}
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	response := postTestForm(t, app, "", "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected login redirect to /dashboard, got %q", location)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "twodo_auth" && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func postTestForm(t *testing.T, app *fiber.App, authCookie string, path string, form url.Values) *http.Response {
	t.Helper()

	jar := jarForTestApp(app)
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if header := jar.cookieHeader(authCookie); header != "" {
		request.Header.Set("Cookie", header)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	jar.storeResponseCookies(response)
	return response
}

func postJSONAcceptForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getTestPage(t *testing.T, app *fiber.App, authCookie string, path string, expectedStatus int) string {
	t.Helper()

	jar := jarForTestApp(app)
	request := httptest.NewRequest(http.MethodGet, path, nil)
	if header := jar.cookieHeader(authCookie); header != "" {
		request.Header.Set("Cookie", header)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer response.Body.Close()
	jar.storeResponseCookies(response)

	if response.StatusCode != expectedStatus {
		t.Fatalf("GET %s expected status %d, got %d", path, expectedStatus, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("GET %s read body failed: %v", path, err)
	}
	return string(body)
}

func getTestPageRedirect(t *testing.T, app *fiber.App, authCookie string, path string) string {
	t.Helper()

	jar := jarForTestApp(app)
	request := httptest.NewRequest(http.MethodGet, path, nil)
	if header := jar.cookieHeader(authCookie); header != "" {
		request.Header.Set("Cookie", header)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer response.Body.Close()
	jar.storeResponseCookies(response)

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("GET %s expected status 303, got %d", path, response.StatusCode)
	}
	return response.Header.Get("Location")
}

func reloadTestUser(t *testing.T, database *gorm.DB, userID uint) models.User {
	t.Helper()

	var user models.User
	if err := database.First(&user, userID).Error; err != nil {
		t.Fatalf("reload user %d: %v", userID, err)
	}
	return user
}
