package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilchenko/go-skill-market/internal/config"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/service"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/models"
)

// ---- In-memory fakes ----
//
// The end-to-end tests run the full router with real services on top of
// in-memory repositories, so the whole pipeline — middleware, token
// round-trips, ownership decisions — is exercised without a database.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]models.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	user.UserID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.UserID] = user
	return user, nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepo) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type memTutorialRepo struct {
	mu        sync.Mutex
	nextID    int64
	tutorials map[int64]models.Tutorial
	users     *memUserRepo
}

func newMemTutorialRepo(users *memUserRepo) *memTutorialRepo {
	return &memTutorialRepo{nextID: 1, tutorials: make(map[int64]models.Tutorial), users: users}
}

func (r *memTutorialRepo) CreateTutorial(ctx context.Context, tutorial models.Tutorial) (models.Tutorial, error) {
	creator, err := r.users.FindUserByID(ctx, tutorial.CreatedBy)
	if err != nil {
		return models.Tutorial{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	tutorial.TutorialID = r.nextID
	tutorial.CreatorName = creator.Name
	tutorial.CreatedAt = time.Now()
	tutorial.UpdatedAt = tutorial.CreatedAt
	r.nextID++
	r.tutorials[tutorial.TutorialID] = tutorial
	return tutorial, nil
}

func (r *memTutorialRepo) GetTutorial(_ context.Context, tutorialID int64) (models.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tutorial, ok := r.tutorials[tutorialID]
	if !ok {
		return models.Tutorial{}, store.ErrTutorialNotFound
	}
	return tutorial, nil
}

func (r *memTutorialRepo) ListTutorials(_ context.Context) ([]models.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tutorials := make([]models.Tutorial, 0, len(r.tutorials))
	for _, tutorial := range r.tutorials {
		tutorials = append(tutorials, tutorial)
	}
	return tutorials, nil
}

func (r *memTutorialRepo) UpdateTutorial(_ context.Context, tutorialID int64, update models.TutorialUpdate) (models.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tutorial, ok := r.tutorials[tutorialID]
	if !ok {
		return models.Tutorial{}, store.ErrTutorialNotFound
	}
	if update.Title != nil {
		tutorial.Title = *update.Title
	}
	if update.Description != nil {
		tutorial.Description = *update.Description
	}
	tutorial.UpdatedAt = time.Now()
	r.tutorials[tutorialID] = tutorial
	return tutorial, nil
}

func (r *memTutorialRepo) DeleteTutorial(_ context.Context, tutorialID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tutorials[tutorialID]; !ok {
		return store.ErrTutorialNotFound
	}
	delete(r.tutorials, tutorialID)
	return nil
}

type memProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{nextID: 1, products: make(map[int64]models.Product)}
}

func (r *memProductRepo) CreateProduct(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ProductID = r.nextID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.nextID++
	r.products[product.ProductID] = product
	return product, nil
}

func (r *memProductRepo) GetProduct(_ context.Context, productID int64) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[productID]
	if !ok {
		return models.Product{}, store.ErrProductNotFound
	}
	return product, nil
}

func (r *memProductRepo) ListProducts(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *memProductRepo) UpdateProduct(_ context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[productID]
	if !ok {
		return models.Product{}, store.ErrProductNotFound
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	product.UpdatedAt = time.Now()
	r.products[productID] = product
	return product, nil
}

func (r *memProductRepo) DeleteProduct(_ context.Context, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[productID]; !ok {
		return store.ErrProductNotFound
	}
	delete(r.products, productID)
	return nil
}

// ---- test server wiring ----

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	nop := logger.Nop()
	users := newMemUserRepo()
	storages := &store.Storages{
		UserRepository:     users,
		ProductRepository:  newMemProductRepo(),
		TutorialRepository: newMemTutorialRepo(users),
	}

	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "routes-test-sign-key",
			TokenIssuer:   "go-skill-market-test",
			TokenDuration: time.Hour,
		},
	}

	services := service.NewServices(storages, cfg, nop)
	handler := NewHandler(services, NewRateLimiter(1000, time.Minute), nop)

	srv := httptest.NewServer(handler.Init(5 * time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func registerAndLogin(t *testing.T, baseURL, name, email string) (string, models.User) {
	t.Helper()

	registerBody := fmt.Sprintf(`{"name":%q,"email":%q,"password":"s3cret-pass"}`, name, email)
	resp, err := http.Post(baseURL+"/api/auth/register", "application/json", strings.NewReader(registerBody))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	loginBody := fmt.Sprintf(`{"email":%q,"password":"s3cret-pass"}`, email)
	resp, err = http.Post(baseURL+"/api/auth/login", "application/json", strings.NewReader(loginBody))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()

	require.NotEmpty(t, login.Token)
	return login.Token, login.User
}

// ---- end-to-end tests ----

func TestRoutes_RegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)

	token, user := registerAndLogin(t, srv.URL, "Alice", "alice@example.com")
	assert.Equal(t, "alice@example.com", user.Email)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "alice@example.com", raw["email"])
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "password_hash")
}

func TestRoutes_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)

	registerAndLogin(t, srv.URL, "Alice", "alice@example.com")

	body := `{"name":"Impostor","email":"ALICE@Example.COM","password":"other-pass"}`
	resp, err := http.Post(srv.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, models.KindDuplicateEmail, errBody.Kind)
}

func TestRoutes_TutorialsRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tutorials")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_ProductListIsPublic(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_OwnershipGate(t *testing.T) {
	srv := newTestServer(t)

	aliceToken, _ := registerAndLogin(t, srv.URL, "Alice", "alice@example.com")
	bobToken, _ := registerAndLogin(t, srv.URL, "Bob", "bob@example.com")

	// Alice creates a tutorial.
	createBody := `{"title":"Go Concurrency","description":"Channels in depth","content":"...","category":"go"}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/tutorials", strings.NewReader(createBody))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Tutorial
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotZero(t, created.TutorialID)
	assert.Equal(t, "Alice", created.CreatorName)

	tutorialURL := fmt.Sprintf("%s/api/tutorials/%d", srv.URL, created.TutorialID)

	// Bob may read it but not modify it.
	req, err = http.NewRequest(http.MethodGet, tutorialURL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodPut, tutorialURL, strings.NewReader(`{"title":"Hijacked"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	var errBody models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, models.KindForbidden, errBody.Kind)

	// The owner's update still goes through.
	req, err = http.NewRequest(http.MethodPut, tutorialURL, strings.NewReader(`{"title":"Go Concurrency, 2nd ed."}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestRoutes_ProductsAreGloballyMutable(t *testing.T) {
	srv := newTestServer(t)

	aliceToken, _ := registerAndLogin(t, srv.URL, "Alice", "alice@example.com")
	bobToken, _ := registerAndLogin(t, srv.URL, "Bob", "bob@example.com")

	createBody := `{"name":"Laptop Stand","description":"Aluminium","price":39.5,"category":"accessories","stock":12}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/products", strings.NewReader(createBody))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	// Bob, who did not create the product, may still update it.
	productURL := fmt.Sprintf("%s/api/products/%d", srv.URL, created.ProductID)
	req, err = http.NewRequest(http.MethodPut, productURL, strings.NewReader(`{"price":29.99}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/products", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
