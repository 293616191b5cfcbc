package chi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
	reciperepo "github.com/kailas-cloud/cookbook/internal/repository/recipe"
	"github.com/kailas-cloud/cookbook/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cookbook/internal/usecase/health"
)

const testDocument = `[
  {"id": 1, "name": "Paneer Butter Masala", "calories": 450, "protein": 18, "tags": ["vegetarian", "spicy"],
   "ingredients": ["paneer", "butter"], "utensils": ["pan"], "procedure": ["Cook", "Serve"]},
  {"id": 2, "name": "Veg Biryani", "calories": 600, "protein": 15, "tags": ["spicy", "rice"]},
  {"id": 3, "name": "Greek Salad", "calories": 250, "protein": 8, "tags": ["healthy", "vegetarian"]},
  {"id": 5, "name": "Chocolate Cake", "calories": 800, "protein": 6, "tags": ["sweet", "dessert"]}
]`

// swappableSource lets tests change the document between reloads.
type swappableSource struct {
	data []byte
	err  error
}

func (s *swappableSource) Fetch(_ context.Context) ([]byte, error) { return s.data, s.err }
func (s *swappableSource) Name() string                           { return "test" }

type testEnv struct {
	handler http.Handler
	catalog *catalog.Service
	source  *swappableSource
}

func newTestEnv(t *testing.T, assets Assets, cfg RouterConfig, load bool) *testEnv {
	t.Helper()
	src := &swappableSource{data: []byte(testDocument)}
	cat := catalog.New(reciperepo.NewLoader(src, zap.NewNop()), criteria.DefaultBounds(), zap.NewNop())
	if load {
		if err := cat.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	srv := NewServer(cat, healthuc.New(cat, nil), assets, zap.NewNop())
	return &testEnv{
		handler: NewRouter(srv, cfg, zap.NewNop()),
		catalog: cat,
		source:  src,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, http.NoBody)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, status, strings.TrimSpace(rr.Body.String()))
	}
	resp := decode[errorResponse](t, rr)
	if resp.Code != code {
		t.Errorf("code = %q, want %q", resp.Code, code)
	}
}

var errBoom = errors.New("boom")
