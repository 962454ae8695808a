package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marquee-live/marquee/internal/adapters/catalog"
	"github.com/marquee-live/marquee/internal/adapters/http/api"
	"github.com/marquee-live/marquee/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementation of the handler dependency bundle.
type mockService struct {
	lastQuery api.Query
	rows      []api.Recommendation
	recErr    error

	detail    api.EventDetail
	detailErr error

	lists map[string][]string
}

func (m *mockService) Recommend(ctx context.Context, q api.Query) ([]api.Recommendation, error) {
	m.lastQuery = q
	if m.recErr != nil {
		return nil, m.recErr
	}
	return m.rows, nil
}

func (m *mockService) EventDetail(ctx context.Context, id string) (api.EventDetail, error) {
	if m.detailErr != nil {
		return api.EventDetail{}, m.detailErr
	}
	return m.detail, nil
}

func (m *mockService) AddToList(ctx context.Context, list, id string) bool {
	for _, got := range m.lists[list] {
		if got == id {
			return false
		}
	}
	if m.lists == nil {
		m.lists = make(map[string][]string)
	}
	m.lists[list] = append(m.lists[list], id)
	return true
}

func (m *mockService) RemoveFromList(ctx context.Context, list, id string) {
	kept := m.lists[list][:0]
	for _, got := range m.lists[list] {
		if got != id {
			kept = append(kept, got)
		}
	}
	m.lists[list] = kept
}

func (m *mockService) ListMembers(ctx context.Context, list string) []string {
	return m.lists[list]
}

func (m *mockService) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestServer(t *testing.T, svc *mockService) *http.ServeMux {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return mux
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return resp.Error
}

func TestRecommendationsEndpoint(t *testing.T) {
	Convey("Given the recommendations endpoint", t, func() {
		svc := &mockService{rows: []api.Recommendation{
			{ID: "e1", Name: "Neon City Fest", Genre: "EDM", Score: 0.9, Reasons: []string{"Near you", "Matches your EDM"}},
		}}
		mux := newTestServer(t, svc)

		Convey("When called with camelCase parameters", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
				"/recommendations?likedGenres=EDM,%20Pop&bandCenter=45&bandWidth=15&limit=3", nil))

			Convey("Then parameters land normalized on the service", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(svc.lastQuery.LikedGenres, ShouldResemble, []string{"EDM", "Pop"})
				So(svc.lastQuery.BandCenter, ShouldEqual, 45)
				So(svc.lastQuery.BandWidth, ShouldEqual, 15)
				So(svc.lastQuery.Limit, ShouldEqual, 3)
			})

			Convey("And the page decodes as a JSON array", func() {
				var rows []api.Recommendation
				So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
				So(len(rows), ShouldEqual, 1)
				So(rows[0].ID, ShouldEqual, "e1")
			})
		})

		Convey("When called with snake_case spellings", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
				"/recommendations?liked_genres=Rock&band_center=20&band_width=5", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(svc.lastQuery.LikedGenres, ShouldResemble, []string{"Rock"})
			So(svc.lastQuery.BandCenter, ShouldEqual, 20)
			So(svc.lastQuery.BandWidth, ShouldEqual, 5)
		})

		Convey("When parameters are absent or garbage", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
				"/recommendations?bandCenter=abc&bandWidth=NaN&limit=many", nil))

			Convey("Then defaults apply instead of an error", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(svc.lastQuery.LikedGenres, ShouldBeEmpty)
				So(svc.lastQuery.BandCenter, ShouldEqual, 30)
				So(svc.lastQuery.BandWidth, ShouldEqual, 10)
				So(svc.lastQuery.Limit, ShouldEqual, 0)
			})
		})

		Convey("When limit is present but out of range", func() {
			Convey("Then zero clamps to one instead of the default", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
					"/recommendations?limit=0", nil))
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(svc.lastQuery.Limit, ShouldEqual, 1)
			})

			Convey("And negative values clamp to one", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
					"/recommendations?limit=-7", nil))
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(svc.lastQuery.Limit, ShouldEqual, 1)
			})

			Convey("And fractional values truncate", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
					"/recommendations?limit=2.5", nil))
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(svc.lastQuery.Limit, ShouldEqual, 2)
			})
		})

		Convey("When the service fails", func() {
			svc.recErr = errors.New("pgx: connect to postgres://user:hunter2@db/prod refused")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations", nil))

			Convey("Then a single generic error body comes back", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(t, rec.Body.Bytes()), ShouldEqual, "internal error")
			})

			Convey("And the cause never reaches the caller", func() {
				So(rec.Body.String(), ShouldNotContainSubstring, "hunter2")
				So(rec.Body.String(), ShouldNotContainSubstring, "pgx")
			})
		})

		Convey("When the method is wrong", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestEventsEndpoint(t *testing.T) {
	Convey("Given the event detail endpoint", t, func() {
		svc := &mockService{detail: api.EventDetail{ID: "e1", Name: "Neon City Fest", Capacity: 1200}}
		mux := newTestServer(t, svc)

		Convey("When fetching a known event", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/e1", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var detail api.EventDetail
			So(json.Unmarshal(rec.Body.Bytes(), &detail), ShouldBeNil)
			So(detail.Name, ShouldEqual, "Neon City Fest")
		})

		Convey("When the event does not exist", func() {
			svc.detailErr = catalog.ErrNotFound
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/nope", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(decodeError(t, rec.Body.Bytes()), ShouldNotBeEmpty)
		})

		Convey("When the path has no id", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/", nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestListsEndpoint(t *testing.T) {
	Convey("Given the lists endpoint", t, func() {
		svc := &mockService{lists: map[string][]string{}}
		mux := newTestServer(t, svc)

		Convey("When adding and reading back", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/lists/liked_events/e1", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)

			rec = httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists/liked_events", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp struct {
				List string   `json:"list"`
				IDs  []string `json:"ids"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.List, ShouldEqual, "liked_events")
			So(resp.IDs, ShouldResemble, []string{"e1"})
		})

		Convey("When removing", func() {
			svc.lists["tickets"] = []string{"e2"}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/lists/tickets/e2", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(svc.lists["tickets"], ShouldBeEmpty)
		})

		Convey("When the list key is unknown", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists/wishlist", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(decodeError(t, rec.Body.Bytes()), ShouldEqual, "unknown list")
		})

		Convey("When a mutation omits the id", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/lists/tickets", nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When an empty list is read", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists/followed_hosts", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"ids":[]`)
		})
	})
}

func TestMiddleware(t *testing.T) {
	Convey("Given the metrics middleware", t, func() {
		if err := logger.Init(); err != nil {
			t.Fatalf("logger init: %v", err)
		}

		Convey("When the handler panics", func() {
			h := api.MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
				panic("dsn=postgres://user:hunter2@db/prod")
			}, "test")

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations", nil))

			Convey("Then the fault turns into a generic JSON 500", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(t, rec.Body.Bytes()), ShouldEqual, "internal error")
			})

			Convey("And the panic value stays out of the body", func() {
				So(rec.Body.String(), ShouldNotContainSubstring, "hunter2")
			})
		})

		Convey("When no request id is supplied", func() {
			h := api.MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}, "test")

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

			Convey("Then one is generated", func() {
				So(rec.Header().Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})

		Convey("When a request id is supplied", func() {
			h := api.MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}, "test")

			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			req.Header.Set("X-Request-Id", "abc-123")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			Convey("Then it echoes back", func() {
				So(rec.Header().Get("X-Request-Id"), ShouldEqual, "abc-123")
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the stats endpoint", t, func() {
		svc := &mockService{}
		mux := newTestServer(t, svc)

		Convey("When queried", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})
	})
}
