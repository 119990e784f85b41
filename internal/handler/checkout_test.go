package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/lesson-seat-storefront/internal/handler"
	"github.com/iliyamo/lesson-seat-storefront/internal/model"
	"github.com/iliyamo/lesson-seat-storefront/internal/repository"
	"github.com/iliyamo/lesson-seat-storefront/internal/service"
)

func Test_PostCheckout_ValidationGate(t *testing.T) {
	s := newSession()
	_, err := s.Reserve("Math", "NYC")
	require.NoError(t, err)

	// The remote store must not be reached when the gate fails, so the
	// repo may point anywhere.
	lessons := repository.NewLessonRepo("http://localhost:0", time.Second)
	h := handler.NewCheckoutHandler(s, service.NewCheckout(s, lessons, time.Second, false))

	rec, _ := doJSON(t, h.PostCheckout, http.MethodPost, "/v1/checkout",
		`{"name":"John3","phone":"5551234"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 1, s.Count(), "no side effects on a failed gate")
	assert.Equal(t, model.Customer{Name: "John3", Phone: "5551234"}, s.Customer(),
		"the form stays filled in for correction")
}

func Test_PostCheckout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/order":
			_, _ = w.Write([]byte(`{"message":"enjoy"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/lessons":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	s := newSession()
	_, err := s.Reserve("Math", "NYC")
	require.NoError(t, err)

	lessons := repository.NewLessonRepo(srv.URL, time.Second)
	h := handler.NewCheckoutHandler(s, service.NewCheckout(s, lessons, time.Second, false))

	rec, body := doJSON(t, h.PostCheckout, http.MethodPost, "/v1/checkout",
		`{"name":"John Doe","phone":"5551234"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "enjoy", body["message"])
	assert.Equal(t, float64(0), body["sync_failures"])
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, model.Customer{}, s.Customer())
}

func Test_PostCheckout_RemoteDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newSession()
	_, err := s.Reserve("Math", "NYC")
	require.NoError(t, err)

	lessons := repository.NewLessonRepo(srv.URL, time.Second)
	h := handler.NewCheckoutHandler(s, service.NewCheckout(s, lessons, time.Second, false))

	rec, _ := doJSON(t, h.PostCheckout, http.MethodPost, "/v1/checkout",
		`{"name":"John Doe","phone":"5551234"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 1, s.Count(), "cart survives a failed submission")
}
