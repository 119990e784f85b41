package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
	"github.com/iliyamo/lesson-seat-storefront/internal/repository"
)

func Test_FetchLessons_DecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/lessons", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"subject":"Math","offerings":[{"city":"NYC","price":20,"spaces":5}]},
			{"subject":"Art","offerings":[{"city":"LA","price":15.5,"spaces":3}]}
		]`)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	subjects, err := repo.FetchLessons(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Subject)
	require.Len(t, subjects[0].Offerings, 1)
	assert.Equal(t, 5, subjects[0].Offerings[0].Spaces)
	assert.True(t, subjects[1].Offerings[0].Price.Equal(decimal.NewFromFloat(15.5)))
}

func Test_FetchLessons_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	_, err := repo.FetchLessons(context.Background())
	assert.ErrorIs(t, err, repository.ErrCatalogUnavailable)
}

func Test_SubmitOrder_PostsPayloadAndReadsMessage(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"message":"see you in class"}`)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	order := model.Order{
		Reference: "ref-1",
		Name:      "John Doe",
		Phone:     "5551234",
		Items: []model.OrderItem{
			{Subject: "Math", City: "NYC", Price: decimal.NewFromInt(20), Quantity: 2},
		},
		Total: decimal.NewFromInt(40),
	}
	msg, err := repo.SubmitOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "see you in class", msg)

	assert.Equal(t, "John Doe", got["name"])
	assert.Equal(t, "5551234", got["phone"])
	assert.Equal(t, float64(40), got["total"], "totals travel as bare numbers")
	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Math", item["subject"])
	assert.Equal(t, float64(2), item["quantity"])
	assert.Equal(t, float64(20), item["price"])
}

func Test_SubmitOrder_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	_, err := repo.SubmitOrder(context.Background(), model.Order{})
	assert.ErrorIs(t, err, repository.ErrOrderRejected)
}

func Test_SubmitOrder_EmptyAckBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	msg, err := repo.SubmitOrder(context.Background(), model.Order{})
	require.NoError(t, err, "an accepted order with no body is still accepted")
	assert.Empty(t, msg)
}

func Test_UpdateSpaces(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/lessons", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"acknowledged":true}`)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	require.NoError(t, repo.UpdateSpaces(context.Background(), "Math", "NYC", 3))
	assert.Equal(t, "Math", got["subject"])
	assert.Equal(t, "NYC", got["city"])
	assert.Equal(t, float64(3), got["spaces"])
}

func Test_UpdateSpaces_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	repo := repository.NewLessonRepo(srv.URL, time.Second)
	err := repo.UpdateSpaces(context.Background(), "Math", "NYC", 3)
	assert.ErrorIs(t, err, repository.ErrUpdateRejected)
}
