package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
	"github.com/secmon-lab/vaxbook/pkg/service/backend"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := metrics.NewBackend(prometheus.NewRegistry())
	gt.NoError(t, err).Required()

	client, err := backend.New(srv.URL+"/api/v1/", backend.WithMetrics(m))
	gt.NoError(t, err).Required()
	return client
}

func TestListComboRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/api/v1/combo/details", r.URL.Path)
		gt.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[
			{"comboId":1,"comboName":"5-in-1","description":"d","ageGroup":"0-2","saleOff":10,"vaccineName":"DTaP"},
			{"comboId":null,"comboName":"broken","vaccineName":"X"},
			{"comboName":"missing","vaccineName":"Y"}
		]}`))
	})

	rows, err := client.ListComboRows(testContext())
	gt.NoError(t, err).Required()
	gt.Equal(t, 3, len(rows))
	gt.V(t, rows[0].ComboID).NotNil()
	gt.Equal(t, types.ComboID(1), *rows[0].ComboID)
	gt.Equal(t, "0-2", rows[0].AgeGroup)
	gt.Equal(t, 10.0, rows[0].SaleOff)
	gt.V(t, rows[1].ComboID).Nil()
	gt.V(t, rows[2].ComboID).Nil()
}

func TestListComboRowsNullResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	})

	rows, err := client.ListComboRows(testContext())
	gt.NoError(t, err).Required()
	gt.Equal(t, 0, len(rows))
}

func TestListVaccines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/api/v1/vaccine/list", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":[{"vaccineId":3,"name":"Hib","price":250000}]}`))
	})

	vaccines, err := client.ListVaccines(testContext())
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(vaccines))
	gt.Equal(t, "Hib", vaccines[0].Name)
	gt.Equal(t, 250000.0, vaccines[0].Price)
}

func TestLogin(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, http.MethodPost, r.Method)
			gt.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.Equal(t, "alice", body["username"])
			gt.Equal(t, "pw", body["password"])

			_, _ = w.Write([]byte(`{"result":{"token":"abc"}}`))
		})

		token, err := client.Login(testContext(), "alice", "pw")
		gt.NoError(t, err).Required()
		gt.Equal(t, types.AccessToken("abc"), token)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Login(testContext(), "alice", "wrong")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnauthorized))
	})

	t.Run("empty token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":{}}`))
		})

		_, err := client.Login(testContext(), "alice", "pw")
		gt.True(t, errors.Is(err, model.ErrUnauthorized))
	})
}

func TestListChildren(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"result":[{"childId":1,"childName":"Mai"},{"id":"2","name":"Nam"}]}`))
	})

	children, err := client.ListChildren(testContext(), "tok")
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, len(children))
	gt.Equal(t, "Mai", children[0]["childName"])

	_, err = client.ListChildren(testContext(), "")
	gt.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestBackendErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	})

	_, err := client.ListVaccines(testContext())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("backend returned error status")
}

func TestBackendInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.ListComboRows(testContext())
	gt.Error(t, err)
}

func TestNewInvalidURL(t *testing.T) {
	_, err := backend.New("ftp://example.com")
	gt.Error(t, err)

	_, err = backend.New("://bad")
	gt.Error(t, err)
}
