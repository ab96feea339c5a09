package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingInput struct {
	Limit int `query:"limit" minimum:"1"`
}

func TestRouter_ServerErrorsHideDetails(t *testing.T) {
	mux, API := newRouter()

	huma.Register(API, huma.Operation{
		OperationID: "failing",
		Method:      http.MethodGet,
		Path:        "/failing",
	}, func(_ context.Context, _ *failingInput) (*struct{}, error) {
		return nil, errors.New("db password=hunter2")
	})
	huma.Register(API, huma.Operation{
		OperationID: "panicking",
		Method:      http.MethodGet,
		Path:        "/panicking",
	}, func(_ context.Context, _ *struct{}) (*struct{}, error) {
		panic("db password=hunter2")
	})

	t.Run("handler error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/failing", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")

		var problem huma.ErrorModel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
		assert.Equal(t, http.StatusInternalServerError, problem.Status)
		assert.Equal(t, "Internal Server Error", problem.Title)
		assert.Empty(t, problem.Detail)
		assert.Empty(t, problem.Errors)
	})

	t.Run("panic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panicking", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})

	t.Run("client errors keep details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/failing?limit=0", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var problem huma.ErrorModel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
		assert.NotEmpty(t, problem.Errors)
	})
}

func TestNewError(t *testing.T) {
	err := newError(http.StatusBadGateway, "upstream said no", errors.New("secret"))

	assert.Equal(t, http.StatusBadGateway, err.GetStatus())
	assert.NotContains(t, err.Error(), "secret")
	assert.NotContains(t, err.Error(), "upstream said no")
}
