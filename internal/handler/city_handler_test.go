package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-network/internal/model"
	"social-network/pkg/response"
)

func TestCityList(t *testing.T) {
	region := &model.Region{ID: 1, Name: "Московская область"}
	router, _ := newTestRouter(
		&model.City{ID: 1, Name: "Москва", Region: region},
		&model.City{ID: 2, Name: "Тверь"},
	)

	w, env := doRequest(t, router, http.MethodGet, "/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Content       []response.CityInfo `json:"content"`
		TotalElements int64               `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(2), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Москва", page.Content[0].Name)
	assert.Equal(t, "Московская область", page.Content[0].RegionName)
	assert.Empty(t, page.Content[1].RegionName)
}
