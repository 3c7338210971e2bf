package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastV1_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body      string
		want      *int64
		malformed bool
	}{
		{`{"menu_id":5}`, ptrTo(int64(5)), false},
		{`{"menu_id":"5"}`, ptrTo(int64(5)), false},
		{`{"menu_id":5.0}`, ptrTo(int64(5)), false},
		{`{"menu_id":null}`, nil, false},
		{`{}`, nil, false},
		{`[]`, nil, false},
		{`{"menu_id":"x"}`, nil, true},
		{`{"menu_id":5.5}`, nil, true},
		{`{"menu_id":true}`, nil, true},
		{`{"menu_id":[5]}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req CastV1
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.want, req.MenuID)
			if tt.malformed {
				var verr *ValidationError
				require.ErrorAs(t, req.Malformed(), &verr)
				assert.Equal(t, "menu_id", verr.Field)
				assert.Equal(t, "A valid integer is required.", verr.Message)
			} else {
				assert.NoError(t, req.Malformed())
			}
		})
	}
}

func TestCastV2_UnmarshalJSON(t *testing.T) {
	t.Run("entries", func(t *testing.T) {
		var req CastV2
		require.NoError(t, json.Unmarshal([]byte(`{"top_menus":[
			{"menu_id":1,"points":3},
			{"menu_id":"2","points":"2"},
			{"menu_id":{},"points":1.0}
		]}`), &req))

		require.NoError(t, req.Malformed())
		require.Len(t, req.TopMenus, 3)

		assert.Equal(t, int64(1), *req.TopMenus[0].MenuID)
		assert.Equal(t, 3, *req.TopMenus[0].Points)

		assert.Equal(t, int64(2), *req.TopMenus[1].MenuID)
		assert.Nil(t, req.TopMenus[1].Points)

		assert.Nil(t, req.TopMenus[2].MenuID)
		assert.Error(t, req.TopMenus[2].MenuIDError())
		assert.Equal(t, 1, *req.TopMenus[2].Points)
	})

	for _, body := range []string{`{"top_menus":"abc"}`, `{"top_menus":{}}`, `{"top_menus":[1,2,3]}`, `{"top_menus":[null,{},{}]}`} {
		t.Run(body, func(t *testing.T) {
			var req CastV2
			require.NoError(t, json.Unmarshal([]byte(body), &req))

			var verr *ValidationError
			require.ErrorAs(t, req.Malformed(), &verr)
			assert.Equal(t, "top_menus", verr.Field)
			assert.Equal(t, TopMenusRequired, verr.Message)
			assert.Empty(t, req.TopMenus)
		})
	}

	t.Run("missing list", func(t *testing.T) {
		var req CastV2
		require.NoError(t, json.Unmarshal([]byte(`{"top_menus":null}`), &req))
		assert.NoError(t, req.Malformed())
		assert.Empty(t, req.TopMenus)
	})
}

func ptrTo[T any](v T) *T {
	return &v
}
