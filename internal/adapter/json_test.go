package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/adapter"
)

type jsonDoc struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestJSON_UnmarshalStrict(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    jsonDoc
		wantErr bool
	}{
		{name: "known fields", data: `{"name":"John","age":44}`, want: jsonDoc{Name: "John", Age: 44}},
		{name: "unknown field", data: `{"name":"John","city":"Austin"}`, wantErr: true},
		{name: "trailing document", data: `{"name":"John"} {"name":"Jane"}`, wantErr: true},
		{name: "malformed", data: `{"name":`, wantErr: true},
	}

	j := adapter.NewJSON()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got jsonDoc
			err := j.UnmarshalStrict([]byte(tt.data), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON_MarshalIndent(t *testing.T) {
	data, err := adapter.NewJSON().MarshalIndent(jsonDoc{Name: "John", Age: 44})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"John\",\n  \"age\": 44\n}", string(data))

	var back jsonDoc
	require.NoError(t, adapter.NewJSON().Unmarshal(data, &back))
	assert.Equal(t, "John", back.Name)
}
