package entity

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{name: "full record", input: `{"name":"Grist","url":"https://grist.org","region":"Global","category":"Climate","scrapability":"Easy","notes":"n"}`, wantName: "Grist"},
		{name: "name only", input: `{"name":"Foo"}`, wantName: "Foo"},
		{name: "case variant after name", input: `{"name":"KnowESG","NAME":"Legacy"}`, wantName: "KnowESG"},
		{name: "case variant before name", input: `{"Name":"Legacy","name":"KnowESG"}`, wantName: "KnowESG"},
		{name: "case variant only", input: `{"Name":"Foo"}`, wantErr: true},
		{name: "upper case only", input: `{"NAME":"Foo","url":"https://foo.example"}`, wantErr: true},
		{name: "missing name", input: `{"url":"https://foo.example"}`, wantErr: true},
		{name: "null name", input: `{"name":null}`, wantErr: true},
		{name: "numeric name", input: `{"name":42}`, wantErr: true},
		{name: "numeric region", input: `{"name":"Foo","region":3}`, wantErr: true},
		{name: "not an object", input: `"Foo"`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Source
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, s.Name)
			assert.NotNil(t, s.raw)
		})
	}
}

func TestSourceMarshalBuiltInFieldOrder(t *testing.T) {
	s := Source{
		Name:         "ESG Chronicle",
		URL:          "https://esgchronicle.com",
		Region:       "Global + Asia",
		Category:     "ESG / Climate Policy / Energy Transition",
		Scrapability: ScrapabilityEasy,
		Notes:        "Topic-wise sections – good for topic-level scrapers & feeds.",
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(s))

	want := `{"name":"ESG Chronicle","url":"https://esgchronicle.com","region":"Global + Asia",` +
		`"category":"ESG / Climate Policy / Energy Transition","scrapability":"Easy",` +
		`"notes":"Topic-wise sections – good for topic-level scrapers & feeds."}`
	assert.Equal(t, want+"\n", buf.String())
	assert.Nil(t, s.raw)
}

func TestSourcePassthrough(t *testing.T) {
	input := `{"url":"https://foo.example","name":"Foo","tags":["a","b"]}`

	var s Source
	require.NoError(t, json.Unmarshal([]byte(input), &s))
	assert.Equal(t, "Foo", s.Name)
	assert.Empty(t, s.Region)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))
	assert.Equal(t, input, string(data))
}

func TestSourceKnownFieldsMatchExactKeys(t *testing.T) {
	input := `{"name":"Foo","URL":"http://shadow","url":"https://foo.example","Region":"Mars"}`

	var s Source
	require.NoError(t, json.Unmarshal([]byte(input), &s))
	assert.Equal(t, "https://foo.example", s.URL)
	assert.Empty(t, s.Region)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}
