package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_DecodeBatch(t *testing.T) {
	payload := `[
		{"userId":1,"id":1,"title":"first","body":"alpha"},
		{"userId":1,"id":2,"title":"second","body":"beta"},
		{"userId":2,"id":3,"title":"third","body":"gamma"}
	]`

	var posts []Post
	err := json.Unmarshal([]byte(payload), &posts)

	assert.NoError(t, err)
	assert.Equal(t, []Post{
		{UserID: 1, ID: 1, Title: "first", Body: "alpha"},
		{UserID: 1, ID: 2, Title: "second", Body: "beta"},
		{UserID: 2, ID: 3, Title: "third", Body: "gamma"},
	}, posts)
}

func TestPost_DecodeSingle(t *testing.T) {
	payload := `[{"userId":1,"id":1,"title":"hello","body":"world"}]`

	var posts []Post
	err := json.Unmarshal([]byte(payload), &posts)

	assert.NoError(t, err)
	assert.Equal(t, []Post{{UserID: 1, ID: 1, Title: "hello", Body: "world"}}, posts)
}

func TestPost_DecodeMissingField(t *testing.T) {
	cases := []struct {
		missing string
		payload string
	}{
		{"userId", `{"id":1,"title":"t","body":"b"}`},
		{"id", `{"userId":1,"title":"t","body":"b"}`},
		{"title", `{"userId":1,"id":1,"body":"b"}`},
		{"body", `{"userId":1,"id":1,"title":"t"}`},
	}

	for _, tc := range cases {
		t.Run(tc.missing, func(t *testing.T) {
			var post Post
			err := json.Unmarshal([]byte(tc.payload), &post)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}

func TestPost_DecodeWrongType(t *testing.T) {
	var post Post
	err := json.Unmarshal([]byte(`{"userId":1,"id":"1","title":"t","body":"b"}`), &post)

	assert.Error(t, err)
}

func TestPost_DecodeNoPartialBatch(t *testing.T) {
	// One bad element rejects the whole batch.
	payload := `[
		{"userId":1,"id":1,"title":"ok","body":"ok"},
		{"userId":1,"id":2,"body":"missing title"}
	]`

	var posts []Post
	err := json.Unmarshal([]byte(payload), &posts)

	assert.Error(t, err)
}

func TestPost_RoundTrip(t *testing.T) {
	original := []Post{
		{UserID: 1, ID: 1, Title: "first", Body: "alpha"},
		{UserID: 2, ID: 2, Title: "", Body: ""},
	}

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var decoded []Post
	err = json.Unmarshal(data, &decoded)

	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestPost_DecodeOrderPreserved(t *testing.T) {
	payload := "["
	for i := 10; i > 0; i-- {
		if i < 10 {
			payload += ","
		}
		payload += fmt.Sprintf(`{"userId":1,"id":%d,"title":"t%d","body":"b"}`, i, i)
	}
	payload += "]"

	var posts []Post
	err := json.Unmarshal([]byte(payload), &posts)

	assert.NoError(t, err)
	assert.Len(t, posts, 10)
	for i, post := range posts {
		assert.Equal(t, 10-i, post.ID)
	}
}
