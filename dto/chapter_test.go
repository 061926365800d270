package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorderChaptersReqValidate(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		wantErr bool
	}{
		{"valid order", []int{3, 1, 2}, false},
		{"single chapter", []int{1}, false},
		{"duplicate id", []int{1, 2, 1}, true},
		{"zero id", []int{0, 1}, true},
		{"negative id", []int{-4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ReorderChaptersReq{ChapterIDs: tt.ids}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateChapterReqValidate(t *testing.T) {
	req := CreateChapterReq{Title: "  Basics  "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Basics", req.Title)

	req = CreateChapterReq{Title: "   "}
	assert.Error(t, req.Validate())
}
