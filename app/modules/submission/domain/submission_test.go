package submissiondomain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDraft_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		draft    Draft
		wantErr  bool
		wantDesc *string
	}{
		{name: "minimal", draft: Draft{Title: "Ace", ClipURL: "https://clips.example.com/v/1"}},
		{name: "trims", draft: Draft{Title: "  Ace  ", ClipURL: " http://x.io/a ", Description: strPtr("  nice  ")}, wantDesc: strPtr("nice")},
		{name: "blank description dropped", draft: Draft{Title: "Ace", ClipURL: "https://x.io", Description: strPtr("   ")}},
		{name: "missing title", draft: Draft{ClipURL: "https://x.io"}, wantErr: true},
		{name: "long title", draft: Draft{Title: strings.Repeat("a", MaxTitleLength+1), ClipURL: "https://x.io"}, wantErr: true},
		{name: "relative url", draft: Draft{Title: "Ace", ClipURL: "/clips/1"}, wantErr: true},
		{name: "ftp url", draft: Draft{Title: "Ace", ClipURL: "ftp://x.io/clip"}, wantErr: true},
		{name: "javascript url", draft: Draft{Title: "Ace", ClipURL: "javascript:alert(1)"}, wantErr: true},
		{name: "long description", draft: Draft{Title: "Ace", ClipURL: "https://x.io", Description: strPtr(strings.Repeat("d", MaxDescriptionLength+1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.draft.Normalize()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSubmission)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.draft.Title), got.Title)
			assert.Equal(t, tt.wantDesc, got.Description)
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("archived").IsValid())
}
