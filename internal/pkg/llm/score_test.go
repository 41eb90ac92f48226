package llm

import (
	"errors"
	"testing"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr error
	}{
		{
			name:    "分数在末尾",
			content: "A clean casual look with good color balance.\nFinal Score: 82",
			want:    82,
		},
		{
			name:    "分数后有多余空格",
			content: "Final Score:   95",
			want:    95,
		},
		{
			name:    "满分",
			content: "Stunning.\nFinal Score: 100\n",
			want:    100,
		},
		{
			name:    "未检测到穿搭",
			content: "No outfit detected",
			wantErr: ErrNoOutfitDetected,
		},
		{
			name:    "未检测到穿搭大小写混合",
			content: "Sorry, NO OUTFIT DETECTED in this image.",
			wantErr: ErrNoOutfitDetected,
		},
		{
			name:    "缺少约定格式",
			content: "I would rate this outfit 82 out of 100.",
			wantErr: ErrScoreUnparsable,
		},
		{
			name:    "空回复",
			content: "",
			wantErr: ErrScoreUnparsable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseScore() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScore() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
