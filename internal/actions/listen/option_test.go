package listen

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		want    *options
		wantErr bool
	}{
		{
			name: "defaults",
			opts: nil,
			want: &options{width: 80, voskLogLevel: -1},
		},
		{
			name: "all set",
			opts: []Option{
				WithWidth(120),
				WithStallTimeout(3 * time.Second),
				WithPunctuation("/usr/lib/mecab/dic/ipadic"),
				WithDecoderLogs(),
			},
			want: &options{
				width:        120,
				stallTimeout: 3 * time.Second,
				punctuate:    true,
				mecabDicDir:  "/usr/lib/mecab/dic/ipadic",
				voskLogLevel: 0,
			},
		},
		{
			name:    "too narrow",
			opts:    []Option{WithWidth(10)},
			wantErr: true,
		},
		{
			name:    "negative stall timeout",
			opts:    []Option{WithStallTimeout(-time.Second)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyOptions(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyOptions() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(got, tt.want, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("applyOptions() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
