package normalize

import (
	"database/sql"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMillis(t *testing.T) {
	const fallback = 1700000000123
	type args struct {
		sec      sql.NullInt64
		fallback int64
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{
			name: "converts seconds to milliseconds",
			args: args{sec: sql.NullInt64{Int64: 1262304000, Valid: true}, fallback: fallback},
			want: 1262304000000,
		},
		{
			name: "null falls back",
			args: args{sec: sql.NullInt64{}, fallback: fallback},
			want: fallback,
		},
		{
			name: "zero falls back",
			args: args{sec: sql.NullInt64{Int64: 0, Valid: true}, fallback: fallback},
			want: fallback,
		},
		{
			name: "negative falls back",
			args: args{sec: sql.NullInt64{Int64: -152668800, Valid: true}, fallback: fallback},
			want: fallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Millis(tt.args.sec, tt.args.fallback); got != tt.want {
				t.Errorf("Millis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 200)
	type args struct {
		s     string
		limit int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "200 chars truncated to 150",
			args: args{s: long, limit: 150},
			want: strings.Repeat("x", 147) + "...",
		},
		{
			name: "short string unchanged",
			args: args{s: "0123456789", limit: 150},
			want: "0123456789",
		},
		{
			name: "exact length unchanged",
			args: args{s: "abcd", limit: 4},
			want: "abcd",
		},
		{
			name: "small limit uses default",
			args: args{s: long, limit: 3},
			want: strings.Repeat("x", 17) + "...",
		},
		{
			name: "negative limit uses default",
			args: args{s: "short", limit: -1},
			want: "short",
		},
		{
			name: "counts runes, not bytes",
			args: args{s: "привет, мир", limit: 8},
			want: "приве...",
		},
		{
			name: "empty",
			args: args{s: "", limit: 150},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.args.s, tt.args.limit)
			if got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate_length(t *testing.T) {
	got := Truncate(strings.Repeat("s", 200), 150)
	if n := utf8.RuneCountInString(got); n != 150 {
		t.Errorf("len(Truncate()) = %d, want 150", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() = %q, want ellipsis suffix", got)
	}
}

func TestTitleFirst(t *testing.T) {
	type args struct {
		s           string
		placeholder string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"capitalises first letter", args{"hello world", "Untitled"}, "Hello world"},
		{"already capitalised", args{"Hello", "Untitled"}, "Hello"},
		{"empty", args{"", "Untitled"}, "Untitled"},
		{"blank", args{"  \t", "Untitled"}, "Untitled"},
		{"unicode", args{"élan", "Untitled"}, "Élan"},
		{"digit first", args{"1st place", "Untitled"}, "1st place"},
		{"invalid utf-8 kept", args{"\xffabc", "Untitled"}, "\xffabc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFirst(tt.args.s, tt.args.placeholder); got != tt.want {
				t.Errorf("TitleFirst() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrDefault(t *testing.T) {
	tests := []struct {
		name string
		s    string
		def  string
		want string
	}{
		{"value", "General", "x", "General"},
		{"empty", "", "No description available", "No description available"},
		{"blank", " ", "def", "def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrDefault(tt.s, tt.def); got != tt.want {
				t.Errorf("OrDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfilePath(t *testing.T) {
	tests := []struct {
		name string
		p    string
		want string
	}{
		{"inserts prefix before filename", "/uploads/profile/userpics/123/abc.jpg", "/uploads/profile/userpics/123/nabc.jpg"},
		{"no directory", "abc.jpg", "nabc.jpg"},
		{"trailing slash", "/uploads/profile/", "/uploads/profile/n"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfilePath(tt.p); got != tt.want {
				t.Errorf("ProfilePath() = %q, want %q", got, tt.want)
			}
		})
	}
}
