package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContributors(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []int64
	}{
		{
			name: "serialized array",
			s:    `a:3:{i:0;s:1:"1";i:1;s:1:"2";i:2;s:2:"10";}`,
			want: []int64{1, 2, 10},
		},
		{
			name: "single element",
			s:    `a:1:{i:0;s:3:"123";}`,
			want: []int64{123},
		},
		{
			name: "empty array",
			s:    `a:0:{}`,
			want: []int64{},
		},
		{
			name: "empty string",
			s:    "",
			want: []int64{},
		},
		{
			name: "garbage",
			s:    "hello world",
			want: []int64{},
		},
		{
			name: "string segment without value",
			s:    `a:1:{i:0;s;}`,
			want: []int64{},
		},
		{
			name: "non-numeric value",
			s:    `a:2:{i:0;s:1:"1";i:1;s:3:"bob";}`,
			want: []int64{},
		},
		{
			name: "json array of strings",
			s:    `["1","2","10"]`,
			want: []int64{1, 2, 10},
		},
		{
			name: "json array of numbers",
			s:    `[4, 5]`,
			want: []int64{4, 5},
		},
		{
			name: "broken json",
			s:    `["1",`,
			want: []int64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contributors(tt.s)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{"two elements", "/uploads/files/a.png,/uploads/files/b.png", []string{"/uploads/files/a.png", "/uploads/files/b.png"}},
		{"one element", "x", []string{"x"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.s)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []int64
	}{
		{"ids", "1,2,3", []int64{1, 2, 3}},
		{"skips garbage", "1,x,3", []int64{1, 3}},
		{"spaces", "1, 2", []int64{1, 2}},
		{"empty", "", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIDs(tt.s)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
