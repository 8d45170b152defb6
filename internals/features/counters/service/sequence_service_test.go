package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReceiptNo(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "000001"},
		{42, "000042"},
		{999999, "999999"},
		{1000000, "1000000"}, // melewati 6 digit tetap utuh, tidak terpotong
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatReceiptNo(tt.seq))
	}
}
