package procurement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLegacyItem(t *testing.T) {
	cases := []struct {
		desc string
		name string
		qty  int64
		ok   bool
	}{
		{"Kertas A4 80gsm (50 Rim)", "Kertas A4 80gsm", 50, true},
		{"PC All-in-One Core i5 (5 Unit)", "PC All-in-One Core i5", 5, true},
		{"Mikroskop Cahaya X200 (2 Unit)", "Mikroskop Cahaya X200", 2, true},
		{"Jasa Instalasi Jaringan", "", 0, false},
		{"Paket ATK (satu lusin)", "", 0, false},
		{"(10 Unit)", "", 0, false},
		{"", "", 0, false},
	}
	for _, tc := range cases {
		name, qty, ok := parseLegacyItem(tc.desc)
		require.Equal(t, tc.ok, ok, tc.desc)
		require.Equal(t, tc.name, name, tc.desc)
		require.Equal(t, tc.qty, qty, tc.desc)
	}
}
