package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 41, 7, 123456789, time.UTC)
	r := Default(now)

	require.NotNil(t, r)
	assert.True(t, r.A.Equal(now))
	assert.Equal(t, 2, r.B.C)
	assert.Equal(t, []string{"d", "e"}, r.B.D)
}

func TestDefaultDIsFresh(t *testing.T) {
	d := DefaultD()
	d[0] = "x"
	assert.Equal(t, []string{"d", "e"}, DefaultD())
}

func TestClone(t *testing.T) {
	orig := Default(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	cp := orig.Clone()

	require.NotNil(t, cp)
	require.True(t, orig.Equal(cp, 0))

	cp.B.D[0] = "changed"
	cp.B.C = 99
	assert.Equal(t, []string{"d", "e"}, orig.B.D, "clone must not share the sequence")
	assert.Equal(t, 2, orig.B.C)

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
}

func TestEqual(t *testing.T) {
	base := time.Date(2026, 10, 18, 9, 41, 7, 123456789, time.UTC)

	tests := []struct {
		name      string
		a, b      *Record
		precision time.Duration
		want      bool
	}{
		{
			name: "identical",
			a:    Default(base),
			b:    Default(base),
			want: true,
		},
		{
			name: "same instant different zone",
			a:    Default(base),
			b:    Default(base.In(time.FixedZone("CEST", 2*60*60))),
			want: true,
		},
		{
			name: "sub-precision difference exact",
			a:    Default(base),
			b:    Default(base.Add(500 * time.Nanosecond)),
			want: false,
		},
		{
			name:      "sub-precision difference truncated",
			a:         Default(base),
			b:         Default(base.Add(500 * time.Nanosecond)),
			precision: time.Millisecond,
			want:      true,
		},
		{
			name: "different c",
			a:    Default(base),
			b:    &Record{A: base, B: Nested{C: 3, D: []string{"d", "e"}}},
			want: false,
		},
		{
			name: "different d order",
			a:    Default(base),
			b:    &Record{A: base, B: Nested{C: 2, D: []string{"e", "d"}}},
			want: false,
		},
		{
			name: "nil vs value",
			a:    nil,
			b:    Default(base),
			want: false,
		},
		{
			name: "both nil",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b, tt.precision))
		})
	}
}

func TestString(t *testing.T) {
	r := Default(time.Date(2026, 10, 18, 9, 41, 7, 0, time.UTC))
	assert.Equal(t, "{a: 2026-10-18T09:41:07Z, b: {c: 2, d: [d e]}}", r.String())

	var nilRec *Record
	assert.Equal(t, "<nil>", nilRec.String())
}
