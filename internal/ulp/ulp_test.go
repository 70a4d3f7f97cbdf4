package ulp

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-highway-exp10f/hwy"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/math"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/workerpool"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		want    Interval
		wantErr bool
	}{
		{in: "0 38 5000", want: Interval{0, 38, 5000}},
		{in: "  -192  -inf 10 ", want: Interval{-192, float32(stdmath.Inf(-1)), 10}},
		{in: "0x1p-63 1.5 1", want: Interval{0x1p-63, 1.5, 1}},
		{in: "0 38", wantErr: true},
		{in: "a 38 5", wantErr: true},
		{in: "0 38 x", wantErr: true},
		{in: "0 38 0", wantErr: true},
		{in: "nan 1 5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseInterval(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseInterval(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInterval(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInterval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntervalString(t *testing.T) {
	iv := Interval{Lo: float32(stdmath.Copysign(0, -1)), Hi: float32(stdmath.Inf(-1)), N: 7}
	if got, want := iv.String(), "-0 -inf 7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	back, err := ParseInterval(iv.String())
	if err != nil {
		t.Fatal(err)
	}
	if !stdmath.Signbit(float64(back.Lo)) || back.Hi != iv.Hi || back.N != iv.N {
		t.Errorf("round trip = %v, want %v", back, iv)
	}
}

func TestSamples(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	negZero := float32(stdmath.Copysign(0, -1))
	tests := []struct {
		iv       Interval
		negative bool
	}{
		{Interval{0, 38, 100}, false},
		{Interval{192, inf, 100}, false},
		{Interval{negZero, -38, 100}, true},
		{Interval{-192, -inf, 100}, true},
		{Interval{-1, 1, 101}, false},
	}
	for _, tt := range tests {
		for _, seed := range []uint64{0, 42} {
			xs := tt.iv.Samples(seed)
			if len(xs) != tt.iv.N {
				t.Fatalf("%v seed %d: %d samples, want %d", tt.iv, seed, len(xs), tt.iv.N)
			}
			first, last := xs[0], xs[len(xs)-1]
			if stdmath.Float32bits(first) != stdmath.Float32bits(tt.iv.Lo) || last != tt.iv.Hi {
				t.Errorf("%v seed %d: endpoints (%v, %v)", tt.iv, seed, first, last)
			}
			lo, hi := min(tt.iv.Lo, tt.iv.Hi), max(tt.iv.Lo, tt.iv.Hi)
			for i, x := range xs {
				if stdmath.IsNaN(float64(x)) || x < lo || x > hi {
					t.Fatalf("%v seed %d: sample %d = %v out of range", tt.iv, seed, i, x)
				}
				if tt.negative && !stdmath.Signbit(float64(x)) {
					t.Fatalf("%v seed %d: sample %d = %v not negative", tt.iv, seed, i, x)
				}
				if seed == 0 && i > 0 {
					if (tt.iv.Lo <= tt.iv.Hi && x < xs[i-1]) || (tt.iv.Lo > tt.iv.Hi && x > xs[i-1]) {
						t.Fatalf("%v: samples not ordered at %d", tt.iv, i)
					}
				}
			}
		}
	}

	if xs := (Interval{3, 4, 1}).Samples(0); len(xs) != 1 || xs[0] != 3 {
		t.Errorf("single sample = %v, want [3]", xs)
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		x    float32
		want float64
	}{
		{0, 1},
		{1, 10},
		{2, 100},
		{-1, 0.1},
		{0.5, stdmath.Sqrt(10)},
		{400, stdmath.Inf(1)},
		{-400, 0},
	}
	for _, tt := range tests {
		got, err := Reference(tt.x)
		if err != nil {
			t.Fatalf("Reference(%v): %v", tt.x, err)
		}
		if got != tt.want {
			t.Errorf("Reference(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got, err := Reference(float32(stdmath.NaN())); err != nil || !stdmath.IsNaN(got) {
		t.Errorf("Reference(NaN) = %v, %v", got, err)
	}
	// 10^-45 lies below the float32 subnormal range but is still exact in
	// float64.
	if got, err := Reference(-45); err != nil || stdmath.Abs(got/1e-45-1) > 1e-15 {
		t.Errorf("Reference(-45) = %v, %v", got, err)
	}
}

func TestError(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	tests := []struct {
		name string
		got  float32
		want float64
		err  float64
	}{
		{"exact", 1, 1, 0},
		{"one ulp", 1 + 0x1p-23, 1, 1},
		{"half ulp below binade", 1, 1 + 0x1p-24, 0.5},
		{"subnormal", 0x1p-148, 0x1p-149, 1},
		{"zero against tiny", 0, 0x1p-151, 0.25},
		{"overflow exact", inf, 0x1p128, 0},
		{"overflow midpoint", inf, 0x1p128 - 0x1p103, 0},
		{"spurious overflow", inf, 0x1p127, 0x1p127 / 0x1p104},
		{"nan", float32(stdmath.NaN()), stdmath.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Error(tt.got, tt.want); got != tt.err {
				t.Errorf("Error(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.err)
			}
		})
	}
	if e := Error(float32(stdmath.NaN()), 1); !stdmath.IsInf(e, 1) {
		t.Errorf("Error(NaN, 1) = %v, want +Inf", e)
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("exp10f")
	if err != nil {
		t.Fatal(err)
	}
	if r.ULP != 1.86 || r.SigLo != -9.9 || r.SigHi != 9.9 || r.ExpectFenv != math.SIMDExcept {
		t.Errorf("unexpected declaration %+v", r)
	}
	if len(r.Intervals) != 6 || r.Intervals[0].Hi != math.Exp10SpecialBound {
		t.Errorf("intervals = %v", r.Intervals)
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup(\"nope\") succeeded")
	}
}

func TestCheckExp10(t *testing.T) {
	pool := workerpool.New(0)
	defer pool.Close()

	r := Exp10()
	for _, iv := range r.Intervals {
		if testing.Short() {
			iv.N = max(iv.N/20, 2)
		}
		t.Run(iv.String(), func(t *testing.T) {
			rep, err := Check(r, iv, Options{Pool: pool})
			if err != nil {
				t.Fatal(err)
			}
			if rep.Failed() {
				t.Error(rep)
			}
			if rep.Samples != iv.N {
				t.Errorf("checked %d samples, want %d", rep.Samples, iv.N)
			}
			t.Log(rep)
		})
	}
}

func TestCheckDetectsErrors(t *testing.T) {
	r := Exp10()
	// Off by four ULPs everywhere.
	r.Vector = func(x hwy.Float32x4) hwy.Float32x4 {
		y := math.Exp10_F32x4(x)
		for i := range y {
			for range 4 {
				y[i] = stdmath.Nextafter32(y[i], float32(stdmath.Inf(1)))
			}
		}
		return y
	}
	rep, err := Check(r, Interval{0.5, 5, 200}, Options{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Failed() || rep.MaxErr < 3.4 {
		t.Errorf("expected failure, got %v", rep)
	}
}

func TestCheckScalar(t *testing.T) {
	rep, err := Check(Exp10(), Interval{-30, 30, 400}, Options{Scalar: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.MaxErr > 0.51 || rep.Failed() {
		t.Errorf("scalar reference: %v", rep)
	}
}

func TestBench(t *testing.T) {
	vec, scalar := Bench(Exp10(), 10, 2)
	if vec.Elements != 24 || scalar.Elements != 24 {
		t.Errorf("elements = (%d, %d), want (24, 24)", vec.Elements, scalar.Elements)
	}
	if vec.NsPerElement() < 0 || (BenchResult{}).NsPerElement() != 0 {
		t.Errorf("unexpected ns/element %v", vec.NsPerElement())
	}
}
