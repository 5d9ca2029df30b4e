package markov

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestNgrams(t *testing.T) {
	testCases := []struct {
		name string
		xs   []int
		n    int
		want [][]int
	}{
		{
			name: "pairs",
			xs:   []int{1, 2, 3, 4},
			n:    2,
			want: [][]int{{1, 2}, {2, 3}, {3, 4}},
		},
		{
			name: "window covers whole source",
			xs:   []int{1, 2, 3},
			n:    3,
			want: [][]int{{1, 2, 3}},
		},
		{
			name: "single token windows",
			xs:   []int{1, 2, 3},
			n:    1,
			want: [][]int{{1}, {2}, {3}},
		},
		{
			name: "overlap is n-1",
			xs:   []int{1, 2, 3, 4, 5},
			n:    4,
			want: [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ngrams, err := NewNgrams(tc.xs, tc.n)
			if err != nil {
				t.Fatalf("NewNgrams() error = %v", err)
			}
			var got [][]int
			for {
				window, ok := ngrams.Next()
				if !ok {
					break
				}
				// Windows alias the source, so clone before keeping them.
				got = append(got, slices.Clone(window))
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("windows = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNgramsErrors(t *testing.T) {
	if _, err := NewNgrams([]int{1, 2}, 3); !errors.Is(err, ErrShortSequence) {
		t.Errorf("short source error = %v, want ErrShortSequence", err)
	}
	if _, err := NewNgrams([]int{}, 1); !errors.Is(err, ErrShortSequence) {
		t.Errorf("empty source error = %v, want ErrShortSequence", err)
	}
	if _, err := NewNgrams([]int{1, 2}, 0); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("zero size error = %v, want ErrInvalidOrder", err)
	}
	if _, err := NewNgrams([]int{1, 2}, -1); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("negative size error = %v, want ErrInvalidOrder", err)
	}
}

func TestNgramsExhausted(t *testing.T) {
	ngrams, err := NewNgrams([]int{1, 2}, 2)
	if err != nil {
		t.Fatalf("NewNgrams() error = %v", err)
	}
	if _, ok := ngrams.Next(); !ok {
		t.Fatal("expected one window before exhaustion")
	}
	for i := 0; i < 3; i++ {
		if window, ok := ngrams.Next(); ok {
			t.Fatalf("Next() after exhaustion = %v, want none", window)
		}
	}
}

func TestNgramsRestartable(t *testing.T) {
	xs := []int{1, 2, 3}

	count := func(t *testing.T) int {
		t.Helper()
		ngrams, err := NewNgrams(xs, 2)
		if err != nil {
			t.Fatalf("NewNgrams() error = %v", err)
		}
		n := 0
		for _, ok := ngrams.Next(); ok; _, ok = ngrams.Next() {
			n++
		}
		return n
	}

	if first, second := count(t), count(t); first != second {
		t.Errorf("second pass saw %d windows, first saw %d", second, first)
	}
}
