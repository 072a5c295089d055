//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package errno

import (
	"fmt"
	"testing"
)

var toNegativeTests = []struct {
	err  error
	want int32
}{
	{
		err:  EINVAL,
		want: int32(-EINVAL),
	},
	{
		err:  fmt.Errorf("bad modulus: %w", ERANGE),
		want: int32(-ERANGE),
	},
	{
		err:  fmt.Errorf("rng failed: %w", EACCES),
		want: int32(-EACCES),
	},
	{
		err:  fmt.Errorf("unwrapped"),
		want: int32(-EINVAL),
	},
}

func TestToNegative(t *testing.T) {
	for i, test := range toNegativeTests {
		got := ToNegative(test.err)
		if got != test.want {
			t.Errorf("test-%v: ToNegative(%v) = %v, want %v\n",
				i, test.err, got, test.want)
		}
	}
	if ToNegative(nil) != 0 {
		t.Errorf("ToNegative(nil) != 0")
	}
}
