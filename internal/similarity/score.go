package similarity

import (
	"math"
	"strconv"
)

// Score is a similarity value that survives JSON encoding. NaN and the
// infinities, which disconnected pairs and zero IC sums produce, are written
// as the strings "NaN", "+Inf" and "-Inf".
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}
