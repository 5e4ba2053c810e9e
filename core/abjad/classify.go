package abjad

// Label is a notable-pattern classification of a scalar value.
type Label string

// Labels in evaluation order. The chain is mutually exclusive: the first
// matching predicate is reported and evaluation stops, so a value is never
// reported under two labels.
const (
	LabelMultipleOf19 Label = "multiple-of-19"
	LabelMultipleOf7  Label = "multiple-of-7"
	LabelPrime        Label = "prime"
	LabelNone         Label = ""
)

// Classify evaluates the ordered predicate chain on v: multiple of 19 first,
// then multiple of 7, then primality. Non-positive values carry no label.
func Classify(v int) Label {
	if v <= 0 {
		return LabelNone
	}
	if v%19 == 0 {
		return LabelMultipleOf19
	}
	if v%7 == 0 {
		return LabelMultipleOf7
	}
	if isPrime(v) {
		return LabelPrime
	}
	return LabelNone
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
