package numerology

// masterNumbers survive digit-root reduction.
var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// IsMasterNumber reports whether n is one of 11, 22 or 33.
func IsMasterNumber(n int) bool {
	return masterNumbers[n]
}

// Reduce collapses n to a single digit by repeated digit sums, stopping early
// on a master number. The check applies to n itself as well as to every
// intermediate sum, so Reduce(Reduce(n)) == Reduce(n). Negative input reduces
// its magnitude.
func Reduce(n int) int {
	m := magnitude(n)
	for m > 9 && !masterNumbers[int(m)] {
		m = digitSum(m)
	}
	return int(m)
}

// ReduceToDigit collapses n to a single digit with no master exception.
func ReduceToDigit(n int) int {
	m := magnitude(n)
	for m > 9 {
		m = digitSum(m)
	}
	return int(m)
}

// magnitude is |n| as a uint, which also holds |math.MinInt|.
func magnitude(n int) uint {
	if n < 0 {
		return uint(-(n + 1)) + 1
	}
	return uint(n)
}

func digitSum(n uint) uint {
	var sum uint
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
