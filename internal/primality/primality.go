package primality

// IsPrime reports whether n is prime.
//
// The loop bound is written as i <= n/i rather than i*i <= n so it cannot
// overflow for n close to math.MaxInt64.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
