package pcfile

// VersionCompare compares two version strings the way RPM's rpmvercmp
// does: segment-wise, alternating digit and alphabetic runs, ignoring
// everything else. It returns a negative number, zero, or a positive
// number as a < b, a == b, or a > b.
func VersionCompare(a, b string) int {
	if a == b {
		return 0
	}

	ar, br := []rune(a), []rune(b)
	i, j := 0, 0

	for {
		i = skipNonAlnum(ar, i)
		j = skipNonAlnum(br, j)

		if i >= len(ar) || j >= len(br) {
			break
		}

		aDigit := isDigit(ar[i])
		bDigit := isDigit(br[j])

		if aDigit && !bDigit {
			return 1
		}
		if !aDigit && bDigit {
			return -1
		}

		var segA, segB string
		if aDigit {
			var endA, endB int
			segA, endA = takeDigits(ar, i)
			segB, endB = takeDigits(br, j)
			i, j = endA, endB
			segA = stripLeadingZeros(segA)
			segB = stripLeadingZeros(segB)
			if len(segA) != len(segB) {
				if len(segA) > len(segB) {
					return 1
				}
				return -1
			}
		} else {
			var endA, endB int
			segA, endA = takeAlpha(ar, i)
			segB, endB = takeAlpha(br, j)
			i, j = endA, endB
		}

		if segA != segB {
			if segA < segB {
				return -1
			}
			return 1
		}
	}

	i = skipNonAlnum(ar, i)
	j = skipNonAlnum(br, j)
	aDone := i >= len(ar)
	bDone := j >= len(br)
	switch {
	case aDone && bDone:
		return 0
	case aDone:
		return -1
	default:
		return 1
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return isDigit(r) || isAlpha(r)
}

func skipNonAlnum(s []rune, i int) int {
	for i < len(s) && !isAlnum(s[i]) {
		i++
	}
	return i
}

func takeDigits(s []rune, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return string(s[start:i]), i
}

func takeAlpha(s []rune, i int) (string, int) {
	start := i
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	return string(s[start:i]), i
}

func stripLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
